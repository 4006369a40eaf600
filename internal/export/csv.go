// Package export produces the portal's CSV report artifacts.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/neximprove/portal/internal/models"
)

// nowFn is a test seam for time.Now.
var nowFn = time.Now

// csvHeader is the fixed column order of the export.
var csvHeader = []string{
	"id", "name", "client", "origin", "destination",
	"status", "date", "value", "description", "createdAt",
}

// quote wraps a field in double quotes, doubling any embedded quotes.
// Every field is quoted unconditionally, matching the report format the
// portal has always produced.
func quote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// BuildCSV renders shipments as CSV text: a header row plus one row per
// record, joined with '\n' and no trailing newline.
func BuildCSV(shipments []models.Shipment) string {
	rows := make([]string, 0, len(shipments)+1)
	rows = append(rows, strings.Join(csvHeader, ","))

	for _, s := range shipments {
		fields := []string{
			s.ID, s.Name, s.Client, s.Origin, s.Destination,
			string(s.Status), s.Date, s.Value, s.Description, s.CreatedAt,
		}
		quoted := make([]string, len(fields))
		for i, f := range fields {
			quoted[i] = quote(f)
		}
		rows = append(rows, strings.Join(quoted, ","))
	}

	return strings.Join(rows, "\n")
}

// DefaultFilename returns "neximprove_shipments_<YYYY-MM-DD>.csv" for today.
func DefaultFilename() string {
	return fmt.Sprintf("neximprove_shipments_%s.csv", nowFn().UTC().Format("2006-01-02"))
}

// WriteFile writes the CSV for shipments into dir, using filename or the
// default when filename is empty. Returns the full path written.
func WriteFile(dir string, filename string, shipments []models.Shipment) (string, error) {
	if filename == "" {
		filename = DefaultFilename()
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(BuildCSV(shipments)), 0o600); err != nil {
		return "", fmt.Errorf("failed to write csv: %w", err)
	}
	return path, nil
}
