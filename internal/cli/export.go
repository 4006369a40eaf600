package cli

import (
	"context"
	"fmt"

	"github.com/neximprove/portal/internal/export"
)

// Export writes the full collection to a CSV file. An optional argument
// overrides the default dated filename.
func (a *App) Export(ctx context.Context, args []string) {
	shipments := a.facade.Service().GetShipments(ctx)
	if len(shipments) == 0 {
		fmt.Fprintln(a.out, "No shipments to export")
		return
	}

	filename := ""
	if len(args) > 0 {
		filename = args[0]
	}

	path, err := export.WriteFile(a.cfg.ExportDir, filename, shipments)
	if err != nil {
		fmt.Fprintf(a.out, "Export failed: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Exported %d shipments to %s\n", len(shipments), path)
}

// Report exports a filtered CSV: status and an inclusive date range, each
// optional.
func (a *App) Report(ctx context.Context) {
	ask := func(prompt string) string {
		v, err := GetSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return ""
		}
		return v
	}

	filter := export.ReportFilter{
		Status:    ask("Status: All/Pending/In Progress/Completed (empty for All)"),
		StartDate: ask("From date YYYY-MM-DD (empty for no lower bound)"),
		EndDate:   ask("To date YYYY-MM-DD (empty for no upper bound)"),
	}

	filtered := filter.Apply(a.facade.Service().GetShipments(ctx))
	if len(filtered) == 0 {
		fmt.Fprintln(a.out, "No shipments match the filter")
		return
	}

	path, err := export.WriteFile(a.cfg.ExportDir, "", filtered)
	if err != nil {
		fmt.Fprintf(a.out, "Export failed: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Exported %d shipments to %s\n", len(filtered), path)
}
