package export

import (
	"time"

	"github.com/neximprove/portal/internal/models"
)

// ReportFilter narrows a report before export. Zero values pass everything:
// an empty or "All" status matches every record, and empty date bounds are
// unset. Date bounds are inclusive. A shipment date that does not parse
// fails no bound check and stays in the report.
type ReportFilter struct {
	Status    string
	StartDate string // "YYYY-MM-DD"
	EndDate   string // "YYYY-MM-DD"
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	return t, err == nil
}

// Apply returns the shipments passing the filter, preserving order.
func (f ReportFilter) Apply(shipments []models.Shipment) []models.Shipment {
	start, hasStart := parseDate(f.StartDate)
	end, hasEnd := parseDate(f.EndDate)

	out := []models.Shipment{}
	for _, s := range shipments {
		if f.Status != "" && f.Status != "All" && string(s.Status) != f.Status {
			continue
		}
		if hasStart || hasEnd {
			if d, ok := parseDate(s.Date); ok {
				if hasStart && d.Before(start) {
					continue
				}
				if hasEnd && d.After(end) {
					continue
				}
			}
		}
		out = append(out, s)
	}
	return out
}
