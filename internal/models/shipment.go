package models

// ClientRole classifies the client on a shipment.
type ClientRole string

const (
	RoleImporter ClientRole = "Importer"
	RoleExporter ClientRole = "Exporter"
)

// ShipmentStatus is a shipment's lifecycle state.
// The wire strings are fixed; "In Progress" contains a space.
type ShipmentStatus string

const (
	StatusPending    ShipmentStatus = "Pending"
	StatusInProgress ShipmentStatus = "In Progress"
	StatusCompleted  ShipmentStatus = "Completed"
)

// Shipment is a customs filing record tracked through
// Pending -> In Progress -> Completed.
//
// ID has the form "SH-NNN" (zero-padded). Date is a plain "YYYY-MM-DD"
// string and Value is free-text currency; both are rendered as entered.
type Shipment struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Client      string         `json:"client"`
	ClientRole  ClientRole     `json:"clientRole"`
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	Status      ShipmentStatus `json:"status"`
	Date        string         `json:"date"`
	Value       string         `json:"value"`
	Description string         `json:"description"`
	CreatedAt   string         `json:"createdAt"`
}

// ShipmentUpdate is a partial update of a Shipment. Nil fields are left
// unchanged. The ID and CreatedAt of a record are never updated.
type ShipmentUpdate struct {
	Name        *string
	Client      *string
	ClientRole  *ClientRole
	Origin      *string
	Destination *string
	Status      *ShipmentStatus
	Date        *string
	Value       *string
	Description *string
}

// Apply merges the non-nil fields of the update into s.
func (upd ShipmentUpdate) Apply(s *Shipment) {
	if upd.Name != nil {
		s.Name = *upd.Name
	}
	if upd.Client != nil {
		s.Client = *upd.Client
	}
	if upd.ClientRole != nil {
		s.ClientRole = *upd.ClientRole
	}
	if upd.Origin != nil {
		s.Origin = *upd.Origin
	}
	if upd.Destination != nil {
		s.Destination = *upd.Destination
	}
	if upd.Status != nil {
		s.Status = *upd.Status
	}
	if upd.Date != nil {
		s.Date = *upd.Date
	}
	if upd.Value != nil {
		s.Value = *upd.Value
	}
	if upd.Description != nil {
		s.Description = *upd.Description
	}
}

// Stats are read-side shipment counts, recomputed on demand.
type Stats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}

// Clients groups distinct client names by role, in first-occurrence order.
type Clients struct {
	Importers []string `json:"importers"`
	Exporters []string `json:"exporters"`
}
