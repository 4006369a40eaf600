package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strp(s string) *string { return &s }

func TestShipmentUpdate_Apply_MergesOnlyNonNilFields(t *testing.T) {
	s := Shipment{
		ID:          "SH-001",
		Name:        "Electronics Import",
		Client:      "Tech Solutions Inc.",
		ClientRole:  RoleImporter,
		Origin:      "Shanghai, China",
		Destination: "Los Angeles, USA",
		Status:      StatusPending,
		Date:        "2025-12-01",
		Value:       "$45,230",
		Description: "Consumer electronics",
		CreatedAt:   "2025-12-01T10:30:00Z",
	}

	st := StatusCompleted
	ShipmentUpdate{Status: &st}.Apply(&s)

	assert.Equal(t, StatusCompleted, s.Status)
	assert.Equal(t, "SH-001", s.ID)
	assert.Equal(t, "Electronics Import", s.Name)
	assert.Equal(t, "Tech Solutions Inc.", s.Client)
	assert.Equal(t, "2025-12-01T10:30:00Z", s.CreatedAt)
}

func TestShipmentUpdate_Apply_AllFields(t *testing.T) {
	s := Shipment{ID: "SH-002", Status: StatusPending}

	role := RoleExporter
	st := StatusInProgress
	ShipmentUpdate{
		Name:        strp("Automotive Parts"),
		Client:      strp("Global Traders Ltd."),
		ClientRole:  &role,
		Origin:      strp("Hamburg, Germany"),
		Destination: strp("New York, USA"),
		Status:      &st,
		Date:        strp("2025-11-28"),
		Value:       strp("$78,450"),
		Description: strp("Components"),
	}.Apply(&s)

	assert.Equal(t, "SH-002", s.ID)
	assert.Equal(t, "Automotive Parts", s.Name)
	assert.Equal(t, RoleExporter, s.ClientRole)
	assert.Equal(t, StatusInProgress, s.Status)
	assert.Equal(t, "$78,450", s.Value)
}

func TestUserUpdate_Apply(t *testing.T) {
	u := User{ID: "1", FullName: "Jane Doe", Email: "jane@example.com", Password: "secret"}

	UserUpdate{FullName: strp("Jane Smith")}.Apply(&u)

	assert.Equal(t, "Jane Smith", u.FullName)
	assert.Equal(t, "jane@example.com", u.Email)
	assert.Equal(t, "secret", u.Password)
}
