package portal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/neximprove/portal/internal/common"
	"github.com/neximprove/portal/internal/kvstore"
	"github.com/neximprove/portal/internal/models"
)

// ShipmentData are the inputs to AddShipment. Zero-valued fields receive
// defaults: client, origin and destination fall back to "N/A", the role to
// Importer, the status to Pending, the date to today and the value to "$0".
type ShipmentData struct {
	Name        string
	Client      string
	ClientRole  models.ClientRole
	Origin      string
	Destination string
	Status      models.ShipmentStatus
	Date        string
	Value       string
	Description string
}

// loadShipments reads the shipment collection, seeding the demo records when
// the key is absent. Corrupt JSON reads as an empty collection; storage
// errors (including a failed seed write) are returned.
func (s *Service) loadShipments(ctx context.Context) ([]models.Shipment, error) {
	raw, err := s.store.Get(ctx, kvstore.KeyShipments)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		seeded := make([]models.Shipment, len(demoShipments))
		copy(seeded, demoShipments)
		if err := s.writeShipments(ctx, seeded); err != nil {
			return nil, err
		}
		return seeded, nil
	}

	var list []models.Shipment
	if err := json.Unmarshal(raw, &list); err != nil {
		return []models.Shipment{}, nil
	}
	return list, nil
}

// GetShipments returns the full ordered collection; newest-created records
// are first because AddShipment prepends. Storage failures read as empty.
func (s *Service) GetShipments(ctx context.Context) []models.Shipment {
	list, err := s.loadShipments(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read shipments", "error", err)
		return []models.Shipment{}
	}
	return list
}

// GetShipmentByID returns the matching shipment, or nil when absent.
func (s *Service) GetShipmentByID(ctx context.Context, id string) *models.Shipment {
	for _, sh := range s.GetShipments(ctx) {
		if sh.ID == id {
			return &sh
		}
	}
	return nil
}

// FindShipment is a case-insensitive id lookup, matching how shipment
// tracking accepts ids like "sh-001".
func (s *Service) FindShipment(ctx context.Context, id string) *models.Shipment {
	id = strings.TrimSpace(id)
	for _, sh := range s.GetShipments(ctx) {
		if strings.EqualFold(sh.ID, id) {
			return &sh
		}
	}
	return nil
}

// nextShipmentID derives the next id. The default scheme uses the current
// count, which can reissue an id after deletions; the historical behavior
// is kept deliberately. Strict mode scans for the highest numeric suffix
// instead and cannot collide.
func (s *Service) nextShipmentID(shipments []models.Shipment) string {
	n := len(shipments) + 1
	if s.strictIDs {
		max := 0
		for _, sh := range shipments {
			suffix, ok := strings.CutPrefix(sh.ID, "SH-")
			if !ok {
				continue
			}
			if v, err := strconv.Atoi(suffix); err == nil && v > max {
				max = v
			}
		}
		n = max + 1
	}
	return fmt.Sprintf("SH-%03d", n)
}

// shipmentIndex locates a shipment by exact id, or returns an error wrapping
// common.ErrNotFound.
func shipmentIndex(shipments []models.Shipment, id string) (int, error) {
	for i := range shipments {
		if shipments[i].ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("shipment %s: %w", id, common.ErrNotFound)
}

// AddShipment builds a record from data, assigns the next id and prepends
// it to the collection.
func (s *Service) AddShipment(ctx context.Context, data ShipmentData) ShipmentResult {
	shipments, err := s.loadShipments(ctx)
	if err != nil {
		s.log.Error(ctx, "add shipment failed", "error", err)
		return ShipmentResult{Result: failure("Failed to create shipment")}
	}

	record := models.Shipment{
		ID:          s.nextShipmentID(shipments),
		Name:        data.Name,
		Client:      data.Client,
		ClientRole:  data.ClientRole,
		Origin:      data.Origin,
		Destination: data.Destination,
		Status:      data.Status,
		Date:        data.Date,
		Value:       data.Value,
		Description: data.Description,
		CreatedAt:   nowFn().UTC().Format(time.RFC3339),
	}
	if record.Client == "" {
		record.Client = "N/A"
	}
	if record.ClientRole == "" {
		record.ClientRole = models.RoleImporter
	}
	if record.Origin == "" {
		record.Origin = "N/A"
	}
	if record.Destination == "" {
		record.Destination = "N/A"
	}
	if record.Status == "" {
		record.Status = models.StatusPending
	}
	if record.Date == "" {
		record.Date = nowFn().UTC().Format("2006-01-02")
	}
	if record.Value == "" {
		record.Value = "$0"
	}

	shipments = append([]models.Shipment{record}, shipments...)

	if err := s.writeShipments(ctx, shipments); err != nil {
		s.log.Error(ctx, "add shipment failed", "error", err)
		return ShipmentResult{Result: failure("Failed to create shipment")}
	}

	s.log.Info(ctx, "shipment created", "id", record.ID)
	return ShipmentResult{Result: Result{Success: true}, Shipment: &record}
}

// UpdateShipment merges the non-nil update fields into the matching record.
func (s *Service) UpdateShipment(ctx context.Context, id string, updates models.ShipmentUpdate) ShipmentResult {
	shipments, err := s.loadShipments(ctx)
	if err != nil {
		s.log.Error(ctx, "update shipment failed", "error", err)
		return ShipmentResult{Result: failure("Failed to update shipment")}
	}

	idx, err := shipmentIndex(shipments, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return ShipmentResult{Result: failure("Shipment not found")}
		}
		s.log.Error(ctx, "update shipment failed", "error", err)
		return ShipmentResult{Result: failure("Failed to update shipment")}
	}

	updates.Apply(&shipments[idx])

	if err := s.writeShipments(ctx, shipments); err != nil {
		s.log.Error(ctx, "update shipment failed", "error", err)
		return ShipmentResult{Result: failure("Failed to update shipment")}
	}

	updated := shipments[idx]
	return ShipmentResult{Result: Result{Success: true}, Shipment: &updated}
}

// DeleteShipment removes the matching record. Deleting an absent id is a
// successful no-op.
func (s *Service) DeleteShipment(ctx context.Context, id string) Result {
	shipments, err := s.loadShipments(ctx)
	if err != nil {
		s.log.Error(ctx, "delete shipment failed", "error", err)
		return failure("Failed to delete shipment")
	}

	filtered := shipments[:0:0]
	for _, sh := range shipments {
		if sh.ID != id {
			filtered = append(filtered, sh)
		}
	}

	if err := s.writeShipments(ctx, filtered); err != nil {
		s.log.Error(ctx, "delete shipment failed", "error", err)
		return failure("Failed to delete shipment")
	}

	return Result{Success: true}
}

// GetShipmentStats recomputes the status counts by a full scan.
func (s *Service) GetShipmentStats(ctx context.Context) models.Stats {
	stats := models.Stats{}
	for _, sh := range s.GetShipments(ctx) {
		stats.Total++
		switch sh.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusInProgress:
			stats.InProgress++
		case models.StatusCompleted:
			stats.Completed++
		}
	}
	return stats
}

// GetClients derives the distinct client names per role, in the order they
// first appear in the collection.
func (s *Service) GetClients(ctx context.Context) models.Clients {
	clients := models.Clients{}
	seenImp := map[string]bool{}
	seenExp := map[string]bool{}
	for _, sh := range s.GetShipments(ctx) {
		name := sh.Client
		if name == "" {
			name = "Unknown"
		}
		role := sh.ClientRole
		if role == "" {
			role = models.RoleImporter
		}
		switch role {
		case models.RoleImporter:
			if !seenImp[name] {
				seenImp[name] = true
				clients.Importers = append(clients.Importers, name)
			}
		case models.RoleExporter:
			if !seenExp[name] {
				seenExp[name] = true
				clients.Exporters = append(clients.Exporters, name)
			}
		}
	}
	return clients
}

// SearchShipments filters by a case-insensitive substring match over id,
// name, client, origin, destination and status. An empty query returns the
// whole collection.
func (s *Service) SearchShipments(ctx context.Context, query string) []models.Shipment {
	shipments := s.GetShipments(ctx)
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return shipments
	}

	matched := []models.Shipment{}
	for _, sh := range shipments {
		haystack := strings.ToLower(strings.Join([]string{
			sh.ID, sh.Name, sh.Client, sh.Origin, sh.Destination, string(sh.Status),
		}, " "))
		if strings.Contains(haystack, q) {
			matched = append(matched, sh)
		}
	}
	return matched
}
