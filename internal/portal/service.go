// Package portal implements the domain operations of the shipment filing
// portal: registration, login/session handling and shipment CRUD, layered
// directly on the key-value store.
//
// Every operation is synchronous and fail-soft: storage errors are caught
// at this boundary and surfaced as Result values with a user-facing
// message, never as returned errors or panics.
package portal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/neximprove/portal/internal/kvstore"
	"github.com/neximprove/portal/internal/logging"
	"github.com/neximprove/portal/internal/models"
)

// nowFn is a test seam for time.Now.
var nowFn = time.Now

// Result is the uniform outcome of a fail-soft operation.
type Result struct {
	Success bool
	Message string
}

// LoginResult carries the persisted session on success.
type LoginResult struct {
	Result
	User *models.Session
}

// ShipmentResult carries the affected shipment on success.
type ShipmentResult struct {
	Result
	Shipment *models.Shipment
}

// UserResult carries the updated user on success.
type UserResult struct {
	Result
	User *models.User
}

func failure(msg string) Result { return Result{Success: false, Message: msg} }
func success(msg string) Result { return Result{Success: true, Message: msg} }

// Service exposes the domain operations over an injected store.
type Service struct {
	store kvstore.Store
	log   logging.Logger

	// strictIDs switches shipment id generation from the historical
	// count-based scheme to a max-suffix-plus-one sequence that cannot
	// collide after deletions.
	strictIDs bool
}

// NewService constructs a Service over the given store.
func NewService(store kvstore.Store, log logging.Logger) *Service {
	return &Service{store: store, log: log.With("component", "portal")}
}

// SetStrictShipmentIDs enables collision-free shipment id generation.
func (s *Service) SetStrictShipmentIDs(v bool) {
	s.strictIDs = v
}

// readUsers loads and decodes the users collection. An absent key reads as
// an empty slice; storage and decode errors are returned for the caller's
// fail-soft handling.
func (s *Service) readUsers(ctx context.Context) ([]models.User, error) {
	raw, err := s.store.Get(ctx, kvstore.KeyUsers)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []models.User{}, nil
	}
	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Service) writeUsers(ctx context.Context, users []models.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, kvstore.KeyUsers, raw)
}

func (s *Service) writeShipments(ctx context.Context, shipments []models.Shipment) error {
	raw, err := json.Marshal(shipments)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, kvstore.KeyShipments, raw)
}
