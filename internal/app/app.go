// Package app bundles the domain operations with reducer dispatch. Each
// action calls the operation first and dispatches the matching state
// transition only when the operation reports success, so the cached state
// never diverges from confirmed store writes. On failure the operation's
// result is returned untouched for the UI to surface.
package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/neximprove/portal/internal/logging"
	"github.com/neximprove/portal/internal/models"
	"github.com/neximprove/portal/internal/portal"
	"github.com/neximprove/portal/internal/state"
)

// App is the action dispatch facade. It owns the current application state.
// It is not safe for concurrent use; all calls are expected from the single
// UI event loop.
type App struct {
	svc   *portal.Service
	log   logging.Logger
	state state.State
}

// New constructs the facade and hydrates the state from the store before
// first use.
func New(ctx context.Context, svc *portal.Service, log logging.Logger) *App {
	a := &App{svc: svc, log: log.With("component", "app")}
	a.state = state.State{
		User:            svc.GetCurrentUser(ctx),
		IsAuthenticated: svc.IsAuthenticated(ctx),
		Shipments:       svc.GetShipments(ctx),
	}
	return a
}

// State returns the current application state snapshot.
func (a *App) State() state.State {
	return a.state
}

// Service exposes the underlying domain operations for read-only calls that
// bypass the cache (lookups, stats, profile updates).
func (a *App) Service() *portal.Service {
	return a.svc
}

func (a *App) dispatch(action state.Action) {
	a.state = state.Reduce(a.state, action)
}

// opLogger tags log entries of one facade call with a correlation id.
func (a *App) opLogger(op string) logging.Logger {
	return a.log.With("op", op, "op_id", uuid.NewString())
}

// Login runs the login operation and caches the session on success.
func (a *App) Login(ctx context.Context, email, password string) portal.LoginResult {
	log := a.opLogger("login")
	res := a.svc.LoginUser(ctx, email, password)
	if res.Success {
		a.dispatch(state.Action{Type: state.LoginSuccess, User: res.User})
		log.Info(ctx, "logged in", "email", email)
	} else {
		log.Warn(ctx, "login rejected", "email", email)
	}
	return res
}

// Logout clears the session and the cached auth state.
func (a *App) Logout(ctx context.Context) {
	a.svc.LogoutUser(ctx)
	a.dispatch(state.Action{Type: state.Logout})
	a.opLogger("logout").Info(ctx, "logged out")
}

// LoadShipments re-reads the collection from the store and replaces the
// cached list wholesale. This is the authoritative reconciliation pass;
// callers of AddShipment/UpdateShipment are expected to follow up with it.
func (a *App) LoadShipments(ctx context.Context) []models.Shipment {
	shipments := a.svc.GetShipments(ctx)
	a.dispatch(state.Action{Type: state.SetShipments, Shipments: shipments})
	return shipments
}

// AddShipment creates a record and optimistically prepends it to the cache.
func (a *App) AddShipment(ctx context.Context, data portal.ShipmentData) portal.ShipmentResult {
	log := a.opLogger("add_shipment")
	res := a.svc.AddShipment(ctx, data)
	if res.Success {
		a.dispatch(state.Action{Type: state.AddShipment, Shipment: res.Shipment})
		log.Info(ctx, "shipment added", "id", res.Shipment.ID)
	} else {
		log.Warn(ctx, "add shipment failed", "message", res.Message)
	}
	return res
}

// UpdateShipment merges updates into a record and mirrors the merge in the
// cache on success.
func (a *App) UpdateShipment(ctx context.Context, id string, updates models.ShipmentUpdate) portal.ShipmentResult {
	log := a.opLogger("update_shipment")
	res := a.svc.UpdateShipment(ctx, id, updates)
	if res.Success {
		a.dispatch(state.Action{Type: state.UpdateShipment, ID: id, Updates: updates})
		log.Info(ctx, "shipment updated", "id", id)
	} else {
		log.Warn(ctx, "update shipment failed", "id", id, "message", res.Message)
	}
	return res
}

// DeleteShipment removes a record and drops it from the cache on success.
func (a *App) DeleteShipment(ctx context.Context, id string) portal.Result {
	log := a.opLogger("delete_shipment")
	res := a.svc.DeleteShipment(ctx, id)
	if res.Success {
		a.dispatch(state.Action{Type: state.DeleteShipment, ID: id})
		log.Info(ctx, "shipment deleted", "id", id)
	} else {
		log.Warn(ctx, "delete shipment failed", "id", id, "message", res.Message)
	}
	return res
}

func (a *App) OpenSidebar()  { a.dispatch(state.Action{Type: state.OpenSidebar}) }
func (a *App) CloseSidebar() { a.dispatch(state.Action{Type: state.CloseSidebar}) }
func (a *App) ToggleSidebar() { a.dispatch(state.Action{Type: state.ToggleSidebar}) }
