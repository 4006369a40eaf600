// Package state holds the in-memory application state and its reducer. The
// state mirrors a subset of the store for fast reads; the store stays the
// source of truth and the reducer's shipment list is only a cache.
package state

import "github.com/neximprove/portal/internal/models"

// State is the full application state shape.
type State struct {
	User            *models.Session
	IsAuthenticated bool
	Shipments       []models.Shipment
	SidebarOpen     bool
}

// Initial returns the state before hydration.
func Initial() State {
	return State{Shipments: []models.Shipment{}}
}

// ActionType enumerates the closed set of state transitions.
type ActionType string

const (
	LoginSuccess   ActionType = "LOGIN_SUCCESS"
	Logout         ActionType = "LOGOUT"
	SetShipments   ActionType = "SET_SHIPMENTS"
	AddShipment    ActionType = "ADD_SHIPMENT"
	UpdateShipment ActionType = "UPDATE_SHIPMENT"
	DeleteShipment ActionType = "DELETE_SHIPMENT"
	OpenSidebar    ActionType = "OPEN_SIDEBAR"
	CloseSidebar   ActionType = "CLOSE_SIDEBAR"
	ToggleSidebar  ActionType = "TOGGLE_SIDEBAR"
)

// Action is a dispatched state transition. Only the payload fields relevant
// to the Type are read.
type Action struct {
	Type      ActionType
	User      *models.Session
	Shipments []models.Shipment
	Shipment  *models.Shipment
	ID        string
	Updates   models.ShipmentUpdate
}

// Reduce is a pure, total transition function. Unknown action types return
// the input state unchanged. The input state is never mutated; shipment
// slices are copied before modification.
func Reduce(s State, a Action) State {
	switch a.Type {
	case LoginSuccess:
		s.User = a.User
		s.IsAuthenticated = true
		return s

	case Logout:
		s.User = nil
		s.IsAuthenticated = false
		return s

	case SetShipments:
		s.Shipments = a.Shipments
		return s

	case AddShipment:
		if a.Shipment == nil {
			return s
		}
		next := make([]models.Shipment, 0, len(s.Shipments)+1)
		next = append(next, *a.Shipment)
		next = append(next, s.Shipments...)
		s.Shipments = next
		return s

	case UpdateShipment:
		next := make([]models.Shipment, len(s.Shipments))
		copy(next, s.Shipments)
		for i := range next {
			if next[i].ID == a.ID {
				a.Updates.Apply(&next[i])
			}
		}
		s.Shipments = next
		return s

	case DeleteShipment:
		next := make([]models.Shipment, 0, len(s.Shipments))
		for _, sh := range s.Shipments {
			if sh.ID != a.ID {
				next = append(next, sh)
			}
		}
		s.Shipments = next
		return s

	case OpenSidebar:
		s.SidebarOpen = true
		return s

	case CloseSidebar:
		s.SidebarOpen = false
		return s

	case ToggleSidebar:
		s.SidebarOpen = !s.SidebarOpen
		return s

	default:
		return s
	}
}
