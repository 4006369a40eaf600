// Package kvstore provides the portal's durable key-value store. Three keys
// back the whole application: "users", "currentUser" and "shipments", each
// holding JSON text.
//
// The store is a shared, unversioned resource with last-write-wins
// semantics; it assumes a single writer process.
package kvstore

import "context"

// Store keys used by the domain layer.
const (
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
	KeyShipments   = "shipments"
)

// Store is a durable key-value resource.
//
// Get returns (nil, nil) when the key is absent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
