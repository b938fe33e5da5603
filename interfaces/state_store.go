package interfaces

import "context"

// StateStore persists state entries keyed by (owner, key).
// Every method is scoped to a single owner; there is no cross-owner query.
//
//go:generate moq -stub -out mock/state_store.go -pkg mock . StateStore
type StateStore interface {
	// Upsert inserts the entry or overwrites its value as one atomic statement.
	Upsert(ctx context.Context, owner, key, value string) error

	// Get returns the value, or entity_not_found.
	Get(ctx context.Context, owner, key string) (string, error)

	// Delete removes the entry, or returns entity_not_found when it does not exist.
	Delete(ctx context.Context, owner, key string) error

	// List returns all entries of owner; an empty map when there are none.
	List(ctx context.Context, owner string) (map[string]string, error)
}
