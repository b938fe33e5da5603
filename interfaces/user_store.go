package interfaces

import (
	"context"

	"iotpersistence/domain"
)

// UserStore persists the user directory.
//
//go:generate moq -stub -out mock/user_store.go -pkg mock . UserStore
type UserStore interface {
	// GetByName returns the user with the given name.
	// Returns entity_not_found when no such user exists.
	GetByName(ctx context.Context, name string) (domain.User, error)

	// Create inserts a new user. Returns conflict when the name is taken.
	Create(ctx context.Context, user domain.User) error

	// Delete removes the user and every state entry it owns in one transaction.
	// Returns the number of removed state entries, or entity_not_found.
	Delete(ctx context.Context, name string) (int64, error)

	// List returns all users ordered by name.
	List(ctx context.Context) ([]domain.User, error)
}
