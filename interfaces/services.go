package interfaces

import (
	"context"

	"iotpersistence/domain"
)

// Authenticator verifies per-request credentials.
//
//go:generate moq -stub -out mock/authenticator.go -pkg mock . Authenticator
type Authenticator interface {
	// Verify returns the user for valid credentials, or invalid_user_or_password.
	// Unknown names and wrong secrets fail identically.
	Verify(ctx context.Context, name, secret string) (domain.User, error)
}

// StateService is the ownership-scoped key-value API. The owner is always caller.Name.
//
//go:generate moq -stub -out mock/state_service.go -pkg mock . StateService
type StateService interface {
	// Set stores value under key; value == nil means the parameter was not supplied.
	Set(ctx context.Context, caller domain.User, key string, value *string) error
	Get(ctx context.Context, caller domain.User, key string) (string, error)
	Delete(ctx context.Context, caller domain.User, key string) error
	List(ctx context.Context, caller domain.User) (map[string]string, error)
}

// UserDirectory is the administrator API over the user directory.
//
//go:generate moq -stub -out mock/user_directory.go -pkg mock . UserDirectory
type UserDirectory interface {
	AddUser(ctx context.Context, name, secret string, isAdmin bool) (domain.User, error)
	DeleteUser(ctx context.Context, name string) error
	ListUsers(ctx context.Context) ([]domain.User, error)
	UserDetails(ctx context.Context, name string) (domain.UserDetails, error)
}
