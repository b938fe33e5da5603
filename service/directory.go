package service

import (
	"context"
	"sort"

	"iotpersistence/domain"
	"iotpersistence/helpers"
	"iotpersistence/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// AdminName is the account created by Bootstrap.
const AdminName = "admin"

// Directory manages the user directory. Only administrators reach it.
type Directory struct {
	users  interfaces.UserStore
	states interfaces.StateStore
	hasher interfaces.PasswordHasher
	logger log.Logger
}

// NewDirectory creates a Directory.
func NewDirectory(users interfaces.UserStore, states interfaces.StateStore, hasher interfaces.PasswordHasher, logger log.Logger) *Directory {
	return &Directory{
		users:  helpers.NilPanic(users, "service.directory.go: users is required"),
		states: helpers.NilPanic(states, "service.directory.go: states is required"),
		hasher: helpers.NilPanic(hasher, "service.directory.go: hasher is required"),
		logger: helpers.NilPanic(logger, "service.directory.go: logger is required"),
	}
}

// AddUser creates a user after checking ValidCredentials. The returned user carries no hash.
func (d *Directory) AddUser(ctx context.Context, name, secret string, isAdmin bool) (domain.User, error) {
	if err := ValidCredentials(name, secret); err != nil {
		return domain.User{}, err
	}

	hash, err := d.hasher.Hash(secret)
	if err != nil {
		return domain.User{}, NewInternalServerError("failed to hash password", err)
	}

	user := domain.User{
		Name:         name,
		PasswordHash: hash,
		Role:         domain.RoleOf(isAdmin),
	}
	if err := d.users.Create(ctx, user); err != nil {
		return domain.User{}, NewInternalServerError("failed to create user", err)
	}

	level.Info(d.logger).Log("msg", "user created", "user", name, "role", user.Role)
	return user.Public(), nil
}

// DeleteUser removes the user and, in the same transaction, every state entry it owns.
func (d *Directory) DeleteUser(ctx context.Context, name string) error {
	if name == "" {
		return NewBadParameterError("missing parameter username", nil)
	}

	removed, err := d.users.Delete(ctx, name)
	if err != nil {
		return NewInternalServerError("failed to delete user", err)
	}

	level.Info(d.logger).Log("msg", "user deleted", "user", name, "states_removed", removed)
	return nil
}

// ListUsers returns every user sorted by name, without hashes.
func (d *Directory) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := d.users.List(ctx)
	if err != nil {
		return nil, NewInternalServerError("failed to list users", err)
	}

	res := make([]domain.User, 0, len(users))
	for _, u := range users {
		res = append(res, u.Public())
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res, nil
}

func (d *Directory) UserDetails(ctx context.Context, name string) (domain.UserDetails, error) {
	if name == "" {
		return domain.UserDetails{}, NewBadParameterError("missing parameter username", nil)
	}

	user, err := d.users.GetByName(ctx, name)
	if err != nil {
		return domain.UserDetails{}, NewInternalServerError("failed to look up user", err)
	}

	states, err := d.states.List(ctx, name)
	if err != nil {
		return domain.UserDetails{}, NewInternalServerError("failed to list states", err)
	}
	if states == nil {
		states = map[string]string{}
	}

	return domain.UserDetails{User: user.Public(), States: states}, nil
}

// Bootstrap creates the administrator account of a fresh database.
func (d *Directory) Bootstrap(ctx context.Context, secret string) (domain.User, error) {
	return d.AddUser(ctx, AdminName, secret, true)
}
