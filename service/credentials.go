package service

import (
	"context"
	"sync"
	"unicode"
	"unicode/utf8"

	"iotpersistence/domain"
	"iotpersistence/helpers"
	"iotpersistence/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// MinSecretLength is the minimum number of characters of a new user's password.
const MinSecretLength = 8

const invalidCredentialsMessage = "invalid username or password"

// timingParitySecret is hashed once and compared against when the user is unknown.
const timingParitySecret = "iotpersistence timing parity"

// CredentialStore verifies per-request credentials against the user store.
type CredentialStore struct {
	users  interfaces.UserStore
	hasher interfaces.PasswordHasher
	logger log.Logger

	dummyHash func() string
}

// NewCredentialStore creates a CredentialStore.
func NewCredentialStore(users interfaces.UserStore, hasher interfaces.PasswordHasher, logger log.Logger) *CredentialStore {
	s := &CredentialStore{
		users:  helpers.NilPanic(users, "service.credentials.go: users is required"),
		hasher: helpers.NilPanic(hasher, "service.credentials.go: hasher is required"),
		logger: helpers.NilPanic(logger, "service.credentials.go: logger is required"),
	}
	s.dummyHash = sync.OnceValue(func() string {
		digest, err := s.hasher.Hash(timingParitySecret)
		if err != nil {
			level.Error(s.logger).Log("msg", "failed to prepare timing parity hash", "err", err)
		}
		return digest
	})
	return s
}

// Verify returns the user named name when secret matches its stored hash.
// An unknown name and a wrong secret both fail with invalid_user_or_password.
func (s *CredentialStore) Verify(ctx context.Context, name, secret string) (domain.User, error) {
	user, err := s.users.GetByName(ctx, name)
	if err != nil {
		if !IsEntityNotFoundError(err) {
			return domain.User{}, NewInternalServerError("failed to look up user", err)
		}
		// Pay for one comparison anyway so the response time does not reveal whether name exists.
		_, _ = s.hasher.Compare(s.dummyHash(), secret)
		return domain.User{}, NewInvalidUserOrPasswordError(invalidCredentialsMessage, nil)
	}

	ok, err := s.hasher.Compare(user.PasswordHash, secret)
	if err != nil {
		return domain.User{}, NewInternalServerError("failed to verify password", err)
	}
	if !ok {
		return domain.User{}, NewInvalidUserOrPasswordError(invalidCredentialsMessage, nil)
	}

	return user, nil
}

// ValidCredentials is the policy for new accounts: a non-empty ASCII name and a
// password of at least MinSecretLength characters. Existing accounts are never re-checked.
func ValidCredentials(name, secret string) error {
	if name == "" {
		return NewBadParameterError("username must not be empty", nil)
	}
	for i := 0; i < len(name); i++ {
		if name[i] > unicode.MaxASCII {
			return NewBadParameterError("username must contain only ASCII characters", nil)
		}
	}
	if utf8.RuneCountInString(secret) < MinSecretLength {
		return NewBadParameterError("password must be at least 8 characters long", nil)
	}
	return nil
}
