package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/unicode/norm"
)

// BcryptHasher hashes secrets with bcrypt. Secrets are NFKC-normalized first so that
// visually identical input typed on different keyboards verifies against the same digest.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher. A cost outside bcrypt's bounds falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(normalizeSecret(secret)), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", NewBadParameterError("password must not be longer than 72 bytes", err)
		}
		return "", NewInternalServerError("failed to hash password", err)
	}
	return string(digest), nil
}

func (h *BcryptHasher) Compare(hash, secret string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(normalizeSecret(secret)))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword), errors.Is(err, bcrypt.ErrPasswordTooLong):
		return false, nil
	default:
		return false, NewInternalServerError("stored password hash is unusable", err)
	}
}

func normalizeSecret(secret string) string {
	return norm.NFKC.String(secret)
}
