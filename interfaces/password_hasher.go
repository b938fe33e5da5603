package interfaces

// PasswordHasher is the one-way hashing primitive for user secrets.
//
//go:generate moq -stub -out mock/password_hasher.go -pkg mock . PasswordHasher
type PasswordHasher interface {
	// Hash returns an opaque digest of secret.
	Hash(secret string) (string, error)

	// Compare reports whether secret matches hash using a constant-time check.
	// A mismatch is (false, nil); an error means the hash itself is unusable.
	Compare(hash, secret string) (bool, error)
}
