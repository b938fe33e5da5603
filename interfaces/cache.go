package interfaces

import "context"

// CacheEntry is what a VersionedCache holds for a key: the item, or the fact that the
// source has no item under that key.
type CacheEntry[T any] struct {
	Found bool
	Item  T
}

// FillTicket is issued by Lookup on a miss. It records the key version seen before the
// source was read; Fill is refused once that version is stale.
type FillTicket struct {
	Version int64
	// Fillable is false while a write to the key is in flight.
	Fillable bool
}

// VersionedCache is a read-through cache that stays consistent with concurrent writers.
// Every write to a key bumps its version, and a value read from the source is only cached
// when no write started since the matching Lookup.
//
//go:generate moq -stub -out mock/cache.go -pkg mock . VersionedCache
type VersionedCache[T any] interface {
	// Lookup returns the cached entry for key.
	// Returns:
	// 1) (entry, ticket, nil) on hit;
	// 2) (zero, ticket, entity_not_found) on miss, including entries of an older version;
	// 3) (zero, ticket, internal_server_error) when the storage read or unmarshalling fails.
	Lookup(ctx context.Context, key string) (CacheEntry[T], FillTicket, error)

	// Fill caches entry for ttlMs unless key was written after ticket was issued.
	// Returns:
	// 1) nil on success, also when the fill was refused;
	// 2) internal_server_error when marshalling fails or when the storage write fails.
	Fill(ctx context.Context, key string, entry CacheEntry[T], ticket FillTicket, ttlMs int) error

	// BeginWrite invalidates key and blocks fills until EndWrite or until lockMs elapse.
	// The source must not be written when it fails.
	BeginWrite(ctx context.Context, key string, lockMs int) error

	// EndWrite invalidates key again and releases the block taken by BeginWrite.
	EndWrite(ctx context.Context, key string) error
}
