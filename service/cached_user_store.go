package service

import (
	"context"
	"time"

	"iotpersistence/domain"
	"iotpersistence/helpers"
	"iotpersistence/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// CacheWriteLockMs bounds how long a user write keeps cache fills blocked. Store writes
// run with half of it as their deadline, so they end before the block does.
const CacheWriteLockMs = 10000

const writeTimeout = CacheWriteLockMs * time.Millisecond / 2

// CachedUserStore is a read-through cache in front of a UserStore. Credential checks run on
// every request, so lookups by name, including the ones that find nothing, are served from
// the cache while writes go to next.
//
// A write invalidates the name before and after changing next. When the first
// invalidation fails the write is refused, so the cache never outlives the row it
// describes. Read failures of the cache fall back to next.
type CachedUserStore struct {
	next   interfaces.UserStore
	cache  interfaces.VersionedCache[domain.User]
	ttlMs  int
	logger log.Logger
}

// NewCachedUserStore creates a CachedUserStore.
func NewCachedUserStore(next interfaces.UserStore, cache interfaces.VersionedCache[domain.User], ttlMs int, logger log.Logger) *CachedUserStore {
	return &CachedUserStore{
		next:   helpers.NilPanic(next, "service.cached_user_store.go: next is required"),
		cache:  helpers.NilPanic(cache, "service.cached_user_store.go: cache is required"),
		ttlMs:  ttlMs,
		logger: helpers.NilPanic(logger, "service.cached_user_store.go: logger is required"),
	}
}

func (s *CachedUserStore) GetByName(ctx context.Context, name string) (domain.User, error) {
	entry, ticket, err := s.cache.Lookup(ctx, name)
	if err == nil {
		if !entry.Found {
			return domain.User{}, NewEntityNotFoundError("user not found", nil)
		}
		return entry.Item, nil
	}
	if !IsEntityNotFoundError(err) {
		level.Warn(s.logger).Log("msg", "user cache read failed", "err", err)
		return s.next.GetByName(ctx, name)
	}

	user, err := s.next.GetByName(ctx, name)
	switch {
	case err == nil:
		entry = interfaces.CacheEntry[domain.User]{Found: true, Item: user}
	case IsEntityNotFoundError(err):
		entry = interfaces.CacheEntry[domain.User]{Found: false}
	default:
		return domain.User{}, err
	}

	if ticket.Fillable {
		if ferr := s.cache.Fill(ctx, name, entry, ticket, s.ttlMs); ferr != nil {
			level.Warn(s.logger).Log("msg", "user cache write failed", "err", ferr)
		}
	}
	return user, err
}

func (s *CachedUserStore) Create(ctx context.Context, user domain.User) error {
	return s.write(ctx, user.Name, func(ctx context.Context) error {
		return s.next.Create(ctx, user)
	})
}

// Delete removes the user from next. A deleted user stops authenticating as soon as Delete returns.
func (s *CachedUserStore) Delete(ctx context.Context, name string) (int64, error) {
	var removed int64
	err := s.write(ctx, name, func(ctx context.Context) error {
		var err error
		removed, err = s.next.Delete(ctx, name)
		return err
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

func (s *CachedUserStore) List(ctx context.Context) ([]domain.User, error) {
	return s.next.List(ctx)
}

// write runs fn between BeginWrite and EndWrite for name.
func (s *CachedUserStore) write(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	if err := s.cache.BeginWrite(ctx, name, CacheWriteLockMs); err != nil {
		return NewInternalServerError("failed to invalidate cached user", err)
	}

	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	err := fn(writeCtx)
	cancel()

	// On failure fills stay blocked until the lock expires.
	if endErr := s.cache.EndWrite(ctx, name); endErr != nil {
		level.Warn(s.logger).Log("msg", "user cache release failed", "user", name, "err", endErr)
	}
	return err
}
