package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"iotpersistence/domain"
	"iotpersistence/interfaces"
	"iotpersistence/interfaces/mock"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCache keeps the versioning rules of the Redis cache in a map. Write locks never expire.
type memoryCache struct {
	mu       sync.Mutex
	entries  map[string]memoryEntry
	versions map[string]int64
	locks    map[string]int
}

type memoryEntry struct {
	version int64
	entry   interfaces.CacheEntry[domain.User]
}

func newMemoryCache() *mock.VersionedCacheMock[domain.User] {
	m := &memoryCache{
		entries:  map[string]memoryEntry{},
		versions: map[string]int64{},
		locks:    map[string]int{},
	}
	return &mock.VersionedCacheMock[domain.User]{
		LookupFunc: func(ctx context.Context, key string) (interfaces.CacheEntry[domain.User], interfaces.FillTicket, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			ticket := interfaces.FillTicket{Version: m.versions[key], Fillable: m.locks[key] == 0}
			e, ok := m.entries[key]
			if !ok || !ticket.Fillable || e.version != ticket.Version {
				return interfaces.CacheEntry[domain.User]{}, ticket, NewEntityNotFoundError("cache miss", nil)
			}
			return e.entry, ticket, nil
		},
		FillFunc: func(ctx context.Context, key string, entry interfaces.CacheEntry[domain.User], ticket interfaces.FillTicket, ttlMs int) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			if m.versions[key] == ticket.Version && m.locks[key] == 0 {
				m.entries[key] = memoryEntry{version: ticket.Version, entry: entry}
			}
			return nil
		},
		BeginWriteFunc: func(ctx context.Context, key string, lockMs int) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.versions[key]++
			delete(m.entries, key)
			m.locks[key]++
			return nil
		},
		EndWriteFunc: func(ctx context.Context, key string) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.versions[key]++
			delete(m.entries, key)
			m.locks[key]--
			return nil
		},
	}
}

// memoryUserStore is a UserStore over a map. beforeReturn, when set, runs inside GetByName
// after the row was read.
type memoryUserStore struct {
	mu           sync.Mutex
	users        map[string]domain.User
	beforeReturn func(name string)
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: map[string]domain.User{}}
}

func (s *memoryUserStore) asMock() *mock.UserStoreMock {
	return &mock.UserStoreMock{
		GetByNameFunc: func(ctx context.Context, name string) (domain.User, error) {
			s.mu.Lock()
			u, ok := s.users[name]
			hook := s.beforeReturn
			s.mu.Unlock()
			if hook != nil {
				hook(name)
			}
			if !ok {
				return domain.User{}, NewEntityNotFoundError("user not found", nil)
			}
			return u, nil
		},
		CreateFunc: func(ctx context.Context, user domain.User) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			if _, ok := s.users[user.Name]; ok {
				return NewConflictError("user already exists", nil)
			}
			s.users[user.Name] = user
			return nil
		},
		DeleteFunc: func(ctx context.Context, name string) (int64, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			if _, ok := s.users[name]; !ok {
				return 0, NewEntityNotFoundError("user not found", nil)
			}
			delete(s.users, name)
			return 0, nil
		},
		ListFunc: func(ctx context.Context) ([]domain.User, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			users := make([]domain.User, 0, len(s.users))
			for _, u := range s.users {
				users = append(users, u)
			}
			return users, nil
		},
	}
}

func TestNewCachedUserStore_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "service.cached_user_store.go: cache is required", func() {
		NewCachedUserStore(&mock.UserStoreMock{}, nil, 1000, log.NewNopLogger())
	})
}

func TestCachedUserStore_GetByName_ReadThrough(t *testing.T) {
	ctx := context.Background()
	ann := domain.User{Name: "ann", PasswordHash: "h", Role: domain.RoleStandard}
	next := &mock.UserStoreMock{
		GetByNameFunc: func(ctx context.Context, name string) (domain.User, error) {
			return ann, nil
		},
	}
	cache := newMemoryCache()
	s := NewCachedUserStore(next, cache, 1000, log.NewNopLogger())

	for i := 0; i < 3; i++ {
		got, err := s.GetByName(ctx, "ann")
		require.NoError(t, err)
		assert.Equal(t, ann, got)
	}
	assert.Len(t, next.GetByNameCalls(), 1)
	require.Len(t, cache.FillCalls(), 1)
	assert.Equal(t, 1000, cache.FillCalls()[0].TtlMs)
	assert.True(t, cache.FillCalls()[0].Entry.Found)
}

func TestCachedUserStore_GetByName_NotFoundIsCached(t *testing.T) {
	ctx := context.Background()
	next := &mock.UserStoreMock{
		GetByNameFunc: func(ctx context.Context, name string) (domain.User, error) {
			return domain.User{}, NewEntityNotFoundError("user not found", nil)
		},
	}
	cache := newMemoryCache()
	s := NewCachedUserStore(next, cache, 1000, log.NewNopLogger())

	for i := 0; i < 2; i++ {
		_, err := s.GetByName(ctx, "ghost")
		assert.True(t, IsEntityNotFoundError(err))
	}
	assert.Len(t, next.GetByNameCalls(), 1, "unknown names are answered by the cache like known ones")
	require.Len(t, cache.FillCalls(), 1)
	assert.False(t, cache.FillCalls()[0].Entry.Found)
}

func TestCachedUserStore_GetByName_StoreFailureIsNotCached(t *testing.T) {
	next := &mock.UserStoreMock{
		GetByNameFunc: func(ctx context.Context, name string) (domain.User, error) {
			return domain.User{}, errors.New("database is locked")
		},
	}
	cache := newMemoryCache()
	s := NewCachedUserStore(next, cache, 1000, log.NewNopLogger())

	_, err := s.GetByName(context.Background(), "ann")
	require.Error(t, err)
	assert.Empty(t, cache.FillCalls())
}

func TestCachedUserStore_CacheFailureFallsBack(t *testing.T) {
	ctx := context.Background()
	ann := domain.User{Name: "ann", Role: domain.RoleStandard}
	next := &mock.UserStoreMock{
		GetByNameFunc: func(ctx context.Context, name string) (domain.User, error) {
			return ann, nil
		},
	}
	cache := &mock.VersionedCacheMock[domain.User]{
		LookupFunc: func(ctx context.Context, key string) (interfaces.CacheEntry[domain.User], interfaces.FillTicket, error) {
			return interfaces.CacheEntry[domain.User]{}, interfaces.FillTicket{}, NewInternalServerError("redis down", errors.New("dial tcp: connection refused"))
		},
	}
	s := NewCachedUserStore(next, cache, 1000, log.NewNopLogger())

	got, err := s.GetByName(ctx, "ann")
	require.NoError(t, err)
	assert.Equal(t, ann, got)
	assert.Empty(t, cache.FillCalls())
}

func TestCachedUserStore_WriteInFlightIsNotCached(t *testing.T) {
	next := &mock.UserStoreMock{
		GetByNameFunc: func(ctx context.Context, name string) (domain.User, error) {
			return domain.User{Name: name}, nil
		},
	}
	cache := &mock.VersionedCacheMock[domain.User]{
		LookupFunc: func(ctx context.Context, key string) (interfaces.CacheEntry[domain.User], interfaces.FillTicket, error) {
			return interfaces.CacheEntry[domain.User]{}, interfaces.FillTicket{Version: 3, Fillable: false}, NewEntityNotFoundError("cache miss", nil)
		},
	}
	s := NewCachedUserStore(next, cache, 1000, log.NewNopLogger())

	_, err := s.GetByName(context.Background(), "ann")
	require.NoError(t, err)
	assert.Empty(t, cache.FillCalls())
}

func TestCachedUserStore_WritesInvalidate(t *testing.T) {
	ctx := context.Background()
	users := newMemoryUserStore()
	next := users.asMock()
	cache := newMemoryCache()
	s := NewCachedUserStore(next, cache, 1000, log.NewNopLogger())

	_, err := s.GetByName(ctx, "ann")
	require.True(t, IsEntityNotFoundError(err))

	require.NoError(t, s.Create(ctx, domain.User{Name: "ann"}))
	got, err := s.GetByName(ctx, "ann")
	require.NoError(t, err, "creating a user replaces the cached absence")
	assert.Equal(t, "ann", got.Name)

	_, err = s.Delete(ctx, "ann")
	require.NoError(t, err)
	_, err = s.GetByName(ctx, "ann")
	assert.True(t, IsEntityNotFoundError(err))

	begins := cache.BeginWriteCalls()
	require.Len(t, begins, 2)
	assert.Equal(t, CacheWriteLockMs, begins[0].LockMs)
	assert.Len(t, cache.EndWriteCalls(), 2)
	assert.Len(t, next.GetByNameCalls(), 3)
}

func TestCachedUserStore_BeginWriteFailureRefusesWrite(t *testing.T) {
	ctx := context.Background()
	next := &mock.UserStoreMock{}
	cache := &mock.VersionedCacheMock[domain.User]{
		BeginWriteFunc: func(ctx context.Context, key string, lockMs int) error {
			return NewInternalServerError("redis down", nil)
		},
	}
	s := NewCachedUserStore(next, cache, 1000, log.NewNopLogger())

	_, err := s.Delete(ctx, "ann")
	assert.True(t, IsInternalServerError(err))
	err = s.Create(ctx, domain.User{Name: "ann"})
	assert.True(t, IsInternalServerError(err))

	assert.Empty(t, next.DeleteCalls())
	assert.Empty(t, next.CreateCalls())
	assert.Empty(t, cache.EndWriteCalls())
}

func TestCachedUserStore_StoreFailureStillReleases(t *testing.T) {
	next := &mock.UserStoreMock{
		DeleteFunc: func(ctx context.Context, name string) (int64, error) {
			return 0, NewEntityNotFoundError("user not found", nil)
		},
	}
	cache := newMemoryCache()
	s := NewCachedUserStore(next, cache, 1000, log.NewNopLogger())

	_, err := s.Delete(context.Background(), "ghost")
	assert.True(t, IsEntityNotFoundError(err))
	assert.Len(t, cache.BeginWriteCalls(), 1)
	assert.Len(t, cache.EndWriteCalls(), 1)
}

func TestCachedUserStore_ListPassesThrough(t *testing.T) {
	next := &mock.UserStoreMock{
		ListFunc: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{{Name: "ann"}}, nil
		},
	}
	cache := newMemoryCache()
	s := NewCachedUserStore(next, cache, 1000, log.NewNopLogger())

	users, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Empty(t, cache.LookupCalls())
}

// credentialsOverCache wires a CredentialStore and a Directory over one cached store.
func credentialsOverCache(cache interfaces.VersionedCache[domain.User], users *memoryUserStore) (*CredentialStore, *Directory) {
	cached := NewCachedUserStore(users.asMock(), cache, 30000, log.NewNopLogger())
	hasher := plainHasher()
	states := &mock.StateStoreMock{}
	return NewCredentialStore(cached, hasher, log.NewNopLogger()),
		NewDirectory(cached, states, hasher, log.NewNopLogger())
}

func TestCachedUserStore_DeletedUserStopsAuthenticating(t *testing.T) {
	ctx := context.Background()
	cache := newMemoryCache()
	// the release after each write fails; fills stay blocked
	cache.EndWriteFunc = func(ctx context.Context, key string) error {
		return NewInternalServerError("redis down", nil)
	}
	creds, dir := credentialsOverCache(cache, newMemoryUserStore())

	_, err := dir.AddUser(ctx, "ann", "oldpassword", true)
	require.NoError(t, err)
	user, err := creds.Verify(ctx, "ann", "oldpassword")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdministrator, user.Role)

	require.NoError(t, dir.DeleteUser(ctx, "ann"))
	_, err = creds.Verify(ctx, "ann", "oldpassword")
	assert.True(t, IsInvalidUserOrPasswordError(err))

	_, err = dir.AddUser(ctx, "ann", "newpassword", false)
	require.NoError(t, err)

	_, err = creds.Verify(ctx, "ann", "oldpassword")
	assert.True(t, IsInvalidUserOrPasswordError(err))
	user, err = creds.Verify(ctx, "ann", "newpassword")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStandard, user.Role)
}

func TestCachedUserStore_RecreatedUserGetsNewCredentials(t *testing.T) {
	ctx := context.Background()
	creds, dir := credentialsOverCache(newMemoryCache(), newMemoryUserStore())

	_, err := dir.AddUser(ctx, "ann", "oldpassword", true)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err = creds.Verify(ctx, "ann", "oldpassword")
		require.NoError(t, err)
	}

	require.NoError(t, dir.DeleteUser(ctx, "ann"))
	_, err = creds.Verify(ctx, "ann", "oldpassword")
	assert.True(t, IsInvalidUserOrPasswordError(err))

	_, err = dir.AddUser(ctx, "ann", "newpassword", false)
	require.NoError(t, err)
	_, err = creds.Verify(ctx, "ann", "oldpassword")
	assert.True(t, IsInvalidUserOrPasswordError(err))
	user, err := creds.Verify(ctx, "ann", "newpassword")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStandard, user.Role)
}

func TestCachedUserStore_FailedInvalidationKeepsUser(t *testing.T) {
	ctx := context.Background()
	cache := newMemoryCache()
	users := newMemoryUserStore()
	creds, dir := credentialsOverCache(cache, users)

	_, err := dir.AddUser(ctx, "ann", "oldpassword", true)
	require.NoError(t, err)

	cache.BeginWriteFunc = func(ctx context.Context, key string, lockMs int) error {
		return NewInternalServerError("redis down", nil)
	}
	err = dir.DeleteUser(ctx, "ann")
	assert.True(t, IsInternalServerError(err))

	// nothing was deleted, so the account and its cache entry still agree
	_, err = creds.Verify(ctx, "ann", "oldpassword")
	require.NoError(t, err)
	assert.Contains(t, users.users, "ann")
}

func TestCachedUserStore_LookupRacingDeleteIsNotCached(t *testing.T) {
	ctx := context.Background()
	users := newMemoryUserStore()
	creds, dir := credentialsOverCache(newMemoryCache(), users)

	_, err := dir.AddUser(ctx, "ann", "oldpassword", true)
	require.NoError(t, err)

	read := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	users.mu.Lock()
	users.beforeReturn = func(name string) {
		once.Do(func() {
			close(read)
			<-release
		})
	}
	users.mu.Unlock()

	// the first Verify reads ann from the store, then stalls until the delete is done
	verified := make(chan error, 1)
	go func() {
		_, err := creds.Verify(ctx, "ann", "oldpassword")
		verified <- err
	}()
	<-read
	require.NoError(t, dir.DeleteUser(ctx, "ann"))
	close(release)
	require.NoError(t, <-verified, "a check that started before the delete may still pass")

	_, err = creds.Verify(ctx, "ann", "oldpassword")
	assert.True(t, IsInvalidUserOrPasswordError(err))
}
