package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestStore opens a fresh database in a temp dir.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func pragma(t *testing.T, s *Store, name string) string {
	t.Helper()
	var value string
	require.NoError(t, s.db.QueryRow(fmt.Sprintf("PRAGMA %s", name)).Scan(&value))
	return value
}

func TestOpen_Pragmas(t *testing.T) {
	s := createTestStore(t)

	assert.Equal(t, "wal", pragma(t, s, "journal_mode"))
	assert.Equal(t, "1", pragma(t, s, "synchronous"))
	assert.Equal(t, "5000", pragma(t, s, "busy_timeout"))
	assert.Equal(t, "1", pragma(t, s, "foreign_keys"))
	assert.Equal(t, "1", pragma(t, s, "user_version"))
}

func TestOpen_PragmasOnNewConnection(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	// Drops the pooled connection, so the next statement runs on a new one.
	s.db.SetMaxIdleConns(0)
	s.db.SetMaxIdleConns(1)

	assert.Equal(t, "1", pragma(t, s, "foreign_keys"))
	assert.Equal(t, "5000", pragma(t, s, "busy_timeout"))

	_, err := s.db.ExecContext(ctx, "INSERT INTO states (owner, key, value) VALUES ('nobody', 'k', 'v')")
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"plain path", "/var/lib/state.db", "/var/lib/state.db?_busy_timeout=5000&_foreign_keys=on&_journal_mode=WAL&_synchronous=NORMAL"},
		{"path with query", "file:state.db?mode=rwc", "file:state.db?mode=rwc&_busy_timeout=5000&_foreign_keys=on&_journal_mode=WAL&_synchronous=NORMAL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, dsn(tt.path))
		})
	}
}

func TestOpen_Idempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, NewUserStore(s).Create(ctx, testUser("ann", false)))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = NewUserStore(s).GetByName(ctx, "ann")
	assert.NoError(t, err)
}

func TestOpen_NewerSchemaRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.db.Exec("PRAGMA user_version = 99")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than supported")
}

func TestStore_Ping(t *testing.T) {
	s := createTestStore(t)
	assert.NoError(t, s.Ping(context.Background()))
}

func TestStore_CloseNil(t *testing.T) {
	assert.NoError(t, (&Store{}).Close())
}
