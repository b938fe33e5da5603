package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"iotpersistence/service"

	"github.com/mattn/go-sqlite3"
)

// StateStore persists state entries. Every method is scoped to one owner.
type StateStore struct {
	store *Store
}

// NewStateStore creates a StateStore over s.
func NewStateStore(s *Store) *StateStore {
	return &StateStore{store: s}
}

// Upsert inserts the entry or overwrites the value of an existing one in a single statement,
// so concurrent first writes of a key cannot both insert.
func (st *StateStore) Upsert(ctx context.Context, owner, key, value string) error {
	return st.store.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO states (owner, key, value)
			VALUES (?, ?, ?)
			ON CONFLICT(owner, key) DO UPDATE SET value = excluded.value
		`, owner, key, value)
		if err != nil {
			if isForeignKeyViolation(err) {
				return service.NewEntityNotFoundError("owner not found", err)
			}
			return fmt.Errorf("upsert state: %w", err)
		}
		return nil
	})
}

func (st *StateStore) Get(ctx context.Context, owner, key string) (string, error) {
	var value string
	err := st.store.db.QueryRowContext(ctx,
		`SELECT value FROM states WHERE owner = ? AND key = ?`, owner, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", service.NewEntityNotFoundError("state not found", err)
		}
		return "", fmt.Errorf("get state: %w", err)
	}
	return value, nil
}

func (st *StateStore) Delete(ctx context.Context, owner, key string) error {
	return st.store.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM states WHERE owner = ? AND key = ?`, owner, key)
		if err != nil {
			return fmt.Errorf("delete state: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete state: %w", err)
		}
		if n == 0 {
			return service.NewEntityNotFoundError("state not found", nil)
		}
		return nil
	})
}

// List returns the owner's entries. It returns an empty map, never nil.
func (st *StateStore) List(ctx context.Context, owner string) (map[string]string, error) {
	rows, err := st.store.db.QueryContext(ctx, `SELECT key, value FROM states WHERE owner = ?`, owner)
	if err != nil {
		return nil, fmt.Errorf("list states: %w", err)
	}
	defer rows.Close()

	states := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan state: %w", err)
		}
		states[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate states: %w", err)
	}

	return states, nil
}

func isForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
}
