package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"iotpersistence/domain"
	"iotpersistence/service"
)

// UserStore persists domain.User rows.
type UserStore struct {
	store *Store
}

// NewUserStore creates a UserStore over s.
func NewUserStore(s *Store) *UserStore {
	return &UserStore{store: s}
}

func (u *UserStore) GetByName(ctx context.Context, name string) (domain.User, error) {
	var (
		user    domain.User
		isAdmin bool
	)
	err := u.store.db.QueryRowContext(ctx,
		`SELECT name, password_hash, is_admin FROM users WHERE name = ?`, name,
	).Scan(&user.Name, &user.PasswordHash, &isAdmin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, service.NewEntityNotFoundError("user not found", err)
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}

	user.Role = domain.RoleOf(isAdmin)
	return user, nil
}

// Create inserts user. An existing name fails with conflict; the check and the insert are one statement.
func (u *UserStore) Create(ctx context.Context, user domain.User) error {
	return u.store.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO users (name, password_hash, is_admin)
			VALUES (?, ?, ?)
			ON CONFLICT(name) DO NOTHING
		`, user.Name, user.PasswordHash, user.IsAdmin())
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if n == 0 {
			return service.NewConflictError("user already exists", nil)
		}
		return nil
	})
}

// Delete removes the user together with its state entries and returns how many entries went with it.
func (u *UserStore) Delete(ctx context.Context, name string) (int64, error) {
	var removed int64
	err := u.store.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM states WHERE owner = ?`, name)
		if err != nil {
			return fmt.Errorf("delete user states: %w", err)
		}
		if removed, err = res.RowsAffected(); err != nil {
			return fmt.Errorf("delete user states: %w", err)
		}

		res, err = tx.ExecContext(ctx, `DELETE FROM users WHERE name = ?`, name)
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		if n == 0 {
			return service.NewEntityNotFoundError("user not found", nil)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// List returns all users ordered by name. It returns an empty slice, never nil.
func (u *UserStore) List(ctx context.Context) ([]domain.User, error) {
	rows, err := u.store.db.QueryContext(ctx, `SELECT name, password_hash, is_admin FROM users ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var (
			user    domain.User
			isAdmin bool
		)
		if err := rows.Scan(&user.Name, &user.PasswordHash, &isAdmin); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		user.Role = domain.RoleOf(isAdmin)
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}
