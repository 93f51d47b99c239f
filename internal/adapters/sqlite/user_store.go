// Package sqlite contains the SQLite implementation of the store
// interfaces in ports/secondary.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/roster/internal/models"
	"github.com/example/roster/internal/ports/secondary"
)

// UserStore implements secondary.UserStore with SQLite. The *sql.DB
// handle is injected; UserStore never opens or closes it.
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a new SQLite user store.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// PutAll upserts every user by ID in a single transaction. The whole
// call is all-or-nothing: the first failing write rolls everything
// back and the call fails wrapping secondary.ErrStorageWrite.
func (s *UserStore) PutAll(ctx context.Context, users []models.User) error {
	if len(users) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", secondary.ErrStorageWrite, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO users (id, first_name, last_name, date_of_birth, phone_number, active)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			date_of_birth = excluded.date_of_birth,
			phone_number = excluded.phone_number,
			active = excluded.active
	`)
	if err != nil {
		return fmt.Errorf("%w: prepare upsert: %v", secondary.ErrStorageWrite, err)
	}
	defer stmt.Close()

	for _, user := range users {
		if _, err := stmt.ExecContext(ctx,
			user.ID, user.FirstName, user.LastName, user.DateOfBirth, user.PhoneNumber, user.Active,
		); err != nil {
			return fmt.Errorf("%w: put user %s: %v", secondary.ErrStorageWrite, user.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", secondary.ErrStorageWrite, err)
	}
	return nil
}

// Count returns the number of stored users. Any underlying error is
// masked to 0 so the caller sees an empty-but-usable roster.
func (s *UserStore) Count(ctx context.Context) int {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	if err != nil {
		return 0
	}
	return count
}

// Scan walks the users table in primary key order, skips the first
// offset rows, and returns up to limit users. Any underlying error is
// masked to an empty result.
func (s *UserStore) Scan(ctx context.Context, offset, limit int) []models.User {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, first_name, last_name, date_of_birth, phone_number, active FROM users ORDER BY id LIMIT ? OFFSET ?",
		limit, offset,
	)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID, &user.FirstName, &user.LastName, &user.DateOfBirth, &user.PhoneNumber, &user.Active,
		); err != nil {
			return nil
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil
	}

	return users
}

// Clear deletes all rows. Unlike the read path, clear failures
// propagate: the caller needs to know persistence did not happen.
func (s *UserStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM users"); err != nil {
		return fmt.Errorf("%w: clear users: %v", secondary.ErrStorageWrite, err)
	}
	return nil
}

// Ensure UserStore implements the interface
var _ secondary.UserStore = (*UserStore)(nil)
