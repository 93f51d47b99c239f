// Package db owns the SQLite lifecycle: opening the database file,
// creating the schema, and running migrations. The connection handle is
// opened once at startup and passed explicitly to the adapters; there
// is no package-level singleton.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/roster/internal/ports/secondary"
)

// Open opens (creating if necessary) the roster database at path and
// ensures the schema is current. The caller owns the returned handle
// and must Close it.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("%w: create data directory: %v", secondary.ErrStorageInit, err)
	}

	database, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %v", secondary.ErrStorageInit, err)
	}

	// sql.Open is lazy; force a connection so open failures surface
	// here rather than on the first query.
	if err := database.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("%w: connect to database: %v", secondary.ErrStorageInit, err)
	}

	if err := InitSchema(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("%w: initialize schema: %v", secondary.ErrStorageInit, err)
	}

	return database, nil
}

// DefaultPath returns the default database location, ~/.roster/roster.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".roster", "roster.db"), nil
}
