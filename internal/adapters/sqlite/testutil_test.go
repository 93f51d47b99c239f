// Package sqlite_test contains integration tests for the SQLite store.
//
// This file is the single point where the database schema is loaded for
// tests. All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema, preventing drift between test and production.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/roster/internal/db"
	"github.com/example/roster/internal/models"
)

// setupTestDB creates an in-memory database with the authoritative
// schema. Shared by all store tests.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// testUser builds a user with sensible defaults for store tests.
func testUser(id, first, last string) models.User {
	return models.User{
		ID:          id,
		FirstName:   first,
		LastName:    last,
		DateOfBirth: time.Date(1990, time.September, 9, 0, 0, 0, 0, time.UTC),
		PhoneNumber: "+1234567890",
		Active:      true,
	}
}
