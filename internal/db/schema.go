package db

// SchemaSQL is the complete schema for fresh roster installs. It
// reflects the current state after all migrations.
//
// This is the single source of truth for the database schema. All
// repository tests load it via GetSchemaSQL() instead of hardcoding
// CREATE TABLE statements, so drift between test and production schemas
// fails immediately with "no such column".
//
// When changing the schema:
//  1. Add a migration in internal/db/migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Users (the roster)
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	date_of_birth DATETIME NOT NULL,
	phone_number TEXT NOT NULL,
	active BOOLEAN NOT NULL DEFAULT 0
);

-- Secondary lookups. The query pipeline filters and sorts in memory,
-- so these only serve ad-hoc inspection of the database file.
CREATE INDEX IF NOT EXISTS idx_users_first_name ON users(first_name);
CREATE INDEX IF NOT EXISTS idx_users_last_name ON users(last_name);
CREATE INDEX IF NOT EXISTS idx_users_date_of_birth ON users(date_of_birth);
CREATE INDEX IF NOT EXISTS idx_users_active ON users(active);
`

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to
// prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
