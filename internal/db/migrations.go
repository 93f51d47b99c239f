package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration.
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_users_table",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_secondary_user_indexes",
		Up:      migrationV2,
	},
}

// latestVersion is the schema version a fresh install starts at.
const latestVersion = 2

// InitSchema brings the database to the current schema version. Fresh
// databases get SchemaSQL applied directly and all migration versions
// recorded as applied; existing databases run pending migrations.
func InitSchema(database *sql.DB) error {
	var name string
	err := database.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&name)

	if err == sql.ErrNoRows {
		// Fresh install: apply the full schema and mark every
		// migration as applied.
		if _, err := database.Exec(SchemaSQL); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
		if _, err := database.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`); err != nil {
			return fmt.Errorf("failed to create schema_version table: %w", err)
		}
		for v := 1; v <= latestVersion; v++ {
			if _, err := database.Exec("INSERT INTO schema_version (version) VALUES (?)", v); err != nil {
				return fmt.Errorf("failed to record schema version %d: %w", v, err)
			}
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}

	return RunMigrations(database)
}

// RunMigrations executes all pending migrations against the database.
func RunMigrations(database *sql.DB) error {
	var currentVersion int
	err := database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, err := database.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(database); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Name, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

// SchemaVersion returns the highest applied migration version, or 0 if
// the schema_version table does not exist yet.
func SchemaVersion(database *sql.DB) int {
	var version int
	if err := database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version); err != nil {
		return 0
	}
	return version
}

func migrationV1(database *sql.DB) error {
	_, err := database.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			date_of_birth DATETIME NOT NULL,
			phone_number TEXT NOT NULL,
			active BOOLEAN NOT NULL DEFAULT 0
		)
	`)
	return err
}

func migrationV2(database *sql.DB) error {
	stmts := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_first_name ON users(first_name)",
		"CREATE INDEX IF NOT EXISTS idx_users_last_name ON users(last_name)",
		"CREATE INDEX IF NOT EXISTS idx_users_date_of_birth ON users(date_of_birth)",
		"CREATE INDEX IF NOT EXISTS idx_users_active ON users(active)",
	}
	for _, stmt := range stmts {
		if _, err := database.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
