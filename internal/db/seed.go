package db

import (
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

var fixtureFirstNames = []string{
	"John", "Jane", "Bob", "Alice", "Carlos", "Mei", "Fatima", "Igor",
	"Priya", "Tom", "Lena", "Omar", "Sofia", "Hans", "Yuki", "Nina",
}

var fixtureLastNames = []string{
	"Doe", "Smith", "Johnson", "Garcia", "Chen", "Khan", "Petrov",
	"Sharma", "Brown", "Muller", "Tanaka", "Rossi", "Silva", "Novak",
}

// SeedFixtures populates the database with n synthetic users for
// development. IDs are random UUIDs; birth dates span 1940–2015 so both
// sides of the age filter get coverage.
func SeedFixtures(database *sql.DB, n int) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	tx, err := database.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin fixture transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT OR REPLACE INTO users (id, first_name, last_name, date_of_birth, phone_number, active) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("failed to prepare fixture insert: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		first := fixtureFirstNames[rng.Intn(len(fixtureFirstNames))]
		last := fixtureLastNames[rng.Intn(len(fixtureLastNames))]
		dob := time.Date(
			1940+rng.Intn(76),
			time.Month(1+rng.Intn(12)),
			1+rng.Intn(28),
			0, 0, 0, 0, time.UTC,
		)
		phone := fmt.Sprintf("+1%09d", rng.Intn(1_000_000_000))

		if _, err := stmt.Exec(
			uuid.NewString(), first, last, dob, phone, rng.Intn(2) == 0,
		); err != nil {
			return fmt.Errorf("failed to insert fixture user %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit fixtures: %w", err)
	}
	return nil
}
