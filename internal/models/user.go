// Package models contains domain types for roster entities.
// SQL persistence lives in internal/adapters/sqlite.
package models

import "time"

// User represents one roster entry. Users are created by the seed
// transform, persisted once, and never mutated in place; there is no
// edit feature.
type User struct {
	ID          string
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	PhoneNumber string
	Active      bool
}

// RawUser is the wire shape of a seed record as delivered by the seed
// source (users.json). Field names follow the upstream snake_case
// convention; DateOfBirth arrives as an ISO date string and is parsed
// during the seed transform.
type RawUser struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	PhoneNumber string `json:"phone_number"`
	Active      bool   `json:"active"`
}
