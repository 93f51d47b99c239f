// Package app contains the application services implementing the
// primary ports.
package app

import (
	"context"
	"time"

	"github.com/example/roster/internal/models"
	"github.com/example/roster/internal/ports/primary"
	"github.com/example/roster/internal/ports/secondary"
)

// RosterServiceImpl implements the RosterService interface: it decides
// whether the local store needs seeding and exposes paged reads.
type RosterServiceImpl struct {
	store secondary.UserStore
	seeds secondary.SeedSource
}

// NewRosterService creates a new RosterService with injected
// dependencies.
func NewRosterService(store secondary.UserStore, seeds secondary.SeedSource) *RosterServiceImpl {
	return &RosterServiceImpl{
		store: store,
		seeds: seeds,
	}
}

// Initialize seeds the store from the seed source when it is empty.
// Failures in fetch, transform, or store are swallowed: the roster
// stays empty but usable, so Initialize never fails the caller.
func (s *RosterServiceImpl) Initialize(ctx context.Context) {
	if s.store.Count(ctx) != 0 {
		return
	}
	s.seed(ctx)
}

// Reseed clears the store and runs the seed path again. The clear is a
// write, so its failure propagates.
func (s *RosterServiceImpl) Reseed(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	s.seed(ctx)
	return nil
}

// seed fetches, transforms, and stores the seed payload. All failures
// are swallowed.
func (s *RosterServiceImpl) seed(ctx context.Context) {
	raw, err := s.seeds.FetchUsers(ctx)
	if err != nil {
		return
	}

	users := transformUsers(raw)
	if len(users) == 0 {
		return
	}

	// PutAll failure also degrades to "nothing to seed".
	_ = s.store.PutAll(ctx, users)
}

// GetPage delegates directly to the store's cursor scan.
func (s *RosterServiceImpl) GetPage(ctx context.Context, offset, limit int) []models.User {
	return s.store.Scan(ctx, offset, limit)
}

// Count returns the number of stored users.
func (s *RosterServiceImpl) Count(ctx context.Context) int {
	return s.store.Count(ctx)
}

// transformUsers converts raw seed records into domain users. Records
// whose date of birth fails to parse are dropped.
func transformUsers(raw []models.RawUser) []models.User {
	users := make([]models.User, 0, len(raw))
	for _, r := range raw {
		dob, err := parseDate(r.DateOfBirth)
		if err != nil {
			continue
		}
		users = append(users, models.User{
			ID:          r.ID,
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			DateOfBirth: dob,
			PhoneNumber: r.PhoneNumber,
			Active:      r.Active,
		})
	}
	return users
}

// parseDate accepts the plain ISO date the seed file uses, plus full
// RFC 3339 timestamps for tolerance.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Ensure RosterServiceImpl implements the interface
var _ primary.RosterService = (*RosterServiceImpl)(nil)
