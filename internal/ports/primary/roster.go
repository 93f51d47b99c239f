// Package primary defines the primary ports (driving adapters) for the
// application: the interfaces the CLI and TUI call into.
package primary

import (
	"context"

	"github.com/example/roster/internal/models"
)

// RosterService is the primary port for roster data access. It decides
// whether the local store needs seeding and exposes paged reads.
type RosterService interface {
	// Initialize ensures data exists: when the store is empty it
	// fetches the seed payload, transforms it, and persists it.
	// Initialize never fails the caller: any fetch, transform, or
	// store failure degrades to an empty-but-usable roster.
	Initialize(ctx context.Context)

	// GetPage returns up to limit users starting at offset, in the
	// store's natural key order. Underlying read failures surface as
	// an empty page.
	GetPage(ctx context.Context, offset, limit int) []models.User

	// Count returns the number of stored users (0 on storage failure).
	Count(ctx context.Context) int

	// Reseed clears the store and runs the seed path again. Unlike
	// Initialize, the clear is a write and its failure propagates.
	Reseed(ctx context.Context) error
}
