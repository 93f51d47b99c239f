// Package secondary defines the secondary ports (driven adapters) for
// the application. These are the interfaces through which the
// application drives external systems: the local store and the seed
// source.
package secondary

import (
	"context"
	"errors"

	"github.com/example/roster/internal/models"
)

// Storage error sentinels. Adapters wrap these with fmt.Errorf("%w: ...")
// so callers can classify failures with errors.Is.
var (
	// ErrStorageInit means the underlying engine could not be opened.
	ErrStorageInit = errors.New("storage init failed")

	// ErrStorageWrite means a put or clear did not persist.
	ErrStorageWrite = errors.New("storage write failed")

	// ErrSeedFetch means the seed source was unreachable or returned
	// a malformed payload.
	ErrSeedFetch = errors.New("seed fetch failed")
)

// UserStore defines the secondary port for user persistence: a single
// table keyed by user ID.
//
// Read operations (Count, Scan) deliberately mask underlying failures
// as zero/empty results so the UI stays usable on a storage hiccup.
// Write operations (PutAll, Clear) surface failures, because the caller
// needs to know persistence did not happen.
type UserStore interface {
	// PutAll upserts every user by ID in a single transaction. If any
	// individual write fails the whole call fails wrapping
	// ErrStorageWrite and no rows are persisted.
	PutAll(ctx context.Context, users []models.User) error

	// Count returns the number of stored users. Underlying errors are
	// masked to 0.
	Count(ctx context.Context) int

	// Scan walks the table in key order, skips the first offset rows,
	// and returns up to limit users. Underlying errors are masked to
	// an empty result.
	Scan(ctx context.Context, offset, limit int) []models.User

	// Clear deletes all rows. Fails wrapping ErrStorageWrite.
	Clear(ctx context.Context) error
}

// SeedSource defines the secondary port for the one-time seed payload.
// It is consulted only when the store is empty at initialize time.
type SeedSource interface {
	// FetchUsers returns the raw seed records. Failures wrap
	// ErrSeedFetch.
	FetchUsers(ctx context.Context) ([]models.RawUser, error)
}
