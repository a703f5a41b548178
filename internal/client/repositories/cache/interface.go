package cache

import (
	"context"
	"time"

	"github.com/dprasetya/storyline/internal/client/models"
)

// Repository holds the last successfully fetched story list. The cache is a
// single snapshot: a refresh replaces the whole collection, so stale entries
// never sit alongside fresh ones.
type Repository interface {
	// ReplaceAll atomically clears the cache and stores the given stories,
	// stamping each row with at. Concurrent readers observe either the old
	// snapshot or the new one, never a mix.
	ReplaceAll(ctx context.Context, stories []models.Story, at time.Time) error

	// GetAll returns the cached snapshot with the internal timestamp
	// stripped. An empty or missing cache yields an empty result.
	GetAll(ctx context.Context) ([]models.Story, error)
}
