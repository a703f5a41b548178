package favorites

import (
	"context"

	"github.com/dprasetya/storyline/internal/client/models"
)

// Repository stores user-curated story bookmarks. Favorites keep a
// denormalized copy of the story and are never touched by cache refreshes.
type Repository interface {
	// Put upserts a favorite by id. Favoriting the same story twice
	// overwrites the existing row rather than duplicating it.
	Put(ctx context.Context, fav *models.Favorite) error

	// Remove deletes a favorite. Removing an unknown id is not an error.
	Remove(ctx context.Context, id string) error

	// IsFavorite reports whether the story id is bookmarked.
	IsFavorite(ctx context.Context, id string) (bool, error)

	// GetAll lists favorites ordered by when they were saved.
	GetAll(ctx context.Context) ([]models.Favorite, error)
}
