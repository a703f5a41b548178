package services

import (
	"context"
	"time"

	"github.com/dprasetya/storyline/internal/client/models"
	"github.com/dprasetya/storyline/internal/client/repositories/favorites"
)

// FavoriteService manages story bookmarks. Favorites are denormalized
// copies, independent of the cache lifecycle.
type FavoriteService interface {
	// Save bookmarks a story, stamping it with the current time. Saving
	// the same story again refreshes the stamp without duplicating.
	Save(ctx context.Context, story models.Story) (models.Favorite, error)
	Remove(ctx context.Context, id string) error
	IsFavorite(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]models.Favorite, error)
}

type favoriteService struct {
	repo favorites.Repository
	now  func() time.Time
}

// NewFavoriteService constructs a FavoriteService.
func NewFavoriteService(repo favorites.Repository) FavoriteService {
	return &favoriteService{repo: repo, now: time.Now}
}

func (f *favoriteService) Save(ctx context.Context, story models.Story) (models.Favorite, error) {
	fav := models.Favorite{
		ID:          story.ID,
		Name:        story.Name,
		Description: story.Description,
		PhotoURL:    story.PhotoURL,
		Lat:         story.Lat,
		Lon:         story.Lon,
		CreatedAt:   story.CreatedAt,
		SavedAt:     f.now().UTC().Format(time.RFC3339),
	}
	if err := f.repo.Put(ctx, &fav); err != nil {
		return models.Favorite{}, err
	}
	return fav, nil
}

func (f *favoriteService) Remove(ctx context.Context, id string) error {
	return f.repo.Remove(ctx, id)
}

func (f *favoriteService) IsFavorite(ctx context.Context, id string) (bool, error) {
	return f.repo.IsFavorite(ctx, id)
}

func (f *favoriteService) List(ctx context.Context) ([]models.Favorite, error) {
	return f.repo.GetAll(ctx)
}
