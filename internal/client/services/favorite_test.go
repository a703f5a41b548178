package services

import (
	"context"
	"testing"
	"time"

	"github.com/dprasetya/storyline/internal/client/repositories/favorites"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteService_SaveAndList(t *testing.T) {
	db := setupDB(t)
	svc := NewFavoriteService(favorites.NewSQLiteRepository(db)).(*favoriteService)
	svc.now = testTime
	ctx := context.Background()

	fav, err := svc.Save(ctx, story("s1"))
	require.NoError(t, err)
	assert.Equal(t, "2025-03-14T15:09:26Z", fav.SavedAt)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "s1", got[0].ID)
	assert.NotEmpty(t, got[0].SavedAt)
}

func TestFavoriteService_SaveTwiceUpdatesStamp(t *testing.T) {
	db := setupDB(t)
	svc := NewFavoriteService(favorites.NewSQLiteRepository(db)).(*favoriteService)
	ctx := context.Background()

	svc.now = testTime
	_, err := svc.Save(ctx, story("s1"))
	require.NoError(t, err)

	svc.now = func() time.Time { return testTime().Add(time.Hour) }
	_, err = svc.Save(ctx, story("s1"))
	require.NoError(t, err)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1, "no duplicate entry")
	assert.Equal(t, "2025-03-14T16:09:26Z", got[0].SavedAt)
}

func TestFavoriteService_RemoveAndIsFavorite(t *testing.T) {
	db := setupDB(t)
	svc := NewFavoriteService(favorites.NewSQLiteRepository(db))
	ctx := context.Background()

	_, err := svc.Save(ctx, story("s1"))
	require.NoError(t, err)

	ok, err := svc.IsFavorite(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, svc.Remove(ctx, "s1"))

	ok, err = svc.IsFavorite(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFavoriteService_DenormalizedCopy(t *testing.T) {
	db := setupDB(t)
	svc := NewFavoriteService(favorites.NewSQLiteRepository(db))
	ctx := context.Background()

	lat, lon := -6.2, 106.8
	s := story("s1")
	s.Lat, s.Lon = &lat, &lon

	fav, err := svc.Save(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, s.Name, fav.Name)
	assert.Equal(t, s.Description, fav.Description)
	assert.Equal(t, s.PhotoURL, fav.PhotoURL)
	assert.Equal(t, s.CreatedAt, fav.CreatedAt)
	require.NotNil(t, fav.Lat)
	assert.Equal(t, lat, *fav.Lat)
}
