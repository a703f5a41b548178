package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dprasetya/storyline/internal/client/models"
	"github.com/dprasetya/storyline/internal/client/repositories/cache"
	"github.com/dprasetya/storyline/internal/client/repositories/drafts"
	"github.com/dprasetya/storyline/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoryService(t *testing.T, api *fakeAPI, onlineFn OnlineFn) (StoryService, drafts.Repository, cache.Repository) {
	t.Helper()
	db := setupDB(t)
	draftRepo := drafts.NewSQLiteRepository(db)
	cacheRepo := cache.NewSQLiteRepository(db)
	return NewStoryService(api, draftRepo, cacheRepo, onlineFn, nopLogger{}), draftRepo, cacheRepo
}

func story(id string) models.Story {
	return models.Story{ID: id, Name: "author", Description: "d", PhotoURL: "u", CreatedAt: "2025-01-01T00:00:00Z"}
}

func TestAdd_OfflineQueuesDraft(t *testing.T) {
	apiClient := &fakeAPI{}
	svc, draftRepo, _ := newStoryService(t, apiClient, offline)
	ctx := context.Background()

	photo := bytes.Repeat([]byte{0x5a}, 500*1024)
	outcome, err := svc.Add(ctx, models.NewStory{Description: "test", Photo: photo})
	require.NoError(t, err)
	assert.Equal(t, OutcomeQueued, outcome)
	assert.Zero(t, apiClient.addCalls, "offline submission must not touch the network")

	stored, err := draftRepo.GetAllUnsynced(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.NotEmpty(t, stored[0].ID)
	assert.False(t, stored[0].Synced)
	assert.Nil(t, stored[0].Lat)
	assert.Nil(t, stored[0].Lon)
	assert.Equal(t, photo, stored[0].Photo, "photo bytes must survive storage unchanged")
}

func TestAdd_TransportFailureFallsBackToDraft(t *testing.T) {
	apiClient := &fakeAPI{
		addFn: func(models.NewStory) (*models.Story, error) {
			return nil, fmt.Errorf("%w: connection reset", common.ErrNetworkUnavailable)
		},
	}
	svc, draftRepo, _ := newStoryService(t, apiClient, online)
	ctx := context.Background()

	outcome, err := svc.Add(ctx, models.NewStory{Description: "test", Photo: []byte{1}})
	require.NoError(t, err)
	assert.Equal(t, OutcomeQueued, outcome)
	assert.Equal(t, 1, apiClient.addCalls)

	stored, err := draftRepo.GetAllUnsynced(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestAdd_OnlineSuccessPublishes(t *testing.T) {
	apiClient := &fakeAPI{}
	svc, draftRepo, _ := newStoryService(t, apiClient, online)
	ctx := context.Background()

	outcome, err := svc.Add(ctx, models.NewStory{Description: "test", Photo: []byte{1}})
	require.NoError(t, err)
	assert.Equal(t, OutcomePublished, outcome)

	stored, err := draftRepo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored, "published stories leave no draft behind")
}

func TestAdd_OversizedPhotoRejectedBeforeAnything(t *testing.T) {
	apiClient := &fakeAPI{}
	svc, draftRepo, _ := newStoryService(t, apiClient, online)
	ctx := context.Background()

	_, err := svc.Add(ctx, models.NewStory{
		Description: "too big",
		Photo:       make([]byte, common.MaxPhotoBytes+1),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidationFailed))
	assert.Zero(t, apiClient.addCalls, "no network attempt for invalid input")

	stored, err := draftRepo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored, "no storage attempt for invalid input")
}

func TestAdd_ServerRejectionSurfaces(t *testing.T) {
	apiClient := &fakeAPI{
		addFn: func(models.NewStory) (*models.Story, error) {
			return nil, fmt.Errorf("%w: photo too large", common.ErrRemoteRejected)
		},
	}
	svc, draftRepo, _ := newStoryService(t, apiClient, online)
	ctx := context.Background()

	_, err := svc.Add(ctx, models.NewStory{Description: "test", Photo: []byte{1}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrRemoteRejected))

	stored, err := draftRepo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored, "an explicit server rejection is not queued for retry")
}

func TestList_OfflineServesCache(t *testing.T) {
	apiClient := &fakeAPI{}
	svc, _, cacheRepo := newStoryService(t, apiClient, offline)
	ctx := context.Background()

	require.NoError(t, cacheRepo.ReplaceAll(ctx, []models.Story{story("c1")}, testTime()))

	stories, fromCache, err := svc.List(ctx, 1, 10, false)
	require.NoError(t, err)
	assert.True(t, fromCache)
	require.Len(t, stories, 1)
	assert.Equal(t, "c1", stories[0].ID)
	assert.Zero(t, apiClient.listCalls)
}

func TestList_FetchFailureFallsBackToCache(t *testing.T) {
	apiClient := &fakeAPI{
		storiesFn: func(int, int, bool) ([]models.Story, error) {
			return nil, fmt.Errorf("%w: timeout", common.ErrNetworkUnavailable)
		},
	}
	svc, _, cacheRepo := newStoryService(t, apiClient, online)
	ctx := context.Background()

	require.NoError(t, cacheRepo.ReplaceAll(ctx, []models.Story{story("c1")}, testTime()))

	stories, fromCache, err := svc.List(ctx, 1, 10, false)
	require.NoError(t, err)
	assert.True(t, fromCache, "stale data must be labelled, not presented as fresh")
	assert.Len(t, stories, 1)
}

func TestList_SuccessRefreshesCache(t *testing.T) {
	apiClient := &fakeAPI{
		storiesFn: func(int, int, bool) ([]models.Story, error) {
			return []models.Story{story("a"), story("b")}, nil
		},
	}
	svc, _, cacheRepo := newStoryService(t, apiClient, online)
	ctx := context.Background()

	require.NoError(t, cacheRepo.ReplaceAll(ctx, []models.Story{story("stale")}, testTime()))

	stories, fromCache, err := svc.List(ctx, 1, 10, false)
	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Len(t, stories, 2)

	cached, err := cacheRepo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, cached, 2, "cache holds exactly the new snapshot")
	assert.Equal(t, "a", cached[0].ID)
}

// A filtered fetch with zero results makes the caller retry without the
// filter; the cache then holds the second, unfiltered result set.
func TestList_LocationFilterRetryCachesSecondSet(t *testing.T) {
	apiClient := &fakeAPI{
		storiesFn: func(page, size int, withLocation bool) ([]models.Story, error) {
			if withLocation {
				return nil, nil
			}
			return []models.Story{story("full1"), story("full2")}, nil
		},
	}
	svc, _, cacheRepo := newStoryService(t, apiClient, online)
	ctx := context.Background()

	got, fromCache, err := svc.List(ctx, 1, 10, true)
	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Len(t, got, 2, "empty filtered page falls back to the unfiltered list")
	assert.Equal(t, 2, apiClient.listCalls, "exactly one unfiltered retry")

	cached, err := cacheRepo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, cached, 2, "cache ends up with the unfiltered set")
}

func TestList_LocationFilterWithResultsNoRetry(t *testing.T) {
	apiClient := &fakeAPI{
		storiesFn: func(page, size int, withLocation bool) ([]models.Story, error) {
			return []models.Story{story("located")}, nil
		},
	}
	svc, _, _ := newStoryService(t, apiClient, online)

	got, _, err := svc.List(context.Background(), 1, 10, true)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, apiClient.listCalls, "a non-empty filtered page is served as-is")
}

func TestList_LocationFilterRetryFailureServesCache(t *testing.T) {
	apiClient := &fakeAPI{
		storiesFn: func(page, size int, withLocation bool) ([]models.Story, error) {
			if withLocation {
				return nil, nil
			}
			return nil, common.ErrNetworkUnavailable
		},
	}
	svc, _, cacheRepo := newStoryService(t, apiClient, online)
	ctx := context.Background()

	require.NoError(t, cacheRepo.ReplaceAll(ctx, []models.Story{story("old")}, testTime()))

	got, fromCache, err := svc.List(ctx, 1, 10, true)
	require.NoError(t, err)
	assert.True(t, fromCache)
	assert.Len(t, got, 1, "failed retry falls back to the snapshot")
}

func TestList_UnauthenticatedSurfaces(t *testing.T) {
	apiClient := &fakeAPI{
		storiesFn: func(int, int, bool) ([]models.Story, error) {
			return nil, common.ErrUnauthenticated
		},
	}
	svc, _, _ := newStoryService(t, apiClient, online)

	_, _, err := svc.List(context.Background(), 1, 10, false)
	assert.True(t, errors.Is(err, common.ErrUnauthenticated))
}
