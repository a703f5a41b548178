// Package services contains the application services of the storyline
// client: story listing and submission with offline fallback, favorites,
// authentication, and draft reconciliation.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dprasetya/storyline/internal/client/api"
	"github.com/dprasetya/storyline/internal/client/models"
	"github.com/dprasetya/storyline/internal/client/repositories/cache"
	"github.com/dprasetya/storyline/internal/client/repositories/drafts"
	"github.com/dprasetya/storyline/internal/common"
	"github.com/dprasetya/storyline/internal/logging"
)

// OnlineFn reports current network reachability. It is consulted once per
// operation, never polled.
type OnlineFn func(ctx context.Context) bool

// AddOutcome says where a submitted story ended up.
type AddOutcome int

const (
	// OutcomePublished means the server accepted the story.
	OutcomePublished AddOutcome = iota
	// OutcomeQueued means the story was stored as a local draft and will
	// be uploaded by the next reconciliation run.
	OutcomeQueued
)

// StoryService lists stories with a cache fallback and submits new ones
// with a draft fallback.
type StoryService interface {
	// List returns stories for the page. fromCache is true when the data
	// is the last cached snapshot rather than a fresh fetch, so the UI
	// can label it as such.
	List(ctx context.Context, page, size int, withLocation bool) (stories []models.Story, fromCache bool, err error)

	// Add validates and submits a story. Offline, or when the transport
	// fails, the story becomes a local draft instead.
	Add(ctx context.Context, story models.NewStory) (AddOutcome, error)

	// Drafts lists all local drafts, synced and pending.
	Drafts(ctx context.Context) ([]models.Draft, error)

	// DeleteDraft removes a draft by id.
	DeleteDraft(ctx context.Context, id string) error
}

type storyService struct {
	client    api.Client
	draftRepo drafts.Repository
	cacheRepo cache.Repository
	online    OnlineFn
	log       logging.Logger
	now       func() time.Time
}

// NewStoryService constructs a StoryService.
func NewStoryService(client api.Client, draftRepo drafts.Repository, cacheRepo cache.Repository,
	online OnlineFn, log logging.Logger) StoryService {
	return &storyService{
		client:    client,
		draftRepo: draftRepo,
		cacheRepo: cacheRepo,
		online:    online,
		log:       log,
		now:       time.Now,
	}
}

func (s *storyService) List(ctx context.Context, page, size int, withLocation bool) ([]models.Story, bool, error) {
	if !s.online(ctx) {
		stories, err := s.cacheRepo.GetAll(ctx)
		return stories, true, err
	}

	stories, err := s.client.GetStories(ctx, page, size, withLocation)
	if err != nil {
		if errors.Is(err, common.ErrUnauthenticated) {
			return nil, false, err
		}
		// reachability was a hint; fall back to the snapshot
		s.log.Warn(ctx, "story fetch failed, serving cache", "error", err)
		cached, cacheErr := s.cacheRepo.GetAll(ctx)
		return cached, true, cacheErr
	}

	// Some deployments return nothing under the location filter; ask once
	// more without it so the page is not left blank.
	if withLocation && len(stories) == 0 {
		s.log.Info(ctx, "no located stories, retrying unfiltered")
		stories, err = s.client.GetStories(ctx, page, size, false)
		if err != nil {
			if errors.Is(err, common.ErrUnauthenticated) {
				return nil, false, err
			}
			s.log.Warn(ctx, "story fetch failed, serving cache", "error", err)
			cached, cacheErr := s.cacheRepo.GetAll(ctx)
			return cached, true, cacheErr
		}
	}

	if err := s.cacheRepo.ReplaceAll(ctx, stories, s.now()); err != nil {
		// the fetch succeeded; a failed refresh must not fail the read
		s.log.Error(ctx, "cache refresh failed", "error", err)
	}
	return stories, false, nil
}

func (s *storyService) Add(ctx context.Context, story models.NewStory) (AddOutcome, error) {
	if err := story.Validate(); err != nil {
		return 0, err
	}

	if !s.online(ctx) {
		return s.queueDraft(ctx, story)
	}

	_, err := s.client.AddStory(ctx, story)
	if err == nil {
		return OutcomePublished, nil
	}
	if errors.Is(err, common.ErrNetworkUnavailable) {
		s.log.Warn(ctx, "story submission failed, saving draft", "error", err)
		return s.queueDraft(ctx, story)
	}
	// Unauthenticated and server rejections surface to the caller
	return 0, err
}

func (s *storyService) queueDraft(ctx context.Context, story models.NewStory) (AddOutcome, error) {
	draft := models.NewDraft(story, s.now())
	if err := s.draftRepo.Add(ctx, &draft); err != nil {
		return 0, fmt.Errorf("failed to queue draft: %w", err)
	}
	s.log.Info(ctx, "story queued for sync", "draft_id", draft.ID)
	return OutcomeQueued, nil
}

func (s *storyService) Drafts(ctx context.Context) ([]models.Draft, error) {
	return s.draftRepo.GetAll(ctx)
}

func (s *storyService) DeleteDraft(ctx context.Context, id string) error {
	return s.draftRepo.DeleteByID(ctx, id)
}
