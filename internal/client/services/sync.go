package services

import (
	"context"
	"sync"

	"github.com/dprasetya/storyline/internal/client/api"
	"github.com/dprasetya/storyline/internal/client/creds"
	"github.com/dprasetya/storyline/internal/client/models"
	"github.com/dprasetya/storyline/internal/client/repositories/drafts"
	"github.com/dprasetya/storyline/internal/logging"
)

// Skip reasons reported when a sync run was not attempted.
const (
	SkipNotAuthenticated = "not authenticated"
	SkipOffline          = "offline"
	SkipAlreadyRunning   = "sync already running"
)

// SyncResult is the aggregate outcome of one reconciliation run.
type SyncResult struct {
	Synced int
	Failed int
	Total  int

	// Skipped is non-empty when the run did not start, and names why.
	Skipped string
}

// SyncService drains unsynced drafts to the server.
type SyncService interface {
	// SyncPending uploads every unsynced draft, one at a time in stored
	// order. One draft's failure never aborts the others; failed drafts
	// stay unsynced and are retried on the next run. Only one run may be
	// active at a time; a concurrent call returns a skipped result.
	SyncPending(ctx context.Context) SyncResult
}

type syncService struct {
	client    api.Client
	draftRepo drafts.Repository
	credStore creds.Store
	online    OnlineFn
	log       logging.Logger

	mu sync.Mutex
}

// NewSyncService constructs a SyncService.
func NewSyncService(client api.Client, draftRepo drafts.Repository, credStore creds.Store,
	online OnlineFn, log logging.Logger) SyncService {
	return &syncService{
		client:    client,
		draftRepo: draftRepo,
		credStore: credStore,
		online:    online,
		log:       log,
	}
}

func (s *syncService) SyncPending(ctx context.Context) SyncResult {
	if !s.mu.TryLock() {
		return SyncResult{Skipped: SkipAlreadyRunning}
	}
	defer s.mu.Unlock()

	if s.credStore.Get(creds.KeyToken) == "" {
		return SyncResult{Skipped: SkipNotAuthenticated}
	}
	if !s.online(ctx) {
		return SyncResult{Skipped: SkipOffline}
	}

	pending, err := s.draftRepo.GetAllUnsynced(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read pending drafts", "error", err)
		return SyncResult{Skipped: err.Error()}
	}
	if len(pending) == 0 {
		return SyncResult{}
	}

	s.log.Info(ctx, "syncing pending drafts", "count", len(pending))

	result := SyncResult{Total: len(pending)}
	for _, draft := range pending {
		if err := s.syncOne(ctx, draft); err != nil {
			// the draft stays unsynced and retries on the next run
			s.log.Warn(ctx, "draft sync failed", "draft_id", draft.ID, "error", err)
			result.Failed++
			continue
		}
		result.Synced++
	}

	s.log.Info(ctx, "sync finished",
		"synced", result.Synced, "failed", result.Failed, "total", result.Total)
	return result
}

func (s *syncService) syncOne(ctx context.Context, draft models.Draft) error {
	_, err := s.client.AddStory(ctx, models.NewStory{
		Description: draft.Description,
		Photo:       draft.Photo,
		PhotoName:   draft.PhotoName,
		PhotoType:   draft.PhotoType,
		Lat:         draft.Lat,
		Lon:         draft.Lon,
	})
	if err != nil {
		return err
	}
	return s.draftRepo.MarkSynced(ctx, draft.ID)
}
