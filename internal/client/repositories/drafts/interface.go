package drafts

import (
	"context"

	"github.com/dprasetya/storyline/internal/client/models"
)

// Repository describes storage operations for locally authored story drafts.
// Implementations are backed by the local SQLite database.
type Repository interface {
	// Add inserts a new draft. The draft id must be unique.
	Add(ctx context.Context, draft *models.Draft) error

	// GetAll returns every draft, synced or not, in creation order.
	GetAll(ctx context.Context) ([]models.Draft, error)

	// GetAllUnsynced returns drafts not yet confirmed by the server, in
	// creation order. Reconciliation relies on this order being stable
	// between runs.
	GetAllUnsynced(ctx context.Context) ([]models.Draft, error)

	// MarkSynced flips the synced flag after the server accepted the draft.
	MarkSynced(ctx context.Context, id string) error

	// DeleteByID removes a draft permanently.
	DeleteByID(ctx context.Context, id string) error
}
