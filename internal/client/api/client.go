package api

import (
	"context"

	"github.com/dprasetya/storyline/internal/client/models"
)

// Client is the remote story API surface consumed by the services. It only
// performs network calls; persisting results locally is the caller's
// decision.
type Client interface {
	// Login exchanges credentials for a bearer token and display name.
	Login(ctx context.Context, email, password string) (*models.LoginResult, error)

	// Register creates an account. The new user still has to log in.
	Register(ctx context.Context, name, email, password string) error

	// GetStories lists stories for a page. A zero-length result is not an
	// error: callers asking with the location filter use that distinction
	// to retry without it.
	GetStories(ctx context.Context, page, size int, withLocation bool) ([]models.Story, error)

	// AddStory submits one story as a multipart payload. The returned
	// record is nil when the server confirms without echoing the story.
	AddStory(ctx context.Context, story models.NewStory) (*models.Story, error)

	// VapidPublicKey discovers the server's push key, if it exposes one.
	VapidPublicKey(ctx context.Context) (string, error)
}
