package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dprasetya/storyline/internal/client/models"
	"github.com/dprasetya/storyline/internal/logging"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE drafts (
  id TEXT PRIMARY KEY,
  description TEXT NOT NULL,
  photo BLOB NOT NULL,
  photo_name TEXT NOT NULL DEFAULT 'photo.jpg',
  photo_type TEXT NOT NULL DEFAULT 'image/jpeg',
  lat REAL,
  lon REAL,
  created_at TEXT NOT NULL,
  synced INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE cache (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  photo_url TEXT NOT NULL DEFAULT '',
  lat REAL,
  lon REAL,
  created_at TEXT NOT NULL DEFAULT '',
  cached_at INTEGER NOT NULL
);
CREATE TABLE favorites (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  photo_url TEXT NOT NULL DEFAULT '',
  lat REAL,
  lon REAL,
  created_at TEXT NOT NULL DEFAULT '',
  saved_at TEXT NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

// fakeAPI is a scripted api.Client. Each behavior func may be nil, in which
// case the call succeeds with zero values.
type fakeAPI struct {
	loginFn    func(email, password string) (*models.LoginResult, error)
	storiesFn  func(page, size int, withLocation bool) ([]models.Story, error)
	addFn      func(story models.NewStory) (*models.Story, error)
	addCalls   int
	listCalls  int
	registered []string
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	if f.loginFn != nil {
		return f.loginFn(email, password)
	}
	return &models.LoginResult{Token: "tok", Name: "tester"}, nil
}

func (f *fakeAPI) Register(ctx context.Context, name, email, password string) error {
	f.registered = append(f.registered, email)
	return nil
}

func (f *fakeAPI) GetStories(ctx context.Context, page, size int, withLocation bool) ([]models.Story, error) {
	f.listCalls++
	if f.storiesFn != nil {
		return f.storiesFn(page, size, withLocation)
	}
	return nil, nil
}

func (f *fakeAPI) AddStory(ctx context.Context, story models.NewStory) (*models.Story, error) {
	f.addCalls++
	if f.addFn != nil {
		return f.addFn(story)
	}
	return nil, nil
}

func (f *fakeAPI) VapidPublicKey(ctx context.Context) (string, error) {
	return "", nil
}

// nopLogger satisfies logging.Logger and discards everything.
type nopLogger struct{}

func (nopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, msg string, args ...any) {}
func (nopLogger) With(args ...any) logging.Logger                    { return nopLogger{} }

func online(ctx context.Context) bool  { return true }
func offline(ctx context.Context) bool { return false }

func testTime() time.Time {
	return time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
}
