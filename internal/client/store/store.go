// Package store opens the local story database and wires up the
// per-collection repositories.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dprasetya/storyline/internal/client/migrations"
	"github.com/dprasetya/storyline/internal/client/repositories/cache"
	"github.com/dprasetya/storyline/internal/client/repositories/drafts"
	"github.com/dprasetya/storyline/internal/client/repositories/favorites"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Store bundles the open database handle and the repositories over it.
type Store struct {
	DB        *sql.DB
	Drafts    drafts.Repository
	Cache     cache.Repository
	Favorites favorites.Repository
}

// RunMigrations applies the embedded goose migrations. Migrations use
// IF NOT EXISTS throughout, so applying them to a database that already has
// some of the tables only adds what is missing.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating on first use) the local database at dsn, brings the
// schema up to date, and returns the repositories.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{
		DB:        db,
		Drafts:    drafts.NewSQLiteRepository(db),
		Cache:     cache.NewSQLiteRepository(db),
		Favorites: favorites.NewSQLiteRepository(db),
	}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.DB.Close()
}
