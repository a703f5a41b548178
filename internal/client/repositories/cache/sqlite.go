package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dprasetya/storyline/internal/client/models"
	"github.com/dprasetya/storyline/internal/common"
	"github.com/dprasetya/storyline/internal/dbx"
)

// SQLiteRepository implements Repository. It holds a *sql.DB rather than a
// DBTX because ReplaceAll owns its transaction.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a SQLiteRepository bound to the given database.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) ReplaceAll(ctx context.Context, stories []models.Story, at time.Time) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM cache`); err != nil {
			return err
		}
		for _, s := range stories {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO cache (id, name, description, photo_url, lat, lon, created_at, cached_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				s.ID, s.Name, s.Description, s.PhotoURL, s.Lat, s.Lon, s.CreatedAt, at.UnixMilli())
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: failed to replace cache: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Story, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, photo_url, lat, lon, created_at FROM cache ORDER BY cached_at, id`)
	if err != nil {
		if dbx.IsMissingTable(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to select cache: %w", err)
	}
	defer rows.Close()

	var result []models.Story
	for rows.Next() {
		var s models.Story
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.PhotoURL, &s.Lat, &s.Lon, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
