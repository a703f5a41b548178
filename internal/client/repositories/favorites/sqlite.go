package favorites

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dprasetya/storyline/internal/client/models"
	"github.com/dprasetya/storyline/internal/common"
	"github.com/dprasetya/storyline/internal/dbx"
)

// SQLiteRepository implements Repository over a DBTX.
//
// The favorites table arrived in schema version 2; reads tolerate a database
// that has not been upgraded yet and degrade to empty results.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Put(ctx context.Context, f *models.Favorite) error {
	query := `INSERT INTO favorites (id, name, description, photo_url, lat, lon, created_at, saved_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET name = excluded.name,
				description = excluded.description,
				photo_url = excluded.photo_url,
				lat = excluded.lat,
				lon = excluded.lon,
				created_at = excluded.created_at,
				saved_at = excluded.saved_at`
	_, err := r.db.ExecContext(ctx, query,
		f.ID, f.Name, f.Description, f.PhotoURL, f.Lat, f.Lon, f.CreatedAt, f.SavedAt)
	if err != nil {
		return fmt.Errorf("%w: failed to upsert favorite: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}

func (r *SQLiteRepository) Remove(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE id=?`, id)
	if err != nil {
		if dbx.IsMissingTable(err) {
			return nil
		}
		return fmt.Errorf("%w: failed to remove favorite: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}

func (r *SQLiteRepository) IsFavorite(ctx context.Context, id string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM favorites WHERE id=?`, id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || dbx.IsMissingTable(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return true, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Favorite, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, photo_url, lat, lon, created_at, saved_at
		 FROM favorites ORDER BY saved_at, id`)
	if err != nil {
		if dbx.IsMissingTable(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to select favorites: %w", err)
	}
	defer rows.Close()

	var result []models.Favorite
	for rows.Next() {
		var f models.Favorite
		if err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.PhotoURL,
			&f.Lat, &f.Lon, &f.CreatedAt, &f.SavedAt); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
