package drafts

import (
	"context"
	"fmt"

	"github.com/dprasetya/storyline/internal/client/models"
	"github.com/dprasetya/storyline/internal/common"
	"github.com/dprasetya/storyline/internal/dbx"
)

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, d *models.Draft) error {
	query := `INSERT INTO drafts (id, description, photo, photo_name, photo_type, lat, lon, created_at, synced)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID, d.Description, d.Photo, d.PhotoName, d.PhotoType, d.Lat, d.Lon, d.CreatedAt, d.Synced)
	if err != nil {
		return fmt.Errorf("%w: failed to insert draft: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Draft, error) {
	return r.query(ctx, `SELECT id, description, photo, photo_name, photo_type, lat, lon, created_at, synced
		FROM drafts ORDER BY created_at, id`)
}

func (r *SQLiteRepository) GetAllUnsynced(ctx context.Context) ([]models.Draft, error) {
	return r.query(ctx, `SELECT id, description, photo, photo_name, photo_type, lat, lon, created_at, synced
		FROM drafts WHERE synced=0 ORDER BY created_at, id`)
}

func (r *SQLiteRepository) query(ctx context.Context, query string) ([]models.Draft, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		if dbx.IsMissingTable(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to select drafts: %w", err)
	}
	defer rows.Close()

	var result []models.Draft
	for rows.Next() {
		var d models.Draft
		if err := rows.Scan(&d.ID, &d.Description, &d.Photo, &d.PhotoName, &d.PhotoType,
			&d.Lat, &d.Lon, &d.CreatedAt, &d.Synced); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// MarkSynced expects exactly one row to be affected: marking an unknown or
// already synced draft is a bug in the caller.
func (r *SQLiteRepository) MarkSynced(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE drafts SET synced=1 WHERE id=? AND synced=0`, id)
	if err != nil {
		return fmt.Errorf("%w: failed to mark draft synced: %v", common.ErrStorageUnavailable, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return fmt.Errorf("%w: draft %s", common.ErrNotFound, id)
	}
	return nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM drafts WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("%w: failed to delete draft: %v", common.ErrStorageUnavailable, err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return fmt.Errorf("%w: draft %s", common.ErrNotFound, id)
	}
	return nil
}
