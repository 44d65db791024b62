package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/albumkeeper/internal/common"
	"github.com/dmitrijs2005/albumkeeper/internal/dbx"
	"github.com/dmitrijs2005/albumkeeper/internal/server/models"
)

// PostgresRepository implements media record storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectColumns = `id, album_id, uploader_id, kind, asset_id, width, height,
	duration_secs, size_bytes, correlation_key, ready, deleted, created_at, version`

func (r *PostgresRepository) Create(ctx context.Context, m *models.Media) error {
	query := `
		INSERT INTO media (id, album_id, uploader_id, kind, asset_id, width, height,
			duration_secs, size_bytes, correlation_key, ready, deleted, created_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.AlbumID, m.UploaderID, m.Kind, m.AssetID, m.Width, m.Height,
		m.DurationSecs, m.SizeBytes, m.CorrelationKey, m.Ready, m.Deleted, m.CreatedAt, m.Version)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) SelectByAlbum(ctx context.Context, albumID string) ([]*models.Media, error) {
	query := `SELECT ` + selectColumns + ` FROM media WHERE album_id=$1 AND NOT deleted ORDER BY created_at`
	return r.selectMany(ctx, query, albumID)
}

func (r *PostgresRepository) SelectUpdated(ctx context.Context, albumID string, minVersion int64) ([]*models.Media, error) {
	query := `SELECT ` + selectColumns + ` FROM media WHERE album_id=$1 AND version>$2 ORDER BY version`
	return r.selectMany(ctx, query, albumID, minVersion)
}

func (r *PostgresRepository) GetByAssetID(ctx context.Context, assetID string) (*models.Media, error) {
	query := `SELECT ` + selectColumns + ` FROM media WHERE asset_id=$1`

	m := &models.Media{}
	err := r.db.QueryRowContext(ctx, query, assetID).Scan(
		&m.ID, &m.AlbumID, &m.UploaderID, &m.Kind, &m.AssetID, &m.Width, &m.Height,
		&m.DurationSecs, &m.SizeBytes, &m.CorrelationKey, &m.Ready, &m.Deleted, &m.CreatedAt, &m.Version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) MarkReadyByAssetID(ctx context.Context, assetID string, version int64) error {
	query := `UPDATE media SET ready=TRUE, version=$2 WHERE asset_id=$1`
	return r.execExpectingRow(ctx, query, assetID, version)
}

func (r *PostgresRepository) SoftDelete(ctx context.Context, id string, version int64) error {
	query := `UPDATE media SET deleted=TRUE, version=$2 WHERE id=$1`
	return r.execExpectingRow(ctx, query, id, version)
}

func (r *PostgresRepository) execExpectingRow(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) selectMany(ctx context.Context, query string, args ...any) ([]*models.Media, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Media
	for rows.Next() {
		m := &models.Media{}
		if err := rows.Scan(
			&m.ID, &m.AlbumID, &m.UploaderID, &m.Kind, &m.AssetID, &m.Width, &m.Height,
			&m.DurationSecs, &m.SizeBytes, &m.CorrelationKey, &m.Ready, &m.Deleted, &m.CreatedAt, &m.Version); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}
