package albums

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/albumkeeper/internal/dbx"
)

// PostgresRepository implements album version counters over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) IncrementCurrentVersion(ctx context.Context, albumID string) (int64, error) {
	query := `
		INSERT INTO albums (id, current_version) VALUES ($1, 1)
		ON CONFLICT (id) DO UPDATE SET current_version = albums.current_version + 1
		RETURNING current_version;
	`
	var version int64
	if err := r.db.QueryRowContext(ctx, query, albumID).Scan(&version); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return version, nil
}

func (r *PostgresRepository) CurrentVersion(ctx context.Context, albumID string) (int64, error) {
	query := `SELECT current_version FROM albums WHERE id = $1`

	var version int64
	err := r.db.QueryRowContext(ctx, query, albumID).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return version, nil
}
