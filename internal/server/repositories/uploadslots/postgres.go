package uploadslots

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/albumkeeper/internal/common"
	"github.com/dmitrijs2005/albumkeeper/internal/dbx"
	"github.com/dmitrijs2005/albumkeeper/internal/server/models"
)

// PostgresRepository implements upload slot storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, slot *models.UploadSlot) error {
	query := `
		INSERT INTO upload_slots (id, owner_id, filename, upload_url, used, created_at)
		VALUES ($1, $2, $3, $4, FALSE, $5);
	`
	_, err := r.db.ExecContext(ctx, query, slot.ID, slot.OwnerID, slot.Filename, slot.UploadURL, slot.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Consume(ctx context.Context, id string) error {
	// The WHERE NOT used guard makes consumption atomic: of two racing
	// consumers exactly one sees an affected row.
	query := `UPDATE upload_slots SET used=TRUE WHERE id=$1 AND NOT used`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 1 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM upload_slots WHERE id=$1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if exists {
		return common.ErrCredentialReused
	}
	return common.ErrNotFound
}
