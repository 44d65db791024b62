// Package records stores authoritative media records.
package records

import (
	"context"

	"github.com/dmitrijs2005/albumkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, m *models.Media) error

	// SelectByAlbum returns all live records for an album, oldest first.
	SelectByAlbum(ctx context.Context, albumID string) ([]*models.Media, error)

	// SelectUpdated returns records for albumID with version > minVersion,
	// in version order. This is the watch-stream cursor query.
	SelectUpdated(ctx context.Context, albumID string, minVersion int64) ([]*models.Media, error)

	// MarkReadyByAssetID flips readiness for the record holding the given
	// provider asset id (webhook path). Returns common.ErrNotFound for an
	// unknown asset id.
	MarkReadyByAssetID(ctx context.Context, assetID string, version int64) error

	// GetByAssetID returns the record holding the given provider asset id.
	GetByAssetID(ctx context.Context, assetID string) (*models.Media, error)

	// SoftDelete flags a record deleted without removing the row.
	SoftDelete(ctx context.Context, id string, version int64) error
}
