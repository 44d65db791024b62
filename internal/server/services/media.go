package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/albumkeeper/internal/common"
	"github.com/dmitrijs2005/albumkeeper/internal/dbx"
	"github.com/dmitrijs2005/albumkeeper/internal/media"
	sc "github.com/dmitrijs2005/albumkeeper/internal/server/config"
	"github.com/dmitrijs2005/albumkeeper/internal/server/models"
	"github.com/dmitrijs2005/albumkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// MediaService owns the authoritative media records of every album: the
// createMedia persistence step of the upload flow, listing, the version
// cursor the watch stream advances on, readiness flips from the transcode
// webhook, and soft deletion.
type MediaService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewMediaService(db *sql.DB, repomanager repomanager.RepositoryManager, config *sc.Config) *MediaService {
	return &MediaService{
		db:          db,
		repomanager: repomanager,
		config:      config,
	}
}

// CreateMedia persists one uploaded asset as an authoritative record. The
// upload slot matching the asset id is consumed in the same transaction, so
// a replayed credential cannot produce a second record: the second use of
// the same slot fails with common.ErrCredentialReused and nothing is
// written.
func (s *MediaService) CreateMedia(ctx context.Context, albumID, uploaderID string, asset media.Asset, sizeBytes int64, correlationKey string) (media.Record, error) {

	m := &models.Media{
		ID:             uuid.New().String(),
		AlbumID:        albumID,
		UploaderID:     uploaderID,
		SizeBytes:      sizeBytes,
		CorrelationKey: correlationKey,
		CreatedAt:      time.Now(),
	}
	if err := m.FromAsset(asset); err != nil {
		return media.Record{}, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	// Images are servable as soon as they land. Videos stay unready until
	// the transcode webhook reports them.
	m.Ready = m.Kind == string(media.KindImage)

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.UploadSlots(tx).Consume(ctx, m.AssetID); err != nil {
			return err
		}

		version, err := s.repomanager.Albums(tx).IncrementCurrentVersion(ctx, albumID)
		if err != nil {
			return err
		}
		m.Version = version

		return s.repomanager.Records(tx).Create(ctx, m)
	})

	if err != nil {
		if errors.Is(err, common.ErrCredentialReused) || errors.Is(err, common.ErrNotFound) {
			return media.Record{}, err
		}
		return media.Record{}, fmt.Errorf("error creating media: %v", err)
	}

	return m.Record()
}

// ListAlbum returns all live records of an album, oldest first.
func (s *MediaService) ListAlbum(ctx context.Context, albumID string) ([]media.Record, error) {

	recordRepo := s.repomanager.Records(s.db)

	rows, err := recordRepo.SelectByAlbum(ctx, albumID)
	if err != nil {
		return nil, fmt.Errorf("error listing album: %v", err)
	}

	return toRecords(rows)
}

// Updates returns records of albumID changed after sinceVersion, in version
// order, together with the album's current version. Callers feed the
// returned version back as the next cursor.
func (s *MediaService) Updates(ctx context.Context, albumID string, sinceVersion int64) ([]media.Record, int64, error) {

	rows, err := s.repomanager.Records(s.db).SelectUpdated(ctx, albumID, sinceVersion)
	if err != nil {
		return nil, 0, fmt.Errorf("error selecting updates: %v", err)
	}

	current, err := s.repomanager.Albums(s.db).CurrentVersion(ctx, albumID)
	if err != nil {
		return nil, 0, fmt.Errorf("error reading album version: %v", err)
	}

	records, err := toRecords(rows)
	if err != nil {
		return nil, 0, err
	}
	return records, current, nil
}

// MarkReady flips readiness of the video holding the given provider uid.
// Called from the transcode webhook; the record's album version is bumped
// so watch cursors pick up the change.
func (s *MediaService) MarkReady(ctx context.Context, videoUID string) error {

	rec, err := s.repomanager.Records(s.db).GetByAssetID(ctx, videoUID)
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		version, err := s.repomanager.Albums(tx).IncrementCurrentVersion(ctx, rec.AlbumID)
		if err != nil {
			return err
		}
		return s.repomanager.Records(tx).MarkReadyByAssetID(ctx, videoUID, version)
	})

	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return err
		}
		return fmt.Errorf("error marking ready: %v", err)
	}
	return nil
}

// SoftDelete flags a record deleted without removing the row, bumping the
// album version so the deletion reaches watch cursors.
func (s *MediaService) SoftDelete(ctx context.Context, albumID, id string) error {

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		version, err := s.repomanager.Albums(tx).IncrementCurrentVersion(ctx, albumID)
		if err != nil {
			return err
		}
		return s.repomanager.Records(tx).SoftDelete(ctx, id, version)
	})

	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return err
		}
		return fmt.Errorf("error deleting media: %v", err)
	}
	return nil
}

func toRecords(rows []*models.Media) ([]media.Record, error) {
	records := make([]media.Record, 0, len(rows))
	for _, m := range rows {
		r, err := m.Record()
		if err != nil {
			return nil, fmt.Errorf("error restoring record: %v", err)
		}
		records = append(records, r)
	}
	return records, nil
}
