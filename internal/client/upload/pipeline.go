package upload

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/dmitrijs2005/albumkeeper/internal/client/signing"
	"github.com/dmitrijs2005/albumkeeper/internal/common"
	"github.com/dmitrijs2005/albumkeeper/internal/logging"
	"github.com/dmitrijs2005/albumkeeper/internal/media"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// uploadParallelism bounds concurrent per-asset uploads within a batch.
// Failure isolation between siblings holds regardless of this value.
const uploadParallelism = 4

// Batch is what Submit reports back to the caller: the entries that entered
// the pipeline and the picks the validator excluded.
type Batch struct {
	ID      string
	Keys    []string
	Invalid []RejectedPick
}

// storedBatch retains enough of a submitted batch to resubmit it untouched
// after a batch-level credential failure.
type storedBatch struct {
	albumID string
	keys    []string
	picks   []Pick
}

// Pipeline drives local picks through validation, optimistic creation,
// credential acquisition, upload, persistence, cache warm and
// reconciliation. One instance per session.
type Pipeline struct {
	store      *Store
	validator  Validator
	creds      CredentialIssuer
	uploader   Uploader
	catalog    Catalog
	ensurer    *signing.Ensurer
	logger     logging.Logger
	uploaderID string

	mu      sync.Mutex
	batches map[string]*storedBatch
}

// NewPipeline wires a Pipeline for the signed-in uploader.
func NewPipeline(store *Store, validator Validator, creds CredentialIssuer, uploader Uploader,
	catalog Catalog, ensurer *signing.Ensurer, uploaderID string, logger logging.Logger) *Pipeline {
	return &Pipeline{
		store:      store,
		validator:  validator,
		creds:      creds,
		uploader:   uploader,
		catalog:    catalog,
		ensurer:    ensurer,
		logger:     logger.With("module", "upload"),
		uploaderID: uploaderID,
		batches:    make(map[string]*storedBatch),
	}
}

// Submit validates picks, creates one optimistic entry per valid pick and
// runs the batch. Invalid picks are reported in the returned Batch and never
// enter the pipeline. A credential-level failure fails the whole batch with
// common.ErrSigning; the same batch can then be resubmitted with RetryBatch.
// Per-asset upload or persistence failures do not produce a Submit error;
// they are visible on the individual entries.
func (p *Pipeline) Submit(ctx context.Context, albumID string, picks []Pick) (*Batch, error) {
	valid, invalid := p.validator.ValidateAssets(picks)

	batch := &Batch{ID: uuid.NewString(), Invalid: invalid}
	for range valid {
		batch.Keys = append(batch.Keys, uuid.NewString())
	}

	for i, pick := range valid {
		p.store.Add(Entry{
			Key:          batch.Keys[i],
			LocalPath:    pick.Path,
			AlbumID:      albumID,
			UploaderID:   p.uploaderID,
			Kind:         pick.Kind,
			SizeBytes:    pick.SizeBytes,
			Width:        pick.Width,
			Height:       pick.Height,
			DurationSecs: pick.DurationSecs,
			Status:       StatusPending,
		})
	}

	p.mu.Lock()
	p.batches[batch.ID] = &storedBatch{albumID: albumID, keys: batch.Keys, picks: valid}
	p.mu.Unlock()

	if len(valid) == 0 {
		return batch, nil
	}

	return batch, p.runBatch(ctx, batch.ID)
}

// RetryBatch resubmits a batch that failed at credential acquisition. The
// batch is replayed untouched: same entries, same order, fresh credentials.
func (p *Pipeline) RetryBatch(ctx context.Context, batchID string) error {
	p.mu.Lock()
	_, ok := p.batches[batchID]
	p.mu.Unlock()
	if !ok {
		return fmt.Errorf("unknown batch %q", batchID)
	}
	return p.runBatch(ctx, batchID)
}

func (p *Pipeline) runBatch(ctx context.Context, batchID string) error {
	p.mu.Lock()
	sb := p.batches[batchID]
	p.mu.Unlock()

	// The credential request is sized and indexed by the filtered batch:
	// credential i corresponds to entry/pick i.
	filenames := make([]string, len(sb.picks))
	for i, pick := range sb.picks {
		filenames[i] = filepath.Base(pick.Path)
	}

	creds, err := p.creds.IssueUploadCredentials(ctx, p.uploaderID, filenames)
	if err == nil && len(creds) != len(sb.picks) {
		err = fmt.Errorf("credential count %d does not match batch size %d", len(creds), len(sb.picks))
	}
	if err != nil {
		batchErr := fmt.Errorf("%w: %v", common.ErrSigning, err)
		p.logger.Error(ctx, "credential batch failed", "batch_id", batchID, "error", err.Error())
		for _, key := range sb.keys {
			p.store.Update(key, func(e *Entry) {
				e.Status = StatusFailed
				e.Err = batchErr
			})
		}
		return batchErr
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadParallelism)
	for i := range sb.picks {
		g.Go(func() error {
			// Per-asset failures are captured on the entry, never returned:
			// one failed asset must not abort or taint its siblings.
			p.processEntry(gctx, sb.albumID, sb.keys[i], creds[i])
			return nil
		})
	}
	_ = g.Wait()
	return nil
}

// processEntry runs the upload/persist/warm sequence for one asset.
func (p *Pipeline) processEntry(ctx context.Context, albumID, key string, cred Credential) {
	entry, ok := p.store.Get(key)
	if !ok {
		return
	}

	p.store.Update(key, func(e *Entry) {
		e.Status = StatusUploading
		e.Err = nil
	})

	if err := p.uploader.Upload(ctx, cred, entry.LocalPath, func(f float64) {
		p.store.Update(key, func(e *Entry) { e.Progress = f })
	}); err != nil {
		p.logger.Warn(ctx, "upload failed", "key", key, "error", err.Error())
		p.store.Update(key, func(e *Entry) {
			e.Status = StatusFailed
			e.Err = err
		})
		return
	}

	p.store.Update(key, func(e *Entry) {
		e.Uploaded = true
		e.ProviderID = cred.AssetID
		e.Progress = 1
	})

	p.persistEntry(ctx, albumID, key, cred.AssetID)
}

// persistEntry creates the authoritative record for an uploaded asset and
// warms the signing cache. It is also the persistence-only retry target for
// entries whose bytes are already on the CDN.
func (p *Pipeline) persistEntry(ctx context.Context, albumID, key, providerID string) {
	entry, ok := p.store.Get(key)
	if !ok {
		return
	}

	asset := p.assetFor(entry, providerID)

	if _, err := p.catalog.CreateMedia(ctx, albumID, p.uploaderID, asset, entry.SizeBytes, key); err != nil {
		p.logger.Warn(ctx, "persistence failed after upload", "key", key, "error", err.Error())
		p.store.Update(key, func(e *Entry) {
			e.Status = StatusFailed
			e.Err = fmt.Errorf("%w: %v", common.ErrPersistence, err)
		})
		return
	}

	// Warm the cache so the just-uploaded asset renders without an extra
	// round trip. Best effort: a miss here is recovered by the prefetcher.
	ref := media.AssetRef{Kind: entry.Kind, ID: providerID}
	if _, err := p.ensurer.EnsureSigned(ctx, ref); err != nil {
		p.logger.Warn(ctx, "cache warm failed", "key", key, "error", err.Error())
	}

	p.store.Update(key, func(e *Entry) { e.Status = StatusConfirmed })

	// Upload-success reconciliation path. The subscription-observation path
	// may have retired the entry already; Remove is idempotent.
	p.store.Remove(key)
}

// RetryEntry re-runs a failed entry. An entry whose bytes already reached
// the CDN retries persistence only; otherwise the identical asset is
// resubmitted with a fresh one-time credential.
func (p *Pipeline) RetryEntry(ctx context.Context, key string) error {
	entry, ok := p.store.Get(key)
	if !ok {
		return fmt.Errorf("unknown entry %q", key)
	}
	if entry.Status != StatusFailed {
		return fmt.Errorf("entry %q is %s, not retryable", key, entry.Status)
	}

	if entry.Uploaded {
		p.persistEntry(ctx, entry.AlbumID, key, entry.ProviderID)
		return nil
	}

	creds, err := p.creds.IssueUploadCredentials(ctx, p.uploaderID, []string{filepath.Base(entry.LocalPath)})
	if err == nil && len(creds) != 1 {
		err = fmt.Errorf("expected 1 credential, got %d", len(creds))
	}
	if err != nil {
		retryErr := fmt.Errorf("%w: %v", common.ErrSigning, err)
		p.store.Update(key, func(e *Entry) {
			e.Status = StatusFailed
			e.Err = retryErr
		})
		return retryErr
	}

	p.processEntry(ctx, entry.AlbumID, key, creds[0])
	return nil
}

// Observe is the subscription-observation reconciliation path: any
// authoritative record whose correlation key matches a live optimistic
// entry retires that entry. Safe to call with every list update.
func (p *Pipeline) Observe(list []media.Record) {
	for _, r := range list {
		if r.CorrelationKey == "" {
			continue
		}
		if _, ok := p.store.Get(r.CorrelationKey); ok {
			p.store.Remove(r.CorrelationKey)
		}
	}
}

// Discard drops a failed or pending entry without uploading it.
func (p *Pipeline) Discard(key string) {
	p.store.Remove(key)
}

// Snapshot exposes the live optimistic entries for UI-facing state.
func (p *Pipeline) Snapshot() []Entry {
	return p.store.Snapshot()
}

func (p *Pipeline) assetFor(e Entry, providerID string) media.Asset {
	if e.Kind == media.KindVideo {
		return media.Video{VideoUID: providerID, DurationSecs: e.DurationSecs}
	}
	return media.Image{ImageID: providerID, Width: e.Width, Height: e.Height}
}
