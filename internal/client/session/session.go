// Package session owns one signed-in viewing/uploading session: the signed
// URL cache and its ensurer, the display resolver, and the upload pipeline.
// All of it is torn down together on sign-out.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/albumkeeper/internal/client/config"
	"github.com/dmitrijs2005/albumkeeper/internal/client/signing"
	"github.com/dmitrijs2005/albumkeeper/internal/client/upload"
	"github.com/dmitrijs2005/albumkeeper/internal/logging"
	"github.com/dmitrijs2005/albumkeeper/internal/media"
)

// Backend is the server surface a session needs: credential issuance and
// signing, catalog persistence and reads. *catalog.GRPCClient satisfies it.
type Backend interface {
	signing.Issuer
	upload.CredentialIssuer
	upload.Catalog

	Ping(ctx context.Context) error
	ListAlbum(ctx context.Context, albumID string) ([]media.Record, error)
	WatchAlbum(ctx context.Context, albumID string, sinceVersion int64, fn func(records []media.Record, version int64)) error
	DeleteMedia(ctx context.Context, albumID, id string) error
	Close() error
}

type Session struct {
	cfg     *config.Config
	backend Backend
	logger  logging.Logger

	Cache      *signing.Cache
	Ensurer    *signing.Ensurer
	Prefetcher *signing.Prefetcher
	Resolver   *signing.Resolver
	Store      *upload.Store
	Pipeline   *upload.Pipeline
}

// New builds a session for the signed-in user.
func New(cfg *config.Config, backend Backend, userID string, logger logging.Logger) *Session {
	cache := signing.NewCache()
	ensurer := signing.NewEnsurer(cache, backend, logger)
	store := upload.NewStore()

	rules := upload.Rules{
		MaxImageBytes:   cfg.MaxImageBytes,
		MaxVideoBytes:   cfg.MaxVideoBytes,
		MaxDurationSecs: cfg.MaxDurationSecs,
	}

	return &Session{
		cfg:        cfg,
		backend:    backend,
		logger:     logger.With("module", "session"),
		Cache:      cache,
		Ensurer:    ensurer,
		Prefetcher: signing.NewPrefetcher(cache, ensurer, logger),
		Resolver:   signing.NewResolver(ensurer, cfg.StreamBase, cfg.PlaceholderURL, logger),
		Store:      store,
		Pipeline:   upload.NewPipeline(store, rules, backend, upload.DirectUploader{}, backend, ensurer, userID, logger),
	}
}

// ObserveList reacts to a new authoritative album list: warms the signed
// URL cache and reconciles optimistic upload entries.
func (s *Session) ObserveList(ctx context.Context, list []media.Record) {
	s.Prefetcher.Warm(ctx, list)
	s.Pipeline.Observe(list)
}

// List fetches the album's current records and runs the observe pass over
// them.
func (s *Session) List(ctx context.Context) ([]media.Record, error) {
	records, err := s.backend.ListAlbum(ctx, s.cfg.AlbumID)
	if err != nil {
		return nil, err
	}
	s.ObserveList(ctx, records)
	return records, nil
}

// Watch follows the album's change stream until ctx ends, feeding every
// delta through the observe pass.
func (s *Session) Watch(ctx context.Context) error {
	return s.backend.WatchAlbum(ctx, s.cfg.AlbumID, 0, func(records []media.Record, version int64) {
		s.ObserveList(ctx, records)
	})
}

// Upload submits local files to the session's album.
func (s *Session) Upload(ctx context.Context, paths []string) (*upload.Batch, error) {
	picks := make([]upload.Pick, 0, len(paths))
	for _, p := range paths {
		pick, err := pickFromPath(p)
		if err != nil {
			return nil, err
		}
		picks = append(picks, pick)
	}
	return s.Pipeline.Submit(ctx, s.cfg.AlbumID, picks)
}

// Delete soft-deletes a record in the session's album.
func (s *Session) Delete(ctx context.Context, id string) error {
	return s.backend.DeleteMedia(ctx, s.cfg.AlbumID, id)
}

// SignOut drops everything derived from the session: cached signed values,
// optimistic entries and their tombstones, and the server connection.
func (s *Session) SignOut() error {
	s.Cache.Clear()
	s.Store.Clear()
	return s.backend.Close()
}

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".heic": true,
}

var videoExtensions = map[string]bool{
	".mp4": true, ".mov": true, ".webm": true, ".mkv": true,
}

// pickFromPath stats a local file and classifies it by extension. Pixel
// dimensions and duration are unknown without decoding, so they stay zero
// and server-side metadata wins later.
func pickFromPath(path string) (upload.Pick, error) {
	info, err := os.Stat(path)
	if err != nil {
		return upload.Pick{}, fmt.Errorf("reading file info: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	var kind media.Kind
	switch {
	case imageExtensions[ext]:
		kind = media.KindImage
	case videoExtensions[ext]:
		kind = media.KindVideo
	default:
		return upload.Pick{}, errors.New("unsupported file type " + ext)
	}

	return upload.Pick{Path: path, Kind: kind, SizeBytes: info.Size()}, nil
}
