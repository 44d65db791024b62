package signing

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/albumkeeper/internal/logging"
	"github.com/dmitrijs2005/albumkeeper/internal/media"
)

// Resolver turns signed values into renderable URLs per asset kind.
// Rendering must never fail into the UI: when signing is unavailable the
// resolver falls back to the configured placeholder URL.
type Resolver struct {
	ensurer        *Ensurer
	streamBase     string
	placeholderURL string
	logger         logging.Logger
}

// NewResolver builds a Resolver. streamBase is the playback CDN base
// (e.g. "https://videodelivery.net"); placeholderURL is served whenever a
// signed value cannot be obtained.
func NewResolver(ensurer *Ensurer, streamBase, placeholderURL string, logger logging.Logger) *Resolver {
	return &Resolver{
		ensurer:        ensurer,
		streamBase:     streamBase,
		placeholderURL: placeholderURL,
		logger:         logger.With("module", "resolver"),
	}
}

// RenderImageURL returns a URL suitable for an <img>-style surface: the
// signed URL itself for images, the token-scoped thumbnail for videos.
func (r *Resolver) RenderImageURL(ctx context.Context, rec media.Record) string {
	ref, err := media.Identify(rec)
	if err != nil {
		r.logger.Error(ctx, "render image", "media_id", rec.ID, "error", err.Error())
		return r.placeholderURL
	}

	signed, err := r.ensurer.EnsureSigned(ctx, ref)
	if err != nil {
		return r.placeholderURL
	}

	if ref.Kind == media.KindVideo {
		return fmt.Sprintf("%s/%s/thumbnails/thumbnail.png", r.streamBase, signed)
	}
	return signed
}

// RenderVideoURL returns the HLS manifest URL for a video record. For
// non-video input it delegates to RenderImageURL rather than failing.
func (r *Resolver) RenderVideoURL(ctx context.Context, rec media.Record) string {
	ref, err := media.Identify(rec)
	if err != nil {
		r.logger.Error(ctx, "render video", "media_id", rec.ID, "error", err.Error())
		return r.placeholderURL
	}
	if ref.Kind != media.KindVideo {
		return r.RenderImageURL(ctx, rec)
	}

	token, err := r.ensurer.EnsureSigned(ctx, ref)
	if err != nil {
		return r.placeholderURL
	}
	return fmt.Sprintf("%s/%s/manifest/video.m3u8", r.streamBase, token)
}
