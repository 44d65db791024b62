package signing

import (
	"context"

	"github.com/dmitrijs2005/albumkeeper/internal/logging"
	"github.com/dmitrijs2005/albumkeeper/internal/media"
	"golang.org/x/sync/errgroup"
)

// prefetchParallelism bounds concurrent issuance calls during a warm pass.
const prefetchParallelism = 4

// Prefetcher warms the signed-value cache for an authoritative media list.
// It is triggered on every change to the list; a pass over an unchanged,
// fully cached list issues zero network calls.
type Prefetcher struct {
	ensurer *Ensurer
	cache   *Cache
	logger  logging.Logger
}

// NewPrefetcher wires a Prefetcher to the session's cache and ensurer.
func NewPrefetcher(cache *Cache, ensurer *Ensurer, logger logging.Logger) *Prefetcher {
	return &Prefetcher{
		ensurer: ensurer,
		cache:   cache,
		logger:  logger.With("module", "prefetch"),
	}
}

// Warm ensures a signed value for every asset in list that is not already
// cached. Failures are logged inside the ensurer and skipped; the next list
// change retries them.
func (p *Prefetcher) Warm(ctx context.Context, list []media.Record) {
	var refs []media.AssetRef
	for _, r := range list {
		if r.Deleted {
			continue
		}
		ref, err := media.Identify(r)
		if err != nil {
			p.logger.Error(ctx, "skipping unidentifiable record", "media_id", r.ID, "error", err.Error())
			continue
		}
		if _, ok := p.cache.Get(ref.ID); ok {
			continue
		}
		refs = append(refs, ref)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(prefetchParallelism)
	for _, ref := range refs {
		g.Go(func() error {
			// Best effort; the ensurer already logged any failure.
			_, _ = p.ensurer.EnsureSigned(ctx, ref)
			return nil
		})
	}
	_ = g.Wait()
}
