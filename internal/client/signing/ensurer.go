package signing

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/albumkeeper/internal/common"
	"github.com/dmitrijs2005/albumkeeper/internal/logging"
	"github.com/dmitrijs2005/albumkeeper/internal/media"
	"golang.org/x/sync/singleflight"
)

// Issuer is the boundary that mints signed read credentials. Image URLs
// carry their expiry in-band as an `exp` query parameter; video tokens do
// not, so the ensurer applies VideoTokenTTL to them.
type Issuer interface {
	SignImageURL(ctx context.Context, imageID string) (string, error)
	SignVideoToken(ctx context.Context, videoUID string) (string, error)
}

const (
	// VideoTokenTTL is the conservative cache lifetime for playback tokens,
	// whose provider does not expose expiry in-band.
	VideoTokenTTL = 24 * time.Hour

	// MinImageTTL is the floor applied to image URL lifetimes so a clock
	// skewed issuance response is still cached briefly instead of being
	// re-requested on every render.
	MinImageTTL = time.Minute

	// issueTimeout bounds a single issuance call.
	issueTimeout = 10 * time.Second
)

// Ensurer obtains a valid signed value for an asset, consulting the cache
// first and coalescing concurrent issuance requests for the same id so
// repeated UI re-renders cause exactly one network call per id.
type Ensurer struct {
	cache  *Cache
	issuer Issuer
	logger logging.Logger
	group  singleflight.Group
	now    func() time.Time
}

// NewEnsurer wires an Ensurer to its cache and issuance collaborator.
func NewEnsurer(cache *Cache, issuer Issuer, logger logging.Logger) *Ensurer {
	return &Ensurer{
		cache:  cache,
		issuer: issuer,
		logger: logger.With("module", "signing"),
		now:    time.Now,
	}
}

// EnsureSigned returns a valid signed value for ref. Failures are logged
// and returned as common.ErrSigning without caching, so the next call
// retries. Issuance runs detached from the caller's cancellation: a consumer
// that stops observing mid-flight still lets the result populate the cache.
func (e *Ensurer) EnsureSigned(ctx context.Context, ref media.AssetRef) (string, error) {
	if v, ok := e.cache.Get(ref.ID); ok {
		return v, nil
	}

	v, err, _ := e.group.Do(ref.ID, func() (any, error) {
		// Re-check under the flight: a concurrent caller may have already
		// populated the cache between Get and Do.
		if v, ok := e.cache.Get(ref.ID); ok {
			return v, nil
		}

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), issueTimeout)
		defer cancel()

		value, ttl, err := e.issue(ctx, ref)
		if err != nil {
			e.logger.Warn(ctx, "issuance failed", "kind", string(ref.Kind), "id", ref.ID, "error", err.Error())
			return "", fmt.Errorf("%w: %v", common.ErrSigning, err)
		}

		e.cache.Set(ref.ID, value, ttl)
		return value, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (e *Ensurer) issue(ctx context.Context, ref media.AssetRef) (string, time.Duration, error) {
	switch ref.Kind {
	case media.KindImage:
		signed, err := e.issuer.SignImageURL(ctx, ref.ID)
		if err != nil {
			return "", 0, err
		}
		ttl, err := e.imageTTL(signed)
		if err != nil {
			return "", 0, err
		}
		return signed, ttl, nil
	case media.KindVideo:
		token, err := e.issuer.SignVideoToken(ctx, ref.ID)
		if err != nil {
			return "", 0, err
		}
		return token, VideoTokenTTL, nil
	default:
		return "", 0, fmt.Errorf("unknown asset kind %q", ref.Kind)
	}
}

// imageTTL derives the cache lifetime from the `exp` query parameter of a
// signed image URL. The expiry always comes from the issuance response,
// never from a client-side estimate.
func (e *Ensurer) imageTTL(signed string) (time.Duration, error) {
	u, err := url.Parse(signed)
	if err != nil {
		return 0, fmt.Errorf("parsing signed url: %w", err)
	}
	raw := u.Query().Get("exp")
	if raw == "" {
		return 0, fmt.Errorf("signed url has no exp parameter")
	}
	exp, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing exp parameter: %w", err)
	}

	ttl := time.Unix(exp, 0).Sub(e.now())
	if ttl < MinImageTTL {
		ttl = MinImageTTL
	}
	return ttl, nil
}
