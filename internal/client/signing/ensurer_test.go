package signing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/albumkeeper/internal/common"
	"github.com/dmitrijs2005/albumkeeper/internal/logging"
	"github.com/dmitrijs2005/albumkeeper/internal/media"
	"github.com/stretchr/testify/require"
)

// -------- test fakes --------

type fakeIssuer struct {
	imageCalls atomic.Int64
	videoCalls atomic.Int64

	imageURL string
	token    string
	err      error

	// release, if non-nil, blocks issuance until closed so tests can pile
	// up concurrent callers.
	release chan struct{}
}

func (f *fakeIssuer) SignImageURL(ctx context.Context, imageID string) (string, error) {
	f.imageCalls.Add(1)
	if f.release != nil {
		<-f.release
	}
	return f.imageURL, f.err
}

func (f *fakeIssuer) SignVideoToken(ctx context.Context, videoUID string) (string, error) {
	f.videoCalls.Add(1)
	if f.release != nil {
		<-f.release
	}
	return f.token, f.err
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.DiscardHandler))
}

func signedURL(id string, exp time.Time) string {
	return fmt.Sprintf("https://imagedelivery.net/acct/%s/public?exp=%d&sig=abcdef", id, exp.Unix())
}

// -------- tests --------

func TestEnsureSignedCachesImageURL(t *testing.T) {
	exp := time.Now().Add(24 * time.Hour)
	issuer := &fakeIssuer{imageURL: signedURL("img_a", exp)}
	cache := NewCache()
	e := NewEnsurer(cache, issuer, testLogger())

	ref := media.AssetRef{Kind: media.KindImage, ID: "img_a"}

	v, err := e.EnsureSigned(context.Background(), ref)
	require.NoError(t, err)
	require.Equal(t, issuer.imageURL, v)

	// Second call is served from the cache.
	v, err = e.EnsureSigned(context.Background(), ref)
	require.NoError(t, err)
	require.Equal(t, issuer.imageURL, v)
	require.Equal(t, int64(1), issuer.imageCalls.Load())
}

func TestEnsureSignedCoalescesConcurrentCallers(t *testing.T) {
	const n = 32

	exp := time.Now().Add(time.Hour)
	issuer := &fakeIssuer{imageURL: signedURL("img_a", exp), release: make(chan struct{})}
	e := NewEnsurer(NewCache(), issuer, testLogger())
	ref := media.AssetRef{Kind: media.KindImage, ID: "img_a"}

	var wg sync.WaitGroup
	var started sync.WaitGroup
	results := make([]string, n)
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		started.Add(1)
		go func(i int) {
			defer wg.Done()
			started.Done()
			results[i], errs[i] = e.EnsureSigned(context.Background(), ref)
		}(i)
	}

	started.Wait()
	time.Sleep(20 * time.Millisecond) // let callers reach the flight
	close(issuer.release)
	wg.Wait()

	require.Equal(t, int64(1), issuer.imageCalls.Load())
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, issuer.imageURL, results[i])
	}
}

func TestEnsureSignedFailureIsNotCached(t *testing.T) {
	issuer := &fakeIssuer{err: errors.New("boom")}
	e := NewEnsurer(NewCache(), issuer, testLogger())
	ref := media.AssetRef{Kind: media.KindVideo, ID: "vid_c"}

	_, err := e.EnsureSigned(context.Background(), ref)
	require.ErrorIs(t, err, common.ErrSigning)

	// The in-flight entry was released, so the next call retries.
	_, err = e.EnsureSigned(context.Background(), ref)
	require.ErrorIs(t, err, common.ErrSigning)
	require.Equal(t, int64(2), issuer.videoCalls.Load())
}

func TestEnsureSignedVideoUsesFixedTTL(t *testing.T) {
	issuer := &fakeIssuer{token: "header.payload.signature"}
	cache := NewCache()
	e := NewEnsurer(cache, issuer, testLogger())

	v, err := e.EnsureSigned(context.Background(), media.AssetRef{Kind: media.KindVideo, ID: "vid_c"})
	require.NoError(t, err)
	require.Equal(t, "header.payload.signature", v)

	cached, ok := cache.Get("vid_c")
	require.True(t, ok)
	require.Equal(t, v, cached)
}

func TestEnsureSignedRejectsURLWithoutExp(t *testing.T) {
	issuer := &fakeIssuer{imageURL: "https://imagedelivery.net/acct/img_a/public?sig=zz"}
	e := NewEnsurer(NewCache(), issuer, testLogger())

	_, err := e.EnsureSigned(context.Background(), media.AssetRef{Kind: media.KindImage, ID: "img_a"})
	require.ErrorIs(t, err, common.ErrSigning)
}

func TestImageTTLFloor(t *testing.T) {
	e := NewEnsurer(NewCache(), &fakeIssuer{}, testLogger())

	// Expiry in the past falls back to the floor rather than going negative.
	ttl, err := e.imageTTL(signedURL("img_a", time.Now().Add(-time.Hour)))
	require.NoError(t, err)
	require.Equal(t, MinImageTTL, ttl)

	ttl, err = e.imageTTL(signedURL("img_a", time.Now().Add(12*time.Hour)))
	require.NoError(t, err)
	require.Greater(t, ttl, 11*time.Hour)
}
