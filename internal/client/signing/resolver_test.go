package signing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/albumkeeper/internal/media"
	"github.com/stretchr/testify/require"
)

const (
	testStreamBase  = "https://videodelivery.net"
	testPlaceholder = "https://static.albumkeeper.dev/placeholder.png"
)

func newTestResolver(issuer *fakeIssuer) *Resolver {
	cache := NewCache()
	return NewResolver(NewEnsurer(cache, issuer, testLogger()), testStreamBase, testPlaceholder, testLogger())
}

func TestResolverImageURLs(t *testing.T) {
	signed := signedURL("img_a", time.Now().Add(time.Hour))
	r := newTestResolver(&fakeIssuer{imageURL: signed})

	rec := media.Record{ID: "m1", Asset: media.Image{ImageID: "img_a"}}

	// For an image both render calls yield the identical signed URL.
	require.Equal(t, signed, r.RenderImageURL(context.Background(), rec))
	require.Equal(t, signed, r.RenderVideoURL(context.Background(), rec))
}

func TestResolverVideoTemplating(t *testing.T) {
	r := newTestResolver(&fakeIssuer{token: "T"})
	rec := media.Record{ID: "m2", Asset: media.Video{VideoUID: "vid_c"}}

	require.Equal(t, testStreamBase+"/T/thumbnails/thumbnail.png", r.RenderImageURL(context.Background(), rec))
	require.Equal(t, testStreamBase+"/T/manifest/video.m3u8", r.RenderVideoURL(context.Background(), rec))
}

func TestResolverPlaceholderOnSigningFailure(t *testing.T) {
	r := newTestResolver(&fakeIssuer{err: errors.New("issuer down")})

	img := media.Record{ID: "m1", Asset: media.Image{ImageID: "img_a"}}
	vid := media.Record{ID: "m2", Asset: media.Video{VideoUID: "vid_c"}}

	require.Equal(t, testPlaceholder, r.RenderImageURL(context.Background(), img))
	require.Equal(t, testPlaceholder, r.RenderImageURL(context.Background(), vid))
	require.Equal(t, testPlaceholder, r.RenderVideoURL(context.Background(), vid))
}

func TestResolverPlaceholderOnBadRecord(t *testing.T) {
	r := newTestResolver(&fakeIssuer{})
	bad := media.Record{ID: "m9"} // nil asset

	require.Equal(t, testPlaceholder, r.RenderImageURL(context.Background(), bad))
	require.Equal(t, testPlaceholder, r.RenderVideoURL(context.Background(), bad))
}
