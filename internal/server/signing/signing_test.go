package signing

import (
	"crypto/rand"
	"crypto/rsa"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/dmitrijs2005/albumkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestImageURLSignVerifyRoundTrip(t *testing.T) {
	s := NewImageURLSigner([]byte("secret"), time.Hour)

	signed, err := s.Sign("https://imagedelivery.net/acct/img_a/public")
	require.NoError(t, err)

	u, err := url.Parse(signed)
	require.NoError(t, err)

	rawExp := u.Query().Get("exp")
	require.NotEmpty(t, rawExp)
	exp, err := strconv.ParseInt(rawExp, 10, 64)
	require.NoError(t, err)
	require.InDelta(t, time.Now().Add(time.Hour).Unix(), exp, 5)
	require.NotEmpty(t, u.Query().Get("sig"))

	require.NoError(t, s.Verify(signed))
}

func TestImageURLVerifyRejectsTampering(t *testing.T) {
	s := NewImageURLSigner([]byte("secret"), time.Hour)

	signed, err := s.Sign("https://imagedelivery.net/acct/img_a/public")
	require.NoError(t, err)

	// Pointing the same signature at another asset must fail.
	u, _ := url.Parse(signed)
	u.Path = "/acct/img_b/public"
	err = s.Verify(u.String())
	require.ErrorIs(t, err, common.ErrSigning)

	// A different secret must fail.
	other := NewImageURLSigner([]byte("other"), time.Hour)
	err = other.Verify(signed)
	require.ErrorIs(t, err, common.ErrSigning)
}

func TestImageURLVerifyRejectsExpired(t *testing.T) {
	s := NewImageURLSigner([]byte("secret"), time.Hour)

	now := time.Now()
	s.now = func() time.Time { return now }
	signed, err := s.Sign("https://imagedelivery.net/acct/img_a/public")
	require.NoError(t, err)

	s.now = func() time.Time { return now.Add(2 * time.Hour) }
	require.ErrorIs(t, s.Verify(signed), common.ErrSigning)
}

func TestStreamTokenClaims(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	s := NewStreamTokenSigner(key, 0)
	token, err := s.Sign("vid_c")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return &key.PublicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	require.Equal(t, "vid_c", claims.Subject)
	require.WithinDuration(t, time.Now().Add(DefaultStreamTokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}
