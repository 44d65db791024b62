package signing

import (
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultStreamTokenTTL is the validity window for video playback tokens.
const DefaultStreamTokenTTL = 24 * time.Hour

// StreamTokenSigner mints RS256 playback tokens for the stream CDN:
// a three-part header.payload.signature JWT with payload {sub: videoUID,
// exp: unix-seconds}. The private key never leaves the issuance side.
type StreamTokenSigner struct {
	key *rsa.PrivateKey
	ttl time.Duration
	now func() time.Time
}

// NewStreamTokenSigner builds a signer around the given private key. A zero
// ttl falls back to DefaultStreamTokenTTL.
func NewStreamTokenSigner(key *rsa.PrivateKey, ttl time.Duration) *StreamTokenSigner {
	if ttl <= 0 {
		ttl = DefaultStreamTokenTTL
	}
	return &StreamTokenSigner{key: key, ttl: ttl, now: time.Now}
}

// Sign returns a playback token for videoUID.
func (s *StreamTokenSigner) Sign(videoUID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   videoUID,
		ExpiresAt: jwt.NewNumericDate(s.now().Add(s.ttl)),
	})

	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("signing stream token: %w", err)
	}
	return signed, nil
}
