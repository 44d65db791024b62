// Package webhook receives transcode-complete notifications from the
// stream CDN and updates media readiness. Every request is authenticated
// with an HMAC signature header before its body is trusted.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/albumkeeper/internal/common"
)

// SignatureHeader carries the webhook signature: "time=<unix>,sig1=<hex>".
const SignatureHeader = "Webhook-Signature"

// MaxSkew is how far a webhook timestamp may lag (or lead) before the
// request is rejected as a possible replay.
const MaxSkew = 5 * time.Minute

// VerifySignature authenticates a webhook request. The expected signature
// is HMAC-SHA256(secret, "<time>.<rawBody>") compared in constant time.
// Missing header fields, a stale timestamp, or a mismatch all yield
// common.ErrWebhookVerification.
func VerifySignature(secret []byte, header string, body []byte, now time.Time) error {
	ts, sig, err := parseHeader(header)
	if err != nil {
		return err
	}

	issued := time.Unix(ts, 0)
	skew := now.Sub(issued)
	if skew < 0 {
		skew = -skew
	}
	if skew > MaxSkew {
		return fmt.Errorf("%w: timestamp outside tolerance", common.ErrWebhookVerification)
	}

	mac := hmac.New(sha256.New, secret)
	fmt.Fprintf(mac, "%d.%s", ts, body)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(sig)) {
		return fmt.Errorf("%w: signature mismatch", common.ErrWebhookVerification)
	}
	return nil
}

// parseHeader splits "time=<unix>,sig1=<hex>" and rejects any malformed or
// incomplete form.
func parseHeader(header string) (int64, string, error) {
	var rawTime, sig string
	for _, part := range strings.Split(header, ",") {
		k, v, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch k {
		case "time":
			rawTime = v
		case "sig1":
			sig = v
		}
	}
	if rawTime == "" || sig == "" {
		return 0, "", fmt.Errorf("%w: missing time or sig1", common.ErrWebhookVerification)
	}

	ts, err := strconv.ParseInt(rawTime, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: bad timestamp", common.ErrWebhookVerification)
	}
	return ts, sig, nil
}
