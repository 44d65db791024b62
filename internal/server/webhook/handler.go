package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/albumkeeper/internal/common"
	"github.com/dmitrijs2005/albumkeeper/internal/logging"
)

// ReadinessMarker is the catalog-side operation a valid webhook triggers.
type ReadinessMarker interface {
	MarkReady(ctx context.Context, videoUID string) error
}

// notification is the stream CDN's transcode-complete payload.
type notification struct {
	UID    string `json:"uid"`
	Status struct {
		State string `json:"state"`
	} `json:"status"`
}

// Handler verifies and applies transcode-complete webhooks.
type Handler struct {
	secret []byte
	marker ReadinessMarker
	logger logging.Logger
	now    func() time.Time
}

// NewHandler builds a webhook handler around the shared secret.
func NewHandler(secret []byte, marker ReadinessMarker, logger logging.Logger) *Handler {
	return &Handler{
		secret: secret,
		marker: marker,
		logger: logger.With("module", "webhook"),
		now:    time.Now,
	}
}

// ServeHTTP handles POST notifications. Verification failures are returned
// as HTTP errors and never silently accepted.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "reading body", http.StatusBadRequest)
		return
	}

	if err := VerifySignature(h.secret, r.Header.Get(SignatureHeader), body, h.now()); err != nil {
		h.logger.Warn(ctx, "webhook rejected", "error", err.Error())
		http.Error(w, "invalid signature", http.StatusUnauthorized)
		return
	}

	var n notification
	if err := json.Unmarshal(body, &n); err != nil || n.UID == "" {
		http.Error(w, "bad payload", http.StatusBadRequest)
		return
	}

	if n.Status.State != "ready" {
		// Intermediate states are acknowledged but change nothing.
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := h.marker.MarkReady(ctx, n.UID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			http.Error(w, "unknown uid", http.StatusNotFound)
			return
		}
		h.logger.Error(ctx, "marking ready", "uid", n.UID, "error", err.Error())
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.logger.Info(ctx, "media ready", "uid", n.UID)
	w.WriteHeader(http.StatusOK)
}
