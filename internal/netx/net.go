// Package netx contains the HTTP plumbing for one-time direct uploads.
// A one-time upload URL accepts exactly one PUT of the asset bytes; the
// caller must not reuse it for another asset.
package netx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/albumkeeper/internal/common"
)

// DefaultUploadTimeout bounds a single direct upload. Uploads that exceed it
// fail into the same transport-error path as any other non-success response.
const DefaultUploadTimeout = 2 * time.Minute

// progressReader reports cumulative bytes read to onProgress as the HTTP
// client consumes the request body.
type progressReader struct {
	r          io.Reader
	total      int64
	read       int64
	onProgress func(fraction float64)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += int64(n)
	if p.onProgress != nil && p.total > 0 {
		p.onProgress(float64(p.read) / float64(p.total))
	}
	return n, err
}

// UploadToDirectURL PUTs file to a one-time upload URL. onProgress, if
// non-nil, receives fractions in (0, 1] as bytes leave the client. A non-2xx
// response or transport failure is returned as common.ErrUploadTransport.
func UploadToDirectURL(ctx context.Context, url string, file []byte, onProgress func(float64)) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultUploadTimeout)
	defer cancel()

	body := &progressReader{r: bytes.NewReader(file), total: int64(len(file)), onProgress: onProgress}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, body)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUploadTransport, err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.ContentLength = int64(len(file))

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUploadTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: upload failed: %s; body: %s", common.ErrUploadTransport, resp.Status, string(b))
	}
	return nil
}
