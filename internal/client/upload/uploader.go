package upload

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/albumkeeper/internal/netx"
)

// DirectUploader submits asset bytes from the local filesystem to the
// credential's one-time upload URL.
type DirectUploader struct{}

func (DirectUploader) Upload(ctx context.Context, cred Credential, path string, onProgress func(float64)) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading asset file: %w", err)
	}
	return netx.UploadToDirectURL(ctx, cred.UploadURL, data, onProgress)
}
