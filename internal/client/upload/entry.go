// Package upload implements the client upload pipeline: validation of local
// picks, optimistic entries, one-time credential batches, direct uploads,
// persistence, and reconciliation against the authoritative media stream.
package upload

import (
	"context"

	"github.com/dmitrijs2005/albumkeeper/internal/media"
)

// Status is the lifecycle state of an optimistic entry.
type Status string

const (
	StatusPending   Status = "pending"
	StatusUploading Status = "uploading"
	StatusFailed    Status = "failed"

	// StatusConfirmed means the authoritative record exists; the entry is
	// pending removal by reconciliation.
	StatusConfirmed Status = "confirmed"
)

// Entry is a client-only optimistic placeholder for an in-flight upload.
// It is created at selection time and destroyed on reconciliation or
// explicit discard; it is never persisted.
//
// Key is the correlation key: assigned once at selection, threaded through
// the persistence call, and matched against arriving authoritative records.
type Entry struct {
	Key          string
	LocalPath    string
	AlbumID      string
	UploaderID   string
	Kind         media.Kind
	SizeBytes    int64
	Width        int
	Height       int
	DurationSecs float64

	Status   Status
	Progress float64

	// Uploaded marks bytes that reached the CDN. A failed entry with
	// Uploaded set retries persistence only and never re-uploads.
	Uploaded   bool
	ProviderID string
	Err        error
}

// Pick is a raw local selection before validation.
type Pick struct {
	Path         string
	Kind         media.Kind
	SizeBytes    int64
	Width        int
	Height       int
	DurationSecs float64
}

// RejectedPick is a pick the validator excluded, with the reason reported
// to the user. Rejected picks never enter the pipeline.
type RejectedPick struct {
	Pick   Pick
	Reason string
}

// Validator partitions raw picks into valid and invalid by type, size and
// duration. Thresholds are configuration, not part of this package.
type Validator interface {
	ValidateAssets(picks []Pick) (valid []Pick, invalid []RejectedPick)
}

// Credential is a one-time upload grant bound to exactly one asset in
// exactly one batch. Reuse across assets is invalid.
type Credential struct {
	AssetID   string
	UploadURL string
}

// CredentialIssuer mints one-time upload credentials. The response aligns
// 1:1 by index with the requested filenames.
type CredentialIssuer interface {
	IssueUploadCredentials(ctx context.Context, ownerID string, filenames []string) ([]Credential, error)
}

// Uploader submits asset bytes to a credential's one-time URL.
type Uploader interface {
	Upload(ctx context.Context, cred Credential, path string, onProgress func(float64)) error
}

// Catalog is the persistence collaborator. CreateMedia is called at most
// once per successfully uploaded asset.
type Catalog interface {
	CreateMedia(ctx context.Context, albumID, uploaderID string, asset media.Asset, sizeBytes int64, correlationKey string) (string, error)
}
