// Package common defines shared constants and sentinel errors used across
// client and server layers of AlbumKeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation marks a local pick rejected before any network call.
	ErrValidation = errors.New("validation error")

	// ErrSigning marks an issuance collaborator that was unreachable or
	// returned a failure response.
	ErrSigning = errors.New("signing error")

	// ErrUploadTransport marks a non-success CDN response to an upload.
	ErrUploadTransport = errors.New("upload transport error")

	// ErrPersistence marks bytes that reached the CDN but were not recorded.
	// A retry after this error re-attempts persistence only.
	ErrPersistence = errors.New("persistence error")

	// ErrWebhookVerification marks a webhook request with a bad signature,
	// stale timestamp, or malformed signature header.
	ErrWebhookVerification = errors.New("webhook verification error")

	// ErrCredentialReused marks an attempt to consume a one-time upload
	// slot twice.
	ErrCredentialReused = errors.New("upload credential already used")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
