package models

import "time"

// UploadSlot records a one-time upload credential so reuse can be refused.
// The slot is bound to exactly one asset in exactly one batch.
type UploadSlot struct {
	ID        string
	OwnerID   string
	Filename  string
	UploadURL string
	Used      bool
	CreatedAt time.Time
}
