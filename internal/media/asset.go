// Package media defines the authoritative media record and its tagged
// asset variants shared by client and server layers of AlbumKeeper.
package media

import "time"

// Kind classifies an asset variant.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// Asset is the closed set of media asset variants. The interface is sealed:
// only Image and Video implement it, and code switching over an Asset may
// treat any other value as a programming error.
type Asset interface {
	Kind() Kind
}

// Image is a still picture stored with the image CDN.
type Image struct {
	ImageID string `json:"image_id"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

func (Image) Kind() Kind { return KindImage }

// Video is a clip stored with the stream CDN.
type Video struct {
	VideoUID     string  `json:"video_uid"`
	DurationSecs float64 `json:"duration_secs"`
}

func (Video) Kind() Kind { return KindVideo }

// Record is an authoritative media record. Immutable once persisted except
// for the Deleted and Ready flags.
type Record struct {
	ID             string
	AlbumID        string
	UploaderID     string
	Asset          Asset
	SizeBytes      int64
	CreatedAt      time.Time
	Deleted        bool
	Ready          bool
	CorrelationKey string
	Version        int64
}
