// Package models defines the server-side persistence shapes for media
// records and one-time upload slots.
package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/albumkeeper/internal/media"
)

// Media is the stored form of an authoritative media record. The asset
// variant is flattened into kind-discriminated columns.
type Media struct {
	ID             string
	AlbumID        string
	UploaderID     string
	Kind           string
	AssetID        string
	Width          int
	Height         int
	DurationSecs   float64
	SizeBytes      int64
	CorrelationKey string
	Ready          bool
	Deleted        bool
	CreatedAt      time.Time
	Version        int64
}

// FromAsset flattens a domain asset into the storage columns. The variant
// set is closed; anything else is a construction error.
func (m *Media) FromAsset(a media.Asset) error {
	switch v := a.(type) {
	case media.Image:
		m.Kind = string(media.KindImage)
		m.AssetID = v.ImageID
		m.Width = v.Width
		m.Height = v.Height
	case media.Video:
		m.Kind = string(media.KindVideo)
		m.AssetID = v.VideoUID
		m.DurationSecs = v.DurationSecs
	default:
		return fmt.Errorf("unknown asset variant %T", a)
	}
	return nil
}

// Record rebuilds the domain record from storage columns.
func (m *Media) Record() (media.Record, error) {
	r := media.Record{
		ID:             m.ID,
		AlbumID:        m.AlbumID,
		UploaderID:     m.UploaderID,
		SizeBytes:      m.SizeBytes,
		CorrelationKey: m.CorrelationKey,
		Ready:          m.Ready,
		Deleted:        m.Deleted,
		CreatedAt:      m.CreatedAt,
		Version:        m.Version,
	}
	switch media.Kind(m.Kind) {
	case media.KindImage:
		r.Asset = media.Image{ImageID: m.AssetID, Width: m.Width, Height: m.Height}
	case media.KindVideo:
		r.Asset = media.Video{VideoUID: m.AssetID, DurationSecs: m.DurationSecs}
	default:
		return media.Record{}, fmt.Errorf("media %q: unknown stored kind %q", m.ID, m.Kind)
	}
	return r, nil
}
