// Package albums tracks per-album version counters. Every media write bumps
// the album's version, which is the cursor the watch stream advances on.
package albums

import "context"

type Repository interface {
	// IncrementCurrentVersion bumps and returns the album's version,
	// creating the counter row on first use.
	IncrementCurrentVersion(ctx context.Context, albumID string) (int64, error)

	// CurrentVersion returns the album's version, zero for an unknown album.
	CurrentVersion(ctx context.Context, albumID string) (int64, error)
}
