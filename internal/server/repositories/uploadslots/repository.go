// Package uploadslots records one-time upload credentials so that reuse of
// a slot across assets or batches can be refused.
package uploadslots

import (
	"context"

	"github.com/dmitrijs2005/albumkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, slot *models.UploadSlot) error

	// Consume marks a slot used. The second consumption of the same slot
	// returns common.ErrCredentialReused; an unknown slot returns
	// common.ErrNotFound.
	Consume(ctx context.Context, id string) error
}
