package repository

import (
	"context"

	"trailpack/internal/domain/entity"
	"trailpack/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrLocalGemNotFound is returned when a local gem is not found.
var ErrLocalGemNotFound = errors.New("local gem not found")

// LocalGemRepository defines the persistence operations for local gems.
type LocalGemRepository interface {
	// Create persists a new local gem and fills in its generated fields.
	Create(ctx context.Context, localGem *entity.LocalGem) error

	// FindByIDs retrieves every local gem whose ID is in ids.
	// Unknown IDs are skipped; the result order is unspecified.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.LocalGem, error)

	// Update applies the non-nil patch fields and returns the stored document.
	Update(ctx context.Context, id primitive.ObjectID, patch *entity.LocalGemPatch) (*entity.LocalGem, error)

	// Delete removes a local gem by its ID.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// DeleteByDestination removes every local gem of a destination and returns how many were removed.
	DeleteByDestination(ctx context.Context, destinationID primitive.ObjectID) (int64, error)
}
