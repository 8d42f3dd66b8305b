package repository

import (
	"context"

	"trailpack/internal/domain/entity"
	"trailpack/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrActivityNotFound is returned when an activity is not found.
var ErrActivityNotFound = errors.New("activity not found")

// ActivityRepository defines the persistence operations for activities.
type ActivityRepository interface {
	// Create persists a new activity and fills in its generated fields.
	Create(ctx context.Context, activity *entity.Activity) error

	// FindByIDs retrieves every activity whose ID is in ids.
	// Unknown IDs are skipped; the result order is unspecified.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Activity, error)

	// Update applies the non-nil patch fields and returns the stored document.
	Update(ctx context.Context, id primitive.ObjectID, patch *entity.ActivityPatch) (*entity.Activity, error)

	// Delete removes an activity by its ID.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// DeleteByDestination removes every activity of a destination and returns how many were removed.
	DeleteByDestination(ctx context.Context, destinationID primitive.ObjectID) (int64, error)
}
