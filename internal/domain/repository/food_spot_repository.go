package repository

import (
	"context"

	"trailpack/internal/domain/entity"
	"trailpack/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrFoodSpotNotFound is returned when a food spot is not found.
var ErrFoodSpotNotFound = errors.New("food spot not found")

// FoodSpotRepository defines the persistence operations for food spots.
type FoodSpotRepository interface {
	// Create persists a new food spot and fills in its generated fields.
	Create(ctx context.Context, foodSpot *entity.FoodSpot) error

	// FindByIDs retrieves every food spot whose ID is in ids.
	// Unknown IDs are skipped; the result order is unspecified.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.FoodSpot, error)

	// Update applies the non-nil patch fields and returns the stored document.
	Update(ctx context.Context, id primitive.ObjectID, patch *entity.FoodSpotPatch) (*entity.FoodSpot, error)

	// Delete removes a food spot by its ID.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// DeleteByDestination removes every food spot of a destination and returns how many were removed.
	DeleteByDestination(ctx context.Context, destinationID primitive.ObjectID) (int64, error)
}
