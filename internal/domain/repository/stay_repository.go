package repository

import (
	"context"

	"trailpack/internal/domain/entity"
	"trailpack/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrStayNotFound is returned when a stay is not found.
var ErrStayNotFound = errors.New("stay not found")

// StayRepository defines the persistence operations for stays.
type StayRepository interface {
	// Create persists a new stay and fills in its generated fields.
	Create(ctx context.Context, stay *entity.Stay) error

	// FindByID retrieves a stay by its unique ID.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Stay, error)

	// Update applies the non-nil patch fields and returns the stored document.
	Update(ctx context.Context, id primitive.ObjectID, patch *entity.StayPatch) (*entity.Stay, error)

	// Delete removes a stay by its ID.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// DeleteByDestination removes every stay of a destination and returns how many were removed.
	DeleteByDestination(ctx context.Context, destinationID primitive.ObjectID) (int64, error)
}
