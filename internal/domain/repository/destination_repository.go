// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"trailpack/internal/domain/entity"
	"trailpack/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Domain-specific errors for destination persistence.
var (
	// ErrDestinationNotFound is returned when a destination is not found.
	ErrDestinationNotFound = errors.New("destination not found")
	// ErrDestinationNameTaken is returned when the unique name index rejects a write.
	ErrDestinationNameTaken = errors.New("destination name already taken")
)

// DestinationRepository defines the persistence operations for destinations.
type DestinationRepository interface {
	// Create persists a new destination and fills in its generated fields.
	Create(ctx context.Context, destination *entity.Destination) error

	// FindByID retrieves a destination by its unique ID.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Destination, error)

	// FindByName retrieves a destination by its exact, case-sensitive name.
	FindByName(ctx context.Context, name string) (*entity.Destination, error)

	// Update applies the non-nil patch fields and returns the stored document.
	// Returns ErrDestinationNotFound if nothing matched the ID.
	Update(ctx context.Context, id primitive.ObjectID, patch *entity.DestinationPatch) (*entity.Destination, error)

	// Delete removes a destination by its ID.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
