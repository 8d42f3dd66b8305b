package repository

import (
	"context"

	"trailpack/internal/domain/entity"
	"trailpack/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrPackageNotFound is returned when a package is not found.
var ErrPackageNotFound = errors.New("package not found")

// PackageRepository defines the persistence operations for packages.
type PackageRepository interface {
	// Create persists a new package and fills in its generated fields.
	Create(ctx context.Context, pkg *entity.Package) error

	// FindByID retrieves a package by its unique ID, active or not.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Package, error)

	// FindActiveByDestination returns the active packages of query.DestinationID
	// within the optional budget bounds, ordered by query.SortBy.
	FindActiveByDestination(ctx context.Context, query *entity.PackageQuery) ([]*entity.Package, error)

	// Update applies the non-nil patch fields and returns the stored document.
	Update(ctx context.Context, id primitive.ObjectID, patch *entity.PackagePatch) (*entity.Package, error)

	// Delete removes a package by its ID.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// DeleteByDestination removes every package of a destination and returns how many were removed.
	DeleteByDestination(ctx context.Context, destinationID primitive.ObjectID) (int64, error)
}
