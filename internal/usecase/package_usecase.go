package usecase

import (
	"context"

	"trailpack/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreatePackageInput represents the input for creating a package
type CreatePackageInput struct {
	DestinationID      primitive.ObjectID   `json:"destinationId"`
	Name               string               `json:"name"`
	Description        string               `json:"description"`
	BudgetPerDay       float64              `json:"budgetPerDay"`
	MinBudget          float64              `json:"minBudget"`
	MaxBudget          float64              `json:"maxBudget"`
	DefaultStayID      *primitive.ObjectID  `json:"defaultStayId,omitempty"`
	DefaultFoodSpotIDs []primitive.ObjectID `json:"defaultFoodSpotIds"`
	DefaultLocalGemIDs []primitive.ObjectID `json:"defaultLocalGemIds"`
	DefaultActivityIDs []primitive.ObjectID `json:"defaultActivityIds"`
	Popularity         *float64             `json:"popularity,omitempty"`
	Rating             *float64             `json:"rating,omitempty"`
	TotalBookings      *int64               `json:"totalBookings,omitempty"`
	IsActive           *bool                `json:"isActive,omitempty"`
}

// UpdatePackageInput represents the input for updating a package.
// ClearDefaultStay drops the default stay reference.
type UpdatePackageInput struct {
	DestinationID      *primitive.ObjectID   `json:"destinationId,omitempty"`
	Name               *string               `json:"name,omitempty"`
	Description        *string               `json:"description,omitempty"`
	BudgetPerDay       *float64              `json:"budgetPerDay,omitempty"`
	MinBudget          *float64              `json:"minBudget,omitempty"`
	MaxBudget          *float64              `json:"maxBudget,omitempty"`
	DefaultStayID      *primitive.ObjectID   `json:"defaultStayId,omitempty"`
	ClearDefaultStay   bool                  `json:"clearDefaultStay,omitempty"`
	DefaultFoodSpotIDs *[]primitive.ObjectID `json:"defaultFoodSpotIds,omitempty"`
	DefaultLocalGemIDs *[]primitive.ObjectID `json:"defaultLocalGemIds,omitempty"`
	DefaultActivityIDs *[]primitive.ObjectID `json:"defaultActivityIds,omitempty"`
	Popularity         *float64              `json:"popularity,omitempty"`
	Rating             *float64              `json:"rating,omitempty"`
	TotalBookings      *int64                `json:"totalBookings,omitempty"`
	IsActive           *bool                 `json:"isActive,omitempty"`
}

// ListPackagesInput represents the raw public listing query.
// Budget bounds arrive as strings; an empty string means no bound.
type ListPackagesInput struct {
	DestinationID primitive.ObjectID
	MinBudget     string
	MaxBudget     string
	SortBy        string
}

// PackageAdminUsecase defines the interface for package management use cases
type PackageAdminUsecase interface {
	CreatePackage(ctx context.Context, input *CreatePackageInput) (*entity.Package, error)
	UpdatePackage(ctx context.Context, id primitive.ObjectID, input *UpdatePackageInput) (*entity.Package, error)
	DeletePackage(ctx context.Context, id primitive.ObjectID) error
}

// PackageQueryUsecase defines the public read path for packages
type PackageQueryUsecase interface {
	// ListPackagesByDestination returns the active packages of an existing destination,
	// filtered by budget per day and sorted by the requested mode
	ListPackagesByDestination(ctx context.Context, input *ListPackagesInput) ([]*entity.Package, error)

	// GetPackageDetail returns a package with its stay, food spots, local gems and activities resolved
	GetPackageDetail(ctx context.Context, id primitive.ObjectID) (*entity.PackageDetail, error)

	// GetPackageShareQR renders a PNG QR code pointing at the public package page
	GetPackageShareQR(ctx context.Context, id primitive.ObjectID) ([]byte, error)
}
