package usecase

import (
	"context"

	"trailpack/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateFoodSpotInput represents the input for creating a food spot
type CreateFoodSpotInput struct {
	Name          string             `json:"name"`
	Type          string             `json:"type"`
	Images        []string           `json:"images"`
	Description   string             `json:"description"`
	Price         *float64           `json:"price,omitempty"`
	DestinationID primitive.ObjectID `json:"destinationId"`
}

// UpdateFoodSpotInput represents the input for updating a food spot
type UpdateFoodSpotInput struct {
	Name          *string             `json:"name,omitempty"`
	Type          *string             `json:"type,omitempty"`
	Images        *[]string           `json:"images,omitempty"`
	Description   *string             `json:"description,omitempty"`
	Price         *float64            `json:"price,omitempty"`
	DestinationID *primitive.ObjectID `json:"destinationId,omitempty"`
}

// CreateStayInput represents the input for creating a stay
type CreateStayInput struct {
	Name          string             `json:"name"`
	Type          string             `json:"type"`
	Images        []string           `json:"images"`
	Description   string             `json:"description"`
	Price         *float64           `json:"price,omitempty"`
	Rating        *float64           `json:"rating,omitempty"`
	DestinationID primitive.ObjectID `json:"destinationId"`
}

// UpdateStayInput represents the input for updating a stay
type UpdateStayInput struct {
	Name          *string             `json:"name,omitempty"`
	Type          *string             `json:"type,omitempty"`
	Images        *[]string           `json:"images,omitempty"`
	Description   *string             `json:"description,omitempty"`
	Price         *float64            `json:"price,omitempty"`
	Rating        *float64            `json:"rating,omitempty"`
	DestinationID *primitive.ObjectID `json:"destinationId,omitempty"`
}

// CreateLocalGemInput represents the input for creating a local gem
type CreateLocalGemInput struct {
	Name          string             `json:"name"`
	Images        []string           `json:"images"`
	Description   string             `json:"description"`
	DestinationID primitive.ObjectID `json:"destinationId"`
}

// UpdateLocalGemInput represents the input for updating a local gem
type UpdateLocalGemInput struct {
	Name          *string             `json:"name,omitempty"`
	Images        *[]string           `json:"images,omitempty"`
	Description   *string             `json:"description,omitempty"`
	DestinationID *primitive.ObjectID `json:"destinationId,omitempty"`
}

// CreateActivityInput represents the input for creating an activity
type CreateActivityInput struct {
	Name          string             `json:"name"`
	Type          string             `json:"type"`
	Images        []string           `json:"images"`
	Description   string             `json:"description"`
	Price         *float64           `json:"price,omitempty"`
	DurationHours float64            `json:"durationHours"`
	DestinationID primitive.ObjectID `json:"destinationId"`
}

// UpdateActivityInput represents the input for updating an activity
type UpdateActivityInput struct {
	Name          *string             `json:"name,omitempty"`
	Type          *string             `json:"type,omitempty"`
	Images        *[]string           `json:"images,omitempty"`
	Description   *string             `json:"description,omitempty"`
	Price         *float64            `json:"price,omitempty"`
	DurationHours *float64            `json:"durationHours,omitempty"`
	DestinationID *primitive.ObjectID `json:"destinationId,omitempty"`
}

// FoodSpotUsecase defines the interface for food spot management use cases
type FoodSpotUsecase interface {
	CreateFoodSpot(ctx context.Context, input *CreateFoodSpotInput) (*entity.FoodSpot, error)
	UpdateFoodSpot(ctx context.Context, id primitive.ObjectID, input *UpdateFoodSpotInput) (*entity.FoodSpot, error)
	DeleteFoodSpot(ctx context.Context, id primitive.ObjectID) error
}

// StayUsecase defines the interface for stay management use cases
type StayUsecase interface {
	CreateStay(ctx context.Context, input *CreateStayInput) (*entity.Stay, error)
	UpdateStay(ctx context.Context, id primitive.ObjectID, input *UpdateStayInput) (*entity.Stay, error)
	DeleteStay(ctx context.Context, id primitive.ObjectID) error
}

// LocalGemUsecase defines the interface for local gem management use cases
type LocalGemUsecase interface {
	CreateLocalGem(ctx context.Context, input *CreateLocalGemInput) (*entity.LocalGem, error)
	UpdateLocalGem(ctx context.Context, id primitive.ObjectID, input *UpdateLocalGemInput) (*entity.LocalGem, error)
	DeleteLocalGem(ctx context.Context, id primitive.ObjectID) error
}

// ActivityUsecase defines the interface for activity management use cases
type ActivityUsecase interface {
	CreateActivity(ctx context.Context, input *CreateActivityInput) (*entity.Activity, error)
	UpdateActivity(ctx context.Context, id primitive.ObjectID, input *UpdateActivityInput) (*entity.Activity, error)
	DeleteActivity(ctx context.Context, id primitive.ObjectID) error
}
