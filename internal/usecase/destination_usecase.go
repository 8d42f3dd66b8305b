package usecase

import (
	"context"

	"trailpack/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateDestinationInput represents the input for creating a destination
type CreateDestinationInput struct {
	Name        string          `json:"name"`
	Category    entity.Category `json:"category"`
	Country     string          `json:"country"`
	Rating      *float64        `json:"rating,omitempty"`
	Description string          `json:"description"`
	Images      []string        `json:"images"`
}

// UpdateDestinationInput represents the input for updating a destination.
// Only non-nil fields are written.
type UpdateDestinationInput struct {
	Name        *string          `json:"name,omitempty"`
	Category    *entity.Category `json:"category,omitempty"`
	Country     *string          `json:"country,omitempty"`
	Rating      *float64         `json:"rating,omitempty"`
	Description *string          `json:"description,omitempty"`
	Images      *[]string        `json:"images,omitempty"`
}

// DeleteResult reports what a delete removed.
// Cascaded is empty unless the cascade delete policy is active.
type DeleteResult struct {
	Policy   entity.DeletePolicy `json:"policy"`
	Cascaded map[string]int64    `json:"cascaded,omitempty"`
}

// DestinationUsecase defines the interface for destination management use cases
type DestinationUsecase interface {
	CreateDestination(ctx context.Context, input *CreateDestinationInput) (*entity.Destination, error)
	UpdateDestination(ctx context.Context, id primitive.ObjectID, input *UpdateDestinationInput) (*entity.Destination, error)

	// DeleteDestination removes the destination and applies the configured delete policy to its dependents
	DeleteDestination(ctx context.Context, id primitive.ObjectID) (*DeleteResult, error)
}
