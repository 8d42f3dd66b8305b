package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FoodSpot is a restaurant, cafe or street food stall at a destination.
type FoodSpot struct {
	ID            primitive.ObjectID `json:"_id"`
	Name          string             `json:"name"`
	Type          string             `json:"type,omitempty"`
	Images        []string           `json:"images"`
	Description   string             `json:"description,omitempty"`
	Price         float64            `json:"price"` // average per meal per person
	DestinationID primitive.ObjectID `json:"destinationId"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// FoodSpotPatch carries the updatable food spot fields.
type FoodSpotPatch struct {
	Name          *string
	Type          *string
	Images        *[]string
	Description   *string
	Price         *float64
	DestinationID *primitive.ObjectID
}
