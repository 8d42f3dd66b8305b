package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxRating is the upper bound for stay and package ratings.
const MaxRating = 5

// Stay is an accommodation offered at a destination.
type Stay struct {
	ID            primitive.ObjectID `json:"_id"`
	Name          string             `json:"name"`
	Type          string             `json:"type,omitempty"`
	Images        []string           `json:"images"`
	Description   string             `json:"description,omitempty"`
	Price         float64            `json:"price"` // starting price per person per night
	Rating        float64            `json:"rating"`
	DestinationID primitive.ObjectID `json:"destinationId"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// StayPatch carries the updatable stay fields.
type StayPatch struct {
	Name          *string
	Type          *string
	Images        *[]string
	Description   *string
	Price         *float64
	Rating        *float64
	DestinationID *primitive.ObjectID
}
