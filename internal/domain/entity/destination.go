package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultCountry is applied to destinations created without a country.
const DefaultCountry = "India"

// Destination is a place travellers can browse packages for.
// Every other catalog entity points back to a destination.
type Destination struct {
	ID          primitive.ObjectID `json:"_id"`
	Name        string             `json:"name"`
	Category    Category           `json:"category"`
	Country     string             `json:"country"`
	Rating      float64            `json:"rating"`
	Description string             `json:"description,omitempty"`
	Images      []string           `json:"images"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// DestinationPatch carries the updatable destination fields.
// A nil field is left unchanged.
type DestinationPatch struct {
	Name        *string
	Category    *Category
	Country     *string
	Rating      *float64
	Description *string
	Images      *[]string
}
