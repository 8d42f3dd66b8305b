package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LocalGem is a lesser known spot recommended by locals.
type LocalGem struct {
	ID            primitive.ObjectID `json:"_id"`
	Name          string             `json:"name"`
	Images        []string           `json:"images"`
	Description   string             `json:"description,omitempty"`
	DestinationID primitive.ObjectID `json:"destinationId"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// LocalGemPatch carries the updatable local gem fields.
type LocalGemPatch struct {
	Name          *string
	Images        *[]string
	Description   *string
	DestinationID *primitive.ObjectID
}
