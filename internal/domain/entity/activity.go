package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity is a bookable experience such as a backwater cruise or a trek.
type Activity struct {
	ID            primitive.ObjectID `json:"_id"`
	Name          string             `json:"name"`
	Type          string             `json:"type,omitempty"`
	Images        []string           `json:"images"`
	Description   string             `json:"description,omitempty"`
	Price         float64            `json:"price"`
	DurationHours float64            `json:"durationHours,omitempty"`
	DestinationID primitive.ObjectID `json:"destinationId"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// ActivityPatch carries the updatable activity fields.
type ActivityPatch struct {
	Name          *string
	Type          *string
	Images        *[]string
	Description   *string
	Price         *float64
	DurationHours *float64
	DestinationID *primitive.ObjectID
}
