package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Package is a curated trip bundle for one destination and one budget tier.
// It references a default stay plus food spots, local gems and activities;
// the references are non-owning and may dangle after deletes.
type Package struct {
	ID                 primitive.ObjectID   `json:"_id"`
	DestinationID      primitive.ObjectID   `json:"destinationId"`
	Name               string               `json:"name"`
	Description        string               `json:"description,omitempty"`
	BudgetPerDay       float64              `json:"budgetPerDay"`
	MinBudget          float64              `json:"minBudget"`
	MaxBudget          float64              `json:"maxBudget"`
	DefaultStayID      *primitive.ObjectID  `json:"defaultStayId"`
	DefaultFoodSpotIDs []primitive.ObjectID `json:"defaultFoodSpotIds"`
	DefaultLocalGemIDs []primitive.ObjectID `json:"defaultLocalGemIds"`
	DefaultActivityIDs []primitive.ObjectID `json:"defaultActivityIds"`
	Popularity         float64              `json:"popularity"`
	Rating             float64              `json:"rating"`
	TotalBookings      int64                `json:"totalBookings"`
	IsActive           bool                 `json:"isActive"`
	CreatedAt          time.Time            `json:"createdAt"`
	UpdatedAt          time.Time            `json:"updatedAt"`
}

// BudgetInRange reports whether minBudget <= budgetPerDay <= maxBudget.
func (p *Package) BudgetInRange() bool {
	return p.MinBudget <= p.BudgetPerDay && p.BudgetPerDay <= p.MaxBudget
}

// PackagePatch carries the updatable package fields.
// ClearDefaultStay removes the default stay reference and wins over DefaultStayID.
type PackagePatch struct {
	DestinationID      *primitive.ObjectID
	Name               *string
	Description        *string
	BudgetPerDay       *float64
	MinBudget          *float64
	MaxBudget          *float64
	DefaultStayID      *primitive.ObjectID
	ClearDefaultStay   bool
	DefaultFoodSpotIDs *[]primitive.ObjectID
	DefaultLocalGemIDs *[]primitive.ObjectID
	DefaultActivityIDs *[]primitive.ObjectID
	Popularity         *float64
	Rating             *float64
	TotalBookings      *int64
	IsActive           *bool
}

// PackageDetail is a package with its references resolved into documents.
// It serialises as the package fields plus the four resolved keys.
type PackageDetail struct {
	*Package

	DefaultStay       *Stay       `json:"defaultStay"`
	DefaultFoodSpots  []*FoodSpot `json:"defaultFoodSpots"`
	DefaultLocalGems  []*LocalGem `json:"defaultLocalGems"`
	DefaultActivities []*Activity `json:"defaultActivities"`
}
