package model

import (
	"time"

	"gorm.io/datatypes"
)

// PackageModel is the GORM-specific struct for the 'packages' table.
// Reference lists are stored as JSON arrays of ObjectID hex strings.
type PackageModel struct {
	ID                 string                      `gorm:"type:varchar(24);primaryKey"`
	DestinationID      string                      `gorm:"column:destination_id;type:varchar(24);not null;index:idx_packages_listing,priority:1"`
	Name               string                      `gorm:"type:varchar(255);not null"`
	Description        string                      `gorm:"type:text"`
	BudgetPerDay       float64                     `gorm:"not null;index:idx_packages_listing,priority:3"`
	MinBudget          float64                     `gorm:"not null"`
	MaxBudget          float64                     `gorm:"not null"`
	DefaultStayID      *string                     `gorm:"column:default_stay_id;type:varchar(24)"`
	DefaultFoodSpotIDs datatypes.JSONSlice[string] `gorm:"column:default_food_spot_ids;not null"`
	DefaultLocalGemIDs datatypes.JSONSlice[string] `gorm:"column:default_local_gem_ids;not null"`
	DefaultActivityIDs datatypes.JSONSlice[string] `gorm:"column:default_activity_ids;not null"`
	Popularity         float64                     `gorm:"not null;default:0"`
	Rating             float64                     `gorm:"not null;default:0"`
	TotalBookings      int64                       `gorm:"not null;default:0"`
	IsActive           bool                        `gorm:"not null;index:idx_packages_listing,priority:2"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (PackageModel) TableName() string {
	return "packages"
}

// All lists every model for AutoMigrate.
func All() []any {
	return []any{
		&DestinationModel{},
		&FoodSpotModel{},
		&StayModel{},
		&LocalGemModel{},
		&ActivityModel{},
		&PackageModel{},
	}
}
