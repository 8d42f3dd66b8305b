// Package model holds the GORM table structs for the relational backends.
package model

import (
	"time"

	"gorm.io/datatypes"
)

// DestinationModel is the GORM-specific struct for the 'destinations' table.
type DestinationModel struct {
	ID          string                      `gorm:"type:varchar(24);primaryKey"`
	Name        string                      `gorm:"type:varchar(255);not null;uniqueIndex:idx_destinations_name"`
	Category    string                      `gorm:"type:varchar(64);not null"`
	Country     string                      `gorm:"type:varchar(100);not null"`
	Rating      float64                     `gorm:"not null;default:0"`
	Description string                      `gorm:"type:text"`
	Images      datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (DestinationModel) TableName() string {
	return "destinations"
}

// FoodSpotModel is the GORM-specific struct for the 'food_spots' table.
type FoodSpotModel struct {
	ID            string                      `gorm:"type:varchar(24);primaryKey"`
	Name          string                      `gorm:"type:varchar(255);not null"`
	Type          string                      `gorm:"type:varchar(100)"`
	Images        datatypes.JSONSlice[string] `gorm:"not null"`
	Description   string                      `gorm:"type:text"`
	Price         float64                     `gorm:"not null;default:0"`
	DestinationID string                      `gorm:"column:destination_id;type:varchar(24);not null;index:idx_food_spots_destination"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (FoodSpotModel) TableName() string {
	return "food_spots"
}

// StayModel is the GORM-specific struct for the 'stays' table.
type StayModel struct {
	ID            string                      `gorm:"type:varchar(24);primaryKey"`
	Name          string                      `gorm:"type:varchar(255);not null"`
	Type          string                      `gorm:"type:varchar(100)"`
	Images        datatypes.JSONSlice[string] `gorm:"not null"`
	Description   string                      `gorm:"type:text"`
	Price         float64                     `gorm:"not null;default:0"`
	Rating        float64                     `gorm:"not null;default:0"`
	DestinationID string                      `gorm:"column:destination_id;type:varchar(24);not null;index:idx_stays_destination"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (StayModel) TableName() string {
	return "stays"
}

// LocalGemModel is the GORM-specific struct for the 'local_gems' table.
type LocalGemModel struct {
	ID            string                      `gorm:"type:varchar(24);primaryKey"`
	Name          string                      `gorm:"type:varchar(255);not null"`
	Images        datatypes.JSONSlice[string] `gorm:"not null"`
	Description   string                      `gorm:"type:text"`
	DestinationID string                      `gorm:"column:destination_id;type:varchar(24);not null;index:idx_local_gems_destination"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocalGemModel) TableName() string {
	return "local_gems"
}

// ActivityModel is the GORM-specific struct for the 'activities' table.
type ActivityModel struct {
	ID            string                      `gorm:"type:varchar(24);primaryKey"`
	Name          string                      `gorm:"type:varchar(255);not null"`
	Type          string                      `gorm:"type:varchar(100)"`
	Images        datatypes.JSONSlice[string] `gorm:"not null"`
	Description   string                      `gorm:"type:text"`
	Price         float64                     `gorm:"not null;default:0"`
	DurationHours float64                     `gorm:"not null;default:0"`
	DestinationID string                      `gorm:"column:destination_id;type:varchar(24);not null;index:idx_activities_destination"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activities"
}
