package mongodb

import (
	"testing"
	"time"

	"trailpack/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func float64Ptr(v float64) *float64 { return &v }

func TestBuildPackageFilter(t *testing.T) {
	destID := primitive.NewObjectID()

	t.Run("no budget bounds", func(t *testing.T) {
		filter := buildPackageFilter(&entity.PackageQuery{DestinationID: destID})

		assert.Equal(t, bson.D{
			{Key: "destinationId", Value: destID},
			{Key: "isActive", Value: true},
		}, filter)
	})

	t.Run("min only", func(t *testing.T) {
		filter := buildPackageFilter(&entity.PackageQuery{DestinationID: destID, MinBudget: float64Ptr(500)})

		require.Len(t, filter, 3)
		assert.Equal(t, bson.E{Key: "budgetPerDay", Value: bson.D{{Key: "$gte", Value: 500.0}}}, filter[2])
	})

	t.Run("both bounds", func(t *testing.T) {
		filter := buildPackageFilter(&entity.PackageQuery{
			DestinationID: destID,
			MinBudget:     float64Ptr(500),
			MaxBudget:     float64Ptr(1500),
		})

		require.Len(t, filter, 3)
		assert.Equal(t, bson.E{Key: "budgetPerDay", Value: bson.D{
			{Key: "$gte", Value: 500.0},
			{Key: "$lte", Value: 1500.0},
		}}, filter[2])
	})
}

func TestBuildPackageSort(t *testing.T) {
	tests := []struct {
		mode entity.SortMode
		want bson.D
	}{
		{entity.SortPriceAsc, bson.D{{Key: "budgetPerDay", Value: 1}, {Key: "_id", Value: 1}}},
		{entity.SortPriceDesc, bson.D{{Key: "budgetPerDay", Value: -1}, {Key: "_id", Value: 1}}},
		{entity.SortPopularity, bson.D{{Key: "popularity", Value: -1}, {Key: "_id", Value: 1}}},
		{entity.SortRating, bson.D{{Key: "rating", Value: -1}, {Key: "_id", Value: 1}}},
		{entity.SortMode("bogus"), bson.D{{Key: "budgetPerDay", Value: 1}, {Key: "_id", Value: 1}}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.want, buildPackageSort(tt.mode))
		})
	}
}

func TestPackageUpdate(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	stayID := primitive.NewObjectID()
	name := "Goa Getaway"

	t.Run("sets only provided fields", func(t *testing.T) {
		update := packageUpdate(&entity.PackagePatch{Name: &name, DefaultStayID: &stayID}).build(now)

		require.Len(t, update, 1)
		assert.Equal(t, "$set", update[0].Key)
		assert.Equal(t, bson.D{
			{Key: "name", Value: name},
			{Key: "defaultStayId", Value: stayID},
			{Key: "updatedAt", Value: now},
		}, update[0].Value)
	})

	t.Run("clear default stay wins", func(t *testing.T) {
		update := packageUpdate(&entity.PackagePatch{DefaultStayID: &stayID, ClearDefaultStay: true}).build(now)

		require.Len(t, update, 2)
		assert.Equal(t, bson.D{{Key: "updatedAt", Value: now}}, update[0].Value)
		assert.Equal(t, bson.E{Key: "$unset", Value: bson.D{{Key: "defaultStayId", Value: ""}}}, update[1])
	})

	t.Run("nil id list becomes empty array", func(t *testing.T) {
		var ids []primitive.ObjectID
		update := packageUpdate(&entity.PackagePatch{DefaultFoodSpotIDs: &ids}).build(now)

		assert.Equal(t, bson.D{
			{Key: "defaultFoodSpotIds", Value: []primitive.ObjectID{}},
			{Key: "updatedAt", Value: now},
		}, update[0].Value)
	})
}

func TestDestinationUpdate(t *testing.T) {
	now := time.Now().UTC()
	category := entity.CategoryBeach
	images := []string{"a.jpg"}

	update := destinationUpdate(&entity.DestinationPatch{Category: &category, Images: &images}).build(now)

	assert.Equal(t, bson.D{
		{Key: "category", Value: "Beach"},
		{Key: "images", Value: images},
		{Key: "updatedAt", Value: now},
	}, update[0].Value)
}
