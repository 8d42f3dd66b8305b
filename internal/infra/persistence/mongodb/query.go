package mongodb

import (
	"time"

	"trailpack/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// buildPackageFilter matches active packages of one destination within the
// optional inclusive budget bounds.
func buildPackageFilter(query *entity.PackageQuery) bson.D {
	filter := bson.D{
		{Key: "destinationId", Value: query.DestinationID},
		{Key: "isActive", Value: true},
	}

	budget := bson.D{}
	if query.MinBudget != nil {
		budget = append(budget, bson.E{Key: "$gte", Value: *query.MinBudget})
	}
	if query.MaxBudget != nil {
		budget = append(budget, bson.E{Key: "$lte", Value: *query.MaxBudget})
	}
	if len(budget) > 0 {
		filter = append(filter, bson.E{Key: "budgetPerDay", Value: budget})
	}

	return filter
}

// buildPackageSort orders by the selected field and breaks ties by _id.
func buildPackageSort(mode entity.SortMode) bson.D {
	switch mode {
	case entity.SortPriceDesc:
		return bson.D{{Key: "budgetPerDay", Value: -1}, {Key: "_id", Value: 1}}
	case entity.SortPopularity:
		return bson.D{{Key: "popularity", Value: -1}, {Key: "_id", Value: 1}}
	case entity.SortRating:
		return bson.D{{Key: "rating", Value: -1}, {Key: "_id", Value: 1}}
	default:
		return bson.D{{Key: "budgetPerDay", Value: 1}, {Key: "_id", Value: 1}}
	}
}

// updateDoc collects $set and $unset operations for a partial update.
type updateDoc struct {
	set   bson.D
	unset bson.D
}

func setField[T any](u *updateDoc, key string, value *T) {
	if value != nil {
		u.set = append(u.set, bson.E{Key: key, Value: *value})
	}
}

func (u *updateDoc) unsetField(key string) {
	u.unset = append(u.unset, bson.E{Key: key, Value: ""})
}

// build stamps updatedAt and returns the update document.
func (u *updateDoc) build(now time.Time) bson.D {
	update := bson.D{{Key: "$set", Value: append(u.set, bson.E{Key: "updatedAt", Value: now})}}
	if len(u.unset) > 0 {
		update = append(update, bson.E{Key: "$unset", Value: u.unset})
	}

	return update
}

func setImages(u *updateDoc, images *[]string) {
	if images != nil {
		u.set = append(u.set, bson.E{Key: "images", Value: nonNil(*images)})
	}
}

func destinationUpdate(patch *entity.DestinationPatch) *updateDoc {
	u := &updateDoc{}
	setField(u, "name", patch.Name)
	if patch.Category != nil {
		u.set = append(u.set, bson.E{Key: "category", Value: patch.Category.String()})
	}
	setField(u, "country", patch.Country)
	setField(u, "rating", patch.Rating)
	setField(u, "description", patch.Description)
	setImages(u, patch.Images)

	return u
}

func foodSpotUpdate(patch *entity.FoodSpotPatch) *updateDoc {
	u := &updateDoc{}
	setField(u, "name", patch.Name)
	setField(u, "type", patch.Type)
	setImages(u, patch.Images)
	setField(u, "description", patch.Description)
	setField(u, "price", patch.Price)
	setField(u, "destinationId", patch.DestinationID)

	return u
}

func stayUpdate(patch *entity.StayPatch) *updateDoc {
	u := &updateDoc{}
	setField(u, "name", patch.Name)
	setField(u, "type", patch.Type)
	setImages(u, patch.Images)
	setField(u, "description", patch.Description)
	setField(u, "price", patch.Price)
	setField(u, "rating", patch.Rating)
	setField(u, "destinationId", patch.DestinationID)

	return u
}

func localGemUpdate(patch *entity.LocalGemPatch) *updateDoc {
	u := &updateDoc{}
	setField(u, "name", patch.Name)
	setImages(u, patch.Images)
	setField(u, "description", patch.Description)
	setField(u, "destinationId", patch.DestinationID)

	return u
}

func activityUpdate(patch *entity.ActivityPatch) *updateDoc {
	u := &updateDoc{}
	setField(u, "name", patch.Name)
	setField(u, "type", patch.Type)
	setImages(u, patch.Images)
	setField(u, "description", patch.Description)
	setField(u, "price", patch.Price)
	setField(u, "durationHours", patch.DurationHours)
	setField(u, "destinationId", patch.DestinationID)

	return u
}

func packageUpdate(patch *entity.PackagePatch) *updateDoc {
	u := &updateDoc{}
	setField(u, "destinationId", patch.DestinationID)
	setField(u, "name", patch.Name)
	setField(u, "description", patch.Description)
	setField(u, "budgetPerDay", patch.BudgetPerDay)
	setField(u, "minBudget", patch.MinBudget)
	setField(u, "maxBudget", patch.MaxBudget)

	switch {
	case patch.ClearDefaultStay:
		u.unsetField("defaultStayId")
	case patch.DefaultStayID != nil:
		u.set = append(u.set, bson.E{Key: "defaultStayId", Value: *patch.DefaultStayID})
	}

	setIDs(u, "defaultFoodSpotIds", patch.DefaultFoodSpotIDs)
	setIDs(u, "defaultLocalGemIds", patch.DefaultLocalGemIDs)
	setIDs(u, "defaultActivityIds", patch.DefaultActivityIDs)
	setField(u, "popularity", patch.Popularity)
	setField(u, "rating", patch.Rating)
	setField(u, "totalBookings", patch.TotalBookings)
	setField(u, "isActive", patch.IsActive)

	return u
}

func setIDs(u *updateDoc, key string, ids *[]primitive.ObjectID) {
	if ids != nil {
		u.set = append(u.set, bson.E{Key: key, Value: nonNil(*ids)})
	}
}
