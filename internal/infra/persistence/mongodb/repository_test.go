package mongodb

import (
	"context"
	"testing"

	"trailpack/internal/domain/entity"
	"trailpack/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockDB(t *testing.T) *mtest.T {
	t.Helper()

	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func ptr[T any](v T) *T { return &v }

func duplicateKeyResponse() bson.D {
	return mtest.CreateWriteErrorsResponse(mtest.WriteError{
		Index:   0,
		Code:    11000,
		Message: "E11000 duplicate key error collection: trailpack.destinations index: name_1",
	})
}

// emptyCursor answers a find that matched nothing.
func emptyCursor(collection string) bson.D {
	return mtest.CreateCursorResponse(0, "trailpack."+collection, mtest.FirstBatch)
}

func TestDestinationRepository_Mongo(t *testing.T) {
	ctx := context.Background()
	mt := newMockDB(t)

	mt.Run("create stamps id and timestamps", func(mt *mtest.T) {
		repo := NewDestinationRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		goa := &entity.Destination{Name: "Goa", Category: entity.CategoryBeach, Country: "India"}
		require.NoError(mt, repo.Create(ctx, goa))
		assert.False(mt, goa.ID.IsZero())
		assert.False(mt, goa.CreatedAt.IsZero())
		assert.Equal(mt, goa.CreatedAt, goa.UpdatedAt)

		cmd := mt.GetStartedEvent().Command
		assert.Equal(mt, "Goa", cmd.Lookup("documents", "0", "name").StringValue())
		assert.Equal(mt, "Beach", cmd.Lookup("documents", "0", "category").StringValue())
	})

	mt.Run("create with a taken name", func(mt *mtest.T) {
		repo := NewDestinationRepository(mt.DB)
		mt.AddMockResponses(duplicateKeyResponse())

		err := repo.Create(ctx, &entity.Destination{Name: "Goa", Category: entity.CategoryBeach})
		assert.ErrorIs(mt, err, repository.ErrDestinationNameTaken)
	})

	mt.Run("rename onto a taken name", func(mt *mtest.T) {
		repo := NewDestinationRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Name:    "DuplicateKey",
			Message: "E11000 duplicate key error collection: trailpack.destinations index: name_1",
		}))

		_, err := repo.Update(ctx, primitive.NewObjectID(), &entity.DestinationPatch{Name: ptr("Goa")})
		assert.ErrorIs(mt, err, repository.ErrDestinationNameTaken)
	})

	mt.Run("find by id", func(mt *mtest.T) {
		repo := NewDestinationRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "trailpack.destinations", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "Munnar"},
			{Key: "category", Value: "Mountains & Outdoors"},
			{Key: "country", Value: "India"},
			{Key: "rating", Value: 4.4},
		}))

		got, err := repo.FindByID(ctx, id)
		require.NoError(mt, err)
		assert.Equal(mt, id, got.ID)
		assert.Equal(mt, entity.CategoryMountainsOutdoors, got.Category)
		assert.Equal(mt, []string{}, got.Images)
	})

	mt.Run("find by id with no match", func(mt *mtest.T) {
		repo := NewDestinationRepository(mt.DB)
		mt.AddMockResponses(emptyCursor(collectionDestinations))

		_, err := repo.FindByID(ctx, primitive.NewObjectID())
		assert.ErrorIs(mt, err, repository.ErrDestinationNotFound)
	})

	mt.Run("find by name with no match", func(mt *mtest.T) {
		repo := NewDestinationRepository(mt.DB)
		mt.AddMockResponses(emptyCursor(collectionDestinations))

		_, err := repo.FindByName(ctx, "Atlantis")
		assert.ErrorIs(mt, err, repository.ErrDestinationNotFound)

		cmd := mt.GetStartedEvent().Command
		assert.Equal(mt, "Atlantis", cmd.Lookup("filter", "name").StringValue())
	})

	mt.Run("find by id surfaces driver failures", func(mt *mtest.T) {
		repo := NewDestinationRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad query",
		}))

		_, err := repo.FindByID(ctx, primitive.NewObjectID())
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, repository.ErrDestinationNotFound)
		assert.Contains(mt, err.Error(), "bad query")
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewDestinationRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		require.NoError(mt, repo.Delete(ctx, primitive.NewObjectID()))
	})

	mt.Run("delete with no match", func(mt *mtest.T) {
		repo := NewDestinationRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.Delete(ctx, primitive.NewObjectID())
		assert.ErrorIs(mt, err, repository.ErrDestinationNotFound)
	})
}

func TestFoodSpotRepository_Mongo_FindByIDs(t *testing.T) {
	ctx := context.Background()
	mt := newMockDB(t)

	mt.Run("decodes every match", func(mt *mtest.T) {
		repo := NewFoodSpotRepository(mt.DB)
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "trailpack.foodspots", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: first}, {Key: "name", Value: "Karimeen Corner"}, {Key: "price", Value: 450.0}},
			bson.D{{Key: "_id", Value: second}, {Key: "name", Value: "Toddy Shop"}, {Key: "images", Value: bson.A{"toddy.jpg"}}},
		))

		spots, err := repo.FindByIDs(ctx, []primitive.ObjectID{first, second})
		require.NoError(mt, err)
		require.Len(mt, spots, 2)
		assert.Equal(mt, "Karimeen Corner", spots[0].Name)
		assert.Equal(mt, 450.0, spots[0].Price)
		assert.Equal(mt, []string{}, spots[0].Images)
		assert.Equal(mt, []string{"toddy.jpg"}, spots[1].Images)

		ids, err := mt.GetStartedEvent().Command.Lookup("filter", "_id", "$in").Array().Values()
		require.NoError(mt, err)
		require.Len(mt, ids, 2)
		assert.Equal(mt, first, ids[0].ObjectID())
		assert.Equal(mt, second, ids[1].ObjectID())
	})

	mt.Run("no ids skips the store", func(mt *mtest.T) {
		repo := NewFoodSpotRepository(mt.DB)

		spots, err := repo.FindByIDs(ctx, nil)
		require.NoError(mt, err)
		assert.Empty(mt, spots)
		assert.Nil(mt, mt.GetStartedEvent())
	})
}

func TestPackageRepository_Mongo(t *testing.T) {
	ctx := context.Background()
	mt := newMockDB(t)

	mt.Run("update returns the stored document and clears the default stay", func(mt *mtest.T) {
		repo := NewPackageRepository(mt.DB)
		id, destID := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "destinationId", Value: destID},
			{Key: "name", Value: "Backwater Escape"},
			{Key: "budgetPerDay", Value: 1800.0},
			{Key: "minBudget", Value: 1200.0},
			{Key: "maxBudget", Value: 2500.0},
			{Key: "isActive", Value: true},
		}}))

		updated, err := repo.Update(ctx, id, &entity.PackagePatch{
			BudgetPerDay:     ptr(1800.0),
			ClearDefaultStay: true,
		})
		require.NoError(mt, err)
		assert.Equal(mt, id, updated.ID)
		assert.Equal(mt, 1800.0, updated.BudgetPerDay)
		assert.Nil(mt, updated.DefaultStayID)
		assert.Equal(mt, []primitive.ObjectID{}, updated.DefaultFoodSpotIDs)

		cmd := mt.GetStartedEvent().Command
		assert.True(mt, cmd.Lookup("new").Boolean())
		assert.Equal(mt, id, cmd.Lookup("query", "_id").ObjectID())
		assert.False(mt, cmd.Lookup("update", "$unset", "defaultStayId").IsZero())
		assert.Equal(mt, 1800.0, cmd.Lookup("update", "$set", "budgetPerDay").Double())
		assert.False(mt, cmd.Lookup("update", "$set", "updatedAt").IsZero())
	})

	mt.Run("update with no match", func(mt *mtest.T) {
		repo := NewPackageRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.Update(ctx, primitive.NewObjectID(), &entity.PackagePatch{Name: ptr("Gone")})
		assert.ErrorIs(mt, err, repository.ErrPackageNotFound)
	})

	mt.Run("list sends filter and sort", func(mt *mtest.T) {
		repo := NewPackageRepository(mt.DB)
		destID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "trailpack.packages", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "destinationId", Value: destID}, {Key: "popularity", Value: 90.0}, {Key: "isActive", Value: true}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "destinationId", Value: destID}, {Key: "popularity", Value: 40.0}, {Key: "isActive", Value: true}},
		))

		packages, err := repo.FindActiveByDestination(ctx, &entity.PackageQuery{
			DestinationID: destID,
			MinBudget:     ptr(500.0),
			SortBy:        entity.SortPopularity,
		})
		require.NoError(mt, err)
		require.Len(mt, packages, 2)
		assert.Equal(mt, 90.0, packages[0].Popularity)

		cmd := mt.GetStartedEvent().Command
		assert.Equal(mt, destID, cmd.Lookup("filter", "destinationId").ObjectID())
		assert.True(mt, cmd.Lookup("filter", "isActive").Boolean())
		assert.Equal(mt, 500.0, cmd.Lookup("filter", "budgetPerDay", "$gte").Double())
		assert.Equal(mt, int64(-1), cmd.Lookup("sort", "popularity").AsInt64())
	})

	mt.Run("delete by destination reports the count", func(mt *mtest.T) {
		repo := NewPackageRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}))

		removed, err := repo.DeleteByDestination(ctx, primitive.NewObjectID())
		require.NoError(mt, err)
		assert.Equal(mt, int64(3), removed)
	})
}

func TestStayRepository_Mongo_FindByIDNotFound(t *testing.T) {
	mt := newMockDB(t)

	mt.Run("maps no documents to the stay sentinel", func(mt *mtest.T) {
		repo := NewStayRepository(mt.DB)
		mt.AddMockResponses(emptyCursor(collectionStays))

		_, err := repo.FindByID(context.Background(), primitive.NewObjectID())
		assert.ErrorIs(mt, err, repository.ErrStayNotFound)
	})
}

func TestEnsureIndexes(t *testing.T) {
	mt := newMockDB(t)

	mt.Run("creates the name and listing indexes", func(mt *mtest.T) {
		for range 6 {
			mt.AddMockResponses(mtest.CreateSuccessResponse())
		}

		require.NoError(mt, EnsureIndexes(context.Background(), mt.DB))

		byCollection := map[string]bson.Raw{}
		for _, evt := range mt.GetAllStartedEvents() {
			byCollection[evt.Command.Lookup("createIndexes").StringValue()] = evt.Command
		}
		require.Len(mt, byCollection, 6)

		names := byCollection[collectionDestinations]
		assert.True(mt, names.Lookup("indexes", "0", "unique").Boolean())
		assert.Equal(mt, int64(1), names.Lookup("indexes", "0", "key", "name").AsInt64())

		packages, err := byCollection[collectionPackages].Lookup("indexes").Array().Values()
		require.NoError(mt, err)
		require.Len(mt, packages, 3)
		assert.Equal(mt, int64(-1), packages[1].Document().Lookup("key", "popularity").AsInt64())

		assert.Equal(mt, int64(1), byCollection[collectionStays].Lookup("indexes", "0", "key", "destinationId").AsInt64())
	})
}
