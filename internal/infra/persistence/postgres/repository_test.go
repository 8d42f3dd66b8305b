package postgres

import (
	"context"
	"testing"

	"trailpack/internal/domain/entity"
	"trailpack/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := OpenSQLite(":memory:", nil)
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func ptr[T any](v T) *T { return &v }

func TestDestinationRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewDestinationRepository(newTestDB(t))

	goa := &entity.Destination{Name: "Goa", Category: entity.CategoryBeach, Country: "India"}
	require.NoError(t, repo.Create(ctx, goa))
	assert.False(t, goa.ID.IsZero())
	assert.False(t, goa.CreatedAt.IsZero())

	t.Run("duplicate name", func(t *testing.T) {
		err := repo.Create(ctx, &entity.Destination{Name: "Goa", Category: entity.CategoryBeach, Country: "India"})
		assert.ErrorIs(t, err, repository.ErrDestinationNameTaken)
	})

	t.Run("find by id and name", func(t *testing.T) {
		byID, err := repo.FindByID(ctx, goa.ID)
		require.NoError(t, err)
		assert.Equal(t, "Goa", byID.Name)
		assert.Equal(t, []string{}, byID.Images)

		byName, err := repo.FindByName(ctx, "Goa")
		require.NoError(t, err)
		assert.Equal(t, goa.ID, byName.ID)

		_, err = repo.FindByName(ctx, "goa")
		assert.ErrorIs(t, err, repository.ErrDestinationNotFound)
	})

	t.Run("partial update", func(t *testing.T) {
		updated, err := repo.Update(ctx, goa.ID, &entity.DestinationPatch{
			Rating: ptr(4.5),
			Images: ptr([]string{"goa.jpg"}),
		})
		require.NoError(t, err)
		assert.Equal(t, "Goa", updated.Name)
		assert.Equal(t, 4.5, updated.Rating)
		assert.Equal(t, []string{"goa.jpg"}, updated.Images)
	})

	t.Run("update unknown id", func(t *testing.T) {
		_, err := repo.Update(ctx, primitive.NewObjectID(), &entity.DestinationPatch{Rating: ptr(1.0)})
		assert.ErrorIs(t, err, repository.ErrDestinationNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, goa.ID))
		assert.ErrorIs(t, repo.Delete(ctx, goa.ID), repository.ErrDestinationNotFound)
	})
}

func TestFoodSpotRepository_FindByIDsAndDeleteByDestination(t *testing.T) {
	ctx := context.Background()
	repo := NewFoodSpotRepository(newTestDB(t))
	destID := primitive.NewObjectID()

	first := &entity.FoodSpot{Name: "Britto's", Price: 600, DestinationID: destID}
	second := &entity.FoodSpot{Name: "Fisherman's Wharf", Price: 900, DestinationID: destID}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	found, err := repo.FindByIDs(ctx, []primitive.ObjectID{second.ID, primitive.NewObjectID(), first.ID})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	empty, err := repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	removed, err := repo.DeleteByDestination(ctx, destID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
}

func TestPackageRepository_FindActiveByDestination(t *testing.T) {
	ctx := context.Background()
	repo := NewPackageRepository(newTestDB(t))
	destID := primitive.NewObjectID()
	otherDest := primitive.NewObjectID()

	seed := []*entity.Package{
		{Name: "Budget", DestinationID: destID, BudgetPerDay: 800, Popularity: 10, Rating: 3.9, IsActive: true},
		{Name: "Comfort", DestinationID: destID, BudgetPerDay: 2000, Popularity: 30, Rating: 4.6, IsActive: true},
		{Name: "Luxury", DestinationID: destID, BudgetPerDay: 6000, Popularity: 20, Rating: 4.9, IsActive: true},
		{Name: "Retired", DestinationID: destID, BudgetPerDay: 1000, IsActive: false},
		{Name: "Elsewhere", DestinationID: otherDest, BudgetPerDay: 1000, IsActive: true},
	}
	for _, p := range seed {
		require.NoError(t, repo.Create(ctx, p))
	}

	names := func(pkgs []*entity.Package) []string {
		out := make([]string, len(pkgs))
		for i, p := range pkgs {
			out[i] = p.Name
		}

		return out
	}

	tests := []struct {
		name  string
		query entity.PackageQuery
		want  []string
	}{
		{"default price asc", entity.PackageQuery{SortBy: entity.SortPriceAsc}, []string{"Budget", "Comfort", "Luxury"}},
		{"price desc", entity.PackageQuery{SortBy: entity.SortPriceDesc}, []string{"Luxury", "Comfort", "Budget"}},
		{"popularity", entity.PackageQuery{SortBy: entity.SortPopularity}, []string{"Comfort", "Luxury", "Budget"}},
		{"rating", entity.PackageQuery{SortBy: entity.SortRating}, []string{"Luxury", "Comfort", "Budget"}},
		{"min only", entity.PackageQuery{MinBudget: ptr(2000.0), SortBy: entity.SortPriceAsc}, []string{"Comfort", "Luxury"}},
		{"max only", entity.PackageQuery{MaxBudget: ptr(2000.0), SortBy: entity.SortPriceAsc}, []string{"Budget", "Comfort"}},
		{"both bounds inclusive", entity.PackageQuery{MinBudget: ptr(800.0), MaxBudget: ptr(2000.0), SortBy: entity.SortPriceDesc}, []string{"Comfort", "Budget"}},
		{"no match", entity.PackageQuery{MinBudget: ptr(10000.0), SortBy: entity.SortPriceAsc}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.query
			q.DestinationID = destID

			got, err := repo.FindActiveByDestination(ctx, &q)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestPackageRepository_TiesOrderedByID(t *testing.T) {
	ctx := context.Background()
	repo := NewPackageRepository(newTestDB(t))
	destID := primitive.NewObjectID()

	a := &entity.Package{ID: primitive.NewObjectID(), Name: "A", DestinationID: destID, BudgetPerDay: 1000, IsActive: true}
	b := &entity.Package{ID: primitive.NewObjectID(), Name: "B", DestinationID: destID, BudgetPerDay: 1000, IsActive: true}
	// insert in reverse id order
	require.NoError(t, repo.Create(ctx, b))
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.FindActiveByDestination(ctx, &entity.PackageQuery{DestinationID: destID, SortBy: entity.SortPriceDesc})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, b.ID, got[1].ID)
}

func TestPackageRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewPackageRepository(newTestDB(t))

	stayID := primitive.NewObjectID()
	spotID := primitive.NewObjectID()
	pkg := &entity.Package{
		Name:               "Weekend",
		DestinationID:      primitive.NewObjectID(),
		BudgetPerDay:       1500,
		DefaultStayID:      &stayID,
		DefaultFoodSpotIDs: []primitive.ObjectID{spotID},
		IsActive:           true,
	}
	require.NoError(t, repo.Create(ctx, pkg))

	stored, err := repo.FindByID(ctx, pkg.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.DefaultStayID)
	assert.Equal(t, stayID, *stored.DefaultStayID)
	assert.Equal(t, []primitive.ObjectID{spotID}, stored.DefaultFoodSpotIDs)
	assert.Equal(t, []primitive.ObjectID{}, stored.DefaultActivityIDs)

	updated, err := repo.Update(ctx, pkg.ID, &entity.PackagePatch{
		ClearDefaultStay:   true,
		IsActive:           ptr(false),
		DefaultFoodSpotIDs: ptr([]primitive.ObjectID{}),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.DefaultStayID)
	assert.False(t, updated.IsActive)
	assert.Empty(t, updated.DefaultFoodSpotIDs)
	assert.Equal(t, "Weekend", updated.Name)

	_, err = repo.Update(ctx, primitive.NewObjectID(), &entity.PackagePatch{Name: ptr("x")})
	assert.ErrorIs(t, err, repository.ErrPackageNotFound)
}
