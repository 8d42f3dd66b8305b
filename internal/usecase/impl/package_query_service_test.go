package impl

import (
	"context"
	"errors"
	"testing"

	"trailpack/internal/domain/entity"
	domainerrors "trailpack/internal/domain/errors"
	"trailpack/internal/domain/repository"
	mockRepo "trailpack/internal/mocks/repository"
	mockService "trailpack/internal/mocks/service"
	"trailpack/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type queryMocks struct {
	packages     *mockRepo.MockPackageRepository
	destinations *mockRepo.MockDestinationRepository
	stays        *mockRepo.MockStayRepository
	foodSpots    *mockRepo.MockFoodSpotRepository
	localGems    *mockRepo.MockLocalGemRepository
	activities   *mockRepo.MockActivityRepository
	qr           *mockService.MockQRCodeService
}

func newPackageQueryForTest(t *testing.T) (usecase.PackageQueryUsecase, *queryMocks) {
	t.Helper()

	m := &queryMocks{
		packages:     mockRepo.NewMockPackageRepository(t),
		destinations: mockRepo.NewMockDestinationRepository(t),
		stays:        mockRepo.NewMockStayRepository(t),
		foodSpots:    mockRepo.NewMockFoodSpotRepository(t),
		localGems:    mockRepo.NewMockLocalGemRepository(t),
		activities:   mockRepo.NewMockActivityRepository(t),
		qr:           mockService.NewMockQRCodeService(t),
	}

	svc := NewPackageQueryService(m.packages, m.destinations, m.stays, m.foodSpots, m.localGems, m.activities, m.qr, testLogger())

	return svc, m
}

func TestPackageQueryService_ListPackagesByDestination(t *testing.T) {
	ctx := context.Background()
	destID := primitive.NewObjectID()

	t.Run("parses bounds and sort mode", func(t *testing.T) {
		svc, m := newPackageQueryForTest(t)
		want := []*entity.Package{{ID: primitive.NewObjectID(), BudgetPerDay: 1200}}

		m.destinations.EXPECT().FindByID(ctx, destID).Return(&entity.Destination{ID: destID}, nil)
		m.packages.EXPECT().
			FindActiveByDestination(ctx, &entity.PackageQuery{
				DestinationID: destID,
				MinBudget:     ptr(1000.0),
				MaxBudget:     ptr(2000.0),
				SortBy:        entity.SortPopularity,
			}).
			Return(want, nil)

		got, err := svc.ListPackagesByDestination(ctx, &usecase.ListPackagesInput{
			DestinationID: destID,
			MinBudget:     "1000",
			MaxBudget:     "2000",
			SortBy:        "popularity",
		})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("empty bounds and unknown sort fall back", func(t *testing.T) {
		svc, m := newPackageQueryForTest(t)

		m.destinations.EXPECT().FindByID(ctx, destID).Return(&entity.Destination{ID: destID}, nil)
		m.packages.EXPECT().
			FindActiveByDestination(ctx, &entity.PackageQuery{DestinationID: destID, SortBy: entity.SortPriceAsc}).
			Return([]*entity.Package{}, nil)

		got, err := svc.ListPackagesByDestination(ctx, &usecase.ListPackagesInput{DestinationID: destID, SortBy: "cheapest"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("non-numeric bound is rejected before any lookup", func(t *testing.T) {
		svc, _ := newPackageQueryForTest(t)

		_, err := svc.ListPackagesByDestination(ctx, &usecase.ListPackagesInput{DestinationID: destID, MinBudget: "cheap"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown destination", func(t *testing.T) {
		svc, m := newPackageQueryForTest(t)

		m.destinations.EXPECT().FindByID(ctx, destID).Return(nil, repository.ErrDestinationNotFound)

		_, err := svc.ListPackagesByDestination(ctx, &usecase.ListPackagesInput{DestinationID: destID})
		assert.ErrorIs(t, err, domainerrors.ErrDestinationNotFound)
	})
}

func TestPackageQueryService_GetPackageDetail_EmptyReferences(t *testing.T) {
	svc, m := newPackageQueryForTest(t)
	ctx := context.Background()
	id := primitive.NewObjectID()

	m.packages.EXPECT().FindByID(ctx, id).Return(&entity.Package{
		ID:                 id,
		DefaultFoodSpotIDs: []primitive.ObjectID{},
		DefaultLocalGemIDs: nil,
		DefaultActivityIDs: []primitive.ObjectID{},
	}, nil)

	detail, err := svc.GetPackageDetail(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, detail.DefaultStay)
	assert.Equal(t, []*entity.FoodSpot{}, detail.DefaultFoodSpots)
	assert.Equal(t, []*entity.LocalGem{}, detail.DefaultLocalGems)
	assert.Equal(t, []*entity.Activity{}, detail.DefaultActivities)

	m.foodSpots.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
	m.localGems.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
	m.activities.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
	m.stays.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestPackageQueryService_GetPackageDetail_ResolvesInPackageOrder(t *testing.T) {
	svc, m := newPackageQueryForTest(t)
	ctx := context.Background()

	stayID := primitive.NewObjectID()
	spotA, spotB, missing := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()
	gemID := primitive.NewObjectID()
	activityID := primitive.NewObjectID()
	pkg := &entity.Package{
		ID:                 primitive.NewObjectID(),
		DefaultStayID:      &stayID,
		DefaultFoodSpotIDs: []primitive.ObjectID{spotB, missing, spotA},
		DefaultLocalGemIDs: []primitive.ObjectID{gemID},
		DefaultActivityIDs: []primitive.ObjectID{activityID},
	}

	m.packages.EXPECT().FindByID(ctx, pkg.ID).Return(pkg, nil)
	m.stays.EXPECT().FindByID(mock.Anything, stayID).Return(&entity.Stay{ID: stayID, Name: "Houseboat"}, nil)
	m.foodSpots.EXPECT().FindByIDs(mock.Anything, pkg.DefaultFoodSpotIDs).
		Return([]*entity.FoodSpot{{ID: spotA, Name: "A"}, {ID: spotB, Name: "B"}}, nil)
	m.localGems.EXPECT().FindByIDs(mock.Anything, pkg.DefaultLocalGemIDs).
		Return([]*entity.LocalGem{{ID: gemID}}, nil)
	m.activities.EXPECT().FindByIDs(mock.Anything, pkg.DefaultActivityIDs).
		Return([]*entity.Activity{{ID: activityID}}, nil)

	detail, err := svc.GetPackageDetail(ctx, pkg.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.DefaultStay)
	assert.Equal(t, "Houseboat", detail.DefaultStay.Name)
	require.Len(t, detail.DefaultFoodSpots, 2)
	assert.Equal(t, "B", detail.DefaultFoodSpots[0].Name)
	assert.Equal(t, "A", detail.DefaultFoodSpots[1].Name)
	assert.Len(t, detail.DefaultLocalGems, 1)
	assert.Len(t, detail.DefaultActivities, 1)
	assert.Same(t, pkg, detail.Package)
}

func TestPackageQueryService_GetPackageDetail_DanglingStayIsNull(t *testing.T) {
	svc, m := newPackageQueryForTest(t)
	ctx := context.Background()
	stayID := primitive.NewObjectID()
	pkg := &entity.Package{ID: primitive.NewObjectID(), DefaultStayID: &stayID}

	m.packages.EXPECT().FindByID(ctx, pkg.ID).Return(pkg, nil)
	m.stays.EXPECT().FindByID(mock.Anything, stayID).Return(nil, repository.ErrStayNotFound)

	detail, err := svc.GetPackageDetail(ctx, pkg.ID)
	require.NoError(t, err)
	assert.Nil(t, detail.DefaultStay)
}

func TestPackageQueryService_GetPackageDetail_LookupFailureFailsWhole(t *testing.T) {
	svc, m := newPackageQueryForTest(t)
	ctx := context.Background()
	pkg := &entity.Package{
		ID:                 primitive.NewObjectID(),
		DefaultFoodSpotIDs: []primitive.ObjectID{primitive.NewObjectID()},
		DefaultLocalGemIDs: []primitive.ObjectID{primitive.NewObjectID()},
	}

	m.packages.EXPECT().FindByID(ctx, pkg.ID).Return(pkg, nil)
	m.foodSpots.EXPECT().FindByIDs(mock.Anything, mock.Anything).Return(nil, errors.New("cursor killed"))
	m.localGems.EXPECT().FindByIDs(mock.Anything, mock.Anything).Return([]*entity.LocalGem{}, nil).Maybe()

	detail, err := svc.GetPackageDetail(ctx, pkg.ID)
	assert.Nil(t, detail)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
	assert.Contains(t, appErr.Message(), "cursor killed")
}

func TestPackageQueryService_GetPackageDetail_NotFound(t *testing.T) {
	svc, m := newPackageQueryForTest(t)
	ctx := context.Background()
	id := primitive.NewObjectID()

	m.packages.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrPackageNotFound)

	_, err := svc.GetPackageDetail(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrPackageNotFound)
}

func TestPackageQueryService_GetPackageShareQR(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()

	t.Run("existing package", func(t *testing.T) {
		svc, m := newPackageQueryForTest(t)
		png := []byte{0x89, 'P', 'N', 'G'}

		m.packages.EXPECT().FindByID(ctx, id).Return(&entity.Package{ID: id}, nil)
		m.qr.EXPECT().GeneratePackageQR(id).Return(png, nil)

		got, err := svc.GetPackageShareQR(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, png, got)
	})

	t.Run("unknown package", func(t *testing.T) {
		svc, m := newPackageQueryForTest(t)

		m.packages.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrPackageNotFound)

		_, err := svc.GetPackageShareQR(ctx, id)
		assert.ErrorIs(t, err, domainerrors.ErrPackageNotFound)
	})
}
