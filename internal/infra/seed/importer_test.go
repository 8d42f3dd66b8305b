package seed

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"trailpack/config"
	"trailpack/internal/domain/entity"
	"trailpack/internal/infra/persistence/postgres"
	"trailpack/internal/infra/qrcode"
	"trailpack/internal/usecase"
	"trailpack/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fixture struct {
	importer *Importer
	queries  usecase.PackageQueryUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := postgres.OpenSQLite(":memory:", nil)
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(context.Background(), db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := &config.Config{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	destinations := postgres.NewDestinationRepository(db)
	foodSpots := postgres.NewFoodSpotRepository(db)
	stays := postgres.NewStayRepository(db)
	localGems := postgres.NewLocalGemRepository(db)
	activities := postgres.NewActivityRepository(db)
	packages := postgres.NewPackageRepository(db)

	return &fixture{
		importer: NewImporter(ImporterParams{
			DestinationRepo: destinations,
			DestinationUC:   impl.NewDestinationService(destinations, foodSpots, stays, localGems, activities, packages, cfg, logger),
			FoodSpotUC:      impl.NewFoodSpotService(foodSpots),
			StayUC:          impl.NewStayService(stays),
			LocalGemUC:      impl.NewLocalGemService(localGems),
			ActivityUC:      impl.NewActivityService(activities),
			PackageUC:       impl.NewPackageAdminService(packages, cfg),
			Logger:          logger,
		}),
		queries: impl.NewPackageQueryService(packages, destinations, stays, foodSpots, localGems, activities,
			qrcode.NewQRCodeService(128, "M", ""), logger),
	}
}

func workbook(t *testing.T, sheets map[string][][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })

	for name, rows := range sheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		for i, values := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &values))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	return buf
}

func keralaWorkbook(t *testing.T) *bytes.Buffer {
	return workbook(t, map[string][][]any{
		SheetDestinations: {
			{"name", "category", "country", "rating", "images"},
			{"Alappuzha", "Beach", "", 4.6, "a.jpg|b.jpg"},
			{"Nowhere", "Desert", "", "", ""},
		},
		SheetStays: {
			{"name", "price", "rating", "destination"},
			{"Lake Palace", 3500, 4.5, "Alappuzha"},
		},
		SheetFoodSpots: {
			{"name", "price", "destination"},
			{"Thaff", 250, "Alappuzha"},
			{"Ghost Cafe", 100, "Atlantis"},
		},
		SheetLocalGems: {
			{"name", "destination"},
			{"Marari Beach", "Alappuzha"},
		},
		SheetActivities: {
			{"name", "price", "durationHours", "destination"},
			{"Houseboat cruise", 1800, 4, "Alappuzha"},
		},
		SheetPackages: {
			{"name", "destination", "budgetPerDay", "minBudget", "maxBudget", "stay", "foodSpots", "localGems", "activities", "popularity", "isActive"},
			{"Backwater Escape", "Alappuzha", 1200, 800, 2000, "Lake Palace", "Thaff", "Marari Beach", "Houseboat cruise", 87, "true"},
			{"Broken", "Alappuzha", "cheap", 800, 2000, "", "", "", "", "", ""},
		},
	})
}

func TestImporter_Import(t *testing.T) {
	ctx := context.Background()
	fix := newFixture(t)

	summary, err := fix.importer.Import(ctx, keralaWorkbook(t))
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		SheetDestinations: 1,
		SheetStays:        1,
		SheetFoodSpots:    1,
		SheetLocalGems:    1,
		SheetActivities:   1,
		SheetPackages:     1,
	}, summary.Created)
	assert.Zero(t, summary.ReusedDestinations)

	require.Len(t, summary.Errors, 3)
	assert.Equal(t, SheetDestinations, summary.Errors[0].Sheet)
	assert.Equal(t, 3, summary.Errors[0].Row)
	assert.Equal(t, SheetFoodSpots, summary.Errors[1].Sheet)
	assert.Contains(t, summary.Errors[1].Error(), `unknown destination "Atlantis"`)
	assert.Equal(t, SheetPackages, summary.Errors[2].Sheet)
	assert.Contains(t, summary.Errors[2].Error(), "budgetPerDay")

	alappuzha, err := fix.importer.destinationRepo.FindByName(ctx, "Alappuzha")
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryBeach, alappuzha.Category)
	assert.Equal(t, entity.DefaultCountry, alappuzha.Country)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, alappuzha.Images)

	packages, err := fix.queries.ListPackagesByDestination(ctx, &usecase.ListPackagesInput{DestinationID: alappuzha.ID})
	require.NoError(t, err)
	require.Len(t, packages, 1)

	detail, err := fix.queries.GetPackageDetail(ctx, packages[0].ID)
	require.NoError(t, err)
	require.NotNil(t, detail.DefaultStay)
	assert.Equal(t, "Lake Palace", detail.DefaultStay.Name)
	require.Len(t, detail.DefaultFoodSpots, 1)
	assert.Equal(t, "Thaff", detail.DefaultFoodSpots[0].Name)
	require.Len(t, detail.DefaultLocalGems, 1)
	require.Len(t, detail.DefaultActivities, 1)
	assert.InDelta(t, 4.0, detail.DefaultActivities[0].DurationHours, 0.001)
	assert.InDelta(t, 87.0, detail.Popularity, 0.001)
}

func TestImporter_ReusesExistingDestinations(t *testing.T) {
	ctx := context.Background()
	fix := newFixture(t)

	book := func() *bytes.Buffer {
		return workbook(t, map[string][][]any{
			SheetDestinations: {
				{"name", "category"},
				{"Hampi", "Culture & Heritage"},
			},
			SheetLocalGems: {
				{"name", "destination"},
				{"Hemakuta Hill", "Hampi"},
			},
		})
	}

	first, err := fix.importer.Import(ctx, book())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Created[SheetDestinations])

	second, err := fix.importer.Import(ctx, book())
	require.NoError(t, err)
	assert.Zero(t, second.Created[SheetDestinations])
	assert.Equal(t, 1, second.ReusedDestinations)
	assert.Equal(t, 1, second.Created[SheetLocalGems])
	assert.Empty(t, second.Errors)
}

func TestImporter_RejectsUnreadableWorkbook(t *testing.T) {
	_, err := newFixture(t).importer.Import(context.Background(), bytes.NewBufferString("not a workbook"))

	assert.Error(t, err)
}
