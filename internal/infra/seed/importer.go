// Package seed bulk loads catalog content from an .xlsx workbook.
package seed

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"trailpack/internal/domain/entity"
	"trailpack/internal/domain/repository"
	"trailpack/internal/errors"
	"trailpack/internal/usecase"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
)

// Sheet names, imported in this order so references resolve.
const (
	SheetDestinations = "Destinations"
	SheetFoodSpots    = "FoodSpots"
	SheetStays        = "Stays"
	SheetLocalGems    = "LocalGems"
	SheetActivities   = "Activities"
	SheetPackages     = "Packages"
)

// errSkipped marks a row that needed no write, such as an existing destination.
var errSkipped = errors.New("row skipped")

// RowError reports a row that could not be imported.
type RowError struct {
	Sheet string
	Row   int
	Err   error
}

func (e RowError) Error() string {
	return fmt.Sprintf("%s row %d: %v", e.Sheet, e.Row, e.Err)
}

// Summary counts what an import created.
type Summary struct {
	Created            map[string]int
	ReusedDestinations int
	Errors             []RowError
}

// ImporterParams holds dependencies for Importer, injected by Fx.
type ImporterParams struct {
	fx.In

	DestinationRepo repository.DestinationRepository
	DestinationUC   usecase.DestinationUsecase
	FoodSpotUC      usecase.FoodSpotUsecase
	StayUC          usecase.StayUsecase
	LocalGemUC      usecase.LocalGemUsecase
	ActivityUC      usecase.ActivityUsecase
	PackageUC       usecase.PackageAdminUsecase
	Logger          *slog.Logger
}

// Importer creates catalog entities through the admin usecases so the
// same validation and defaults apply as for the HTTP API.
type Importer struct {
	destinationRepo repository.DestinationRepository
	destinationUC   usecase.DestinationUsecase
	foodSpotUC      usecase.FoodSpotUsecase
	stayUC          usecase.StayUsecase
	localGemUC      usecase.LocalGemUsecase
	activityUC      usecase.ActivityUsecase
	packageUC       usecase.PackageAdminUsecase
	logger          *slog.Logger
}

// NewImporter is the constructor for Importer
func NewImporter(params ImporterParams) *Importer {
	return &Importer{
		destinationRepo: params.DestinationRepo,
		destinationUC:   params.DestinationUC,
		foodSpotUC:      params.FoodSpotUC,
		stayUC:          params.StayUC,
		localGemUC:      params.LocalGemUC,
		activityUC:      params.ActivityUC,
		packageUC:       params.PackageUC,
		logger:          params.Logger,
	}
}

// run holds the name to id lookups of one import.
// Catalog items are keyed by destination so names only need to be unique per destination.
type run struct {
	summary      *Summary
	destinations map[string]primitive.ObjectID
	stays        map[itemKey]primitive.ObjectID
	foodSpots    map[itemKey]primitive.ObjectID
	localGems    map[itemKey]primitive.ObjectID
	activities   map[itemKey]primitive.ObjectID
}

type itemKey struct {
	destinationID primitive.ObjectID
	name          string
}

// Import reads the workbook and creates its rows. Row failures are collected
// in the summary; only an unreadable workbook fails the call.
func (i *Importer) Import(ctx context.Context, r io.Reader) (*Summary, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "open workbook")
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			i.logger.Warn("Failed to close workbook", slog.Any("error", closeErr))
		}
	}()

	state := &run{
		summary:      &Summary{Created: map[string]int{}},
		destinations: map[string]primitive.ObjectID{},
		stays:        map[itemKey]primitive.ObjectID{},
		foodSpots:    map[itemKey]primitive.ObjectID{},
		localGems:    map[itemKey]primitive.ObjectID{},
		activities:   map[itemKey]primitive.ObjectID{},
	}

	steps := []struct {
		sheet  string
		handle func(context.Context, *run, row) error
	}{
		{SheetDestinations, i.importDestination},
		{SheetFoodSpots, i.importFoodSpot},
		{SheetStays, i.importStay},
		{SheetLocalGems, i.importLocalGem},
		{SheetActivities, i.importActivity},
		{SheetPackages, i.importPackage},
	}

	for _, step := range steps {
		rows, err := readSheet(f, step.sheet)
		if err != nil {
			return nil, err
		}

		for _, rw := range rows {
			if err := ctx.Err(); err != nil {
				return state.summary, errors.WithStack(err)
			}

			err := step.handle(ctx, state, rw)
			if errors.Is(err, errSkipped) {
				continue
			}
			if err != nil {
				rowErr := RowError{Sheet: step.sheet, Row: rw.line, Err: err}
				state.summary.Errors = append(state.summary.Errors, rowErr)
				i.logger.Warn("Skipped seed row", slog.String("sheet", step.sheet), slog.Int("row", rw.line), slog.Any("error", err))

				continue
			}
			state.summary.Created[step.sheet]++
		}
	}

	return state.summary, nil
}

func (i *Importer) importDestination(ctx context.Context, state *run, rw row) error {
	name := rw.text("name")
	if name == "" {
		return errors.New("name is required")
	}

	existing, err := i.destinationRepo.FindByName(ctx, name)
	switch {
	case err == nil:
		state.destinations[name] = existing.ID
		state.summary.ReusedDestinations++

		return errSkipped
	case !errors.Is(err, repository.ErrDestinationNotFound):
		return errors.Wrap(err, "look up destination")
	}

	rating, err := rw.number("rating")
	if err != nil {
		return err
	}

	created, err := i.destinationUC.CreateDestination(ctx, &usecase.CreateDestinationInput{
		Name:        name,
		Category:    entity.Category(rw.text("category")),
		Country:     rw.text("country"),
		Rating:      rating,
		Description: rw.text("description"),
		Images:      rw.list("images"),
	})
	if err != nil {
		return err
	}
	state.destinations[name] = created.ID

	return nil
}

func (i *Importer) importFoodSpot(ctx context.Context, state *run, rw row) error {
	destinationID, err := state.destination(rw)
	if err != nil {
		return err
	}
	price, err := rw.number("price")
	if err != nil {
		return err
	}

	created, err := i.foodSpotUC.CreateFoodSpot(ctx, &usecase.CreateFoodSpotInput{
		Name:          rw.text("name"),
		Type:          rw.text("type"),
		Images:        rw.list("images"),
		Description:   rw.text("description"),
		Price:         price,
		DestinationID: destinationID,
	})
	if err != nil {
		return err
	}
	state.foodSpots[itemKey{destinationID, created.Name}] = created.ID

	return nil
}

func (i *Importer) importStay(ctx context.Context, state *run, rw row) error {
	destinationID, err := state.destination(rw)
	if err != nil {
		return err
	}
	price, err := rw.number("price")
	if err != nil {
		return err
	}
	rating, err := rw.number("rating")
	if err != nil {
		return err
	}

	created, err := i.stayUC.CreateStay(ctx, &usecase.CreateStayInput{
		Name:          rw.text("name"),
		Type:          rw.text("type"),
		Images:        rw.list("images"),
		Description:   rw.text("description"),
		Price:         price,
		Rating:        rating,
		DestinationID: destinationID,
	})
	if err != nil {
		return err
	}
	state.stays[itemKey{destinationID, created.Name}] = created.ID

	return nil
}

func (i *Importer) importLocalGem(ctx context.Context, state *run, rw row) error {
	destinationID, err := state.destination(rw)
	if err != nil {
		return err
	}

	created, err := i.localGemUC.CreateLocalGem(ctx, &usecase.CreateLocalGemInput{
		Name:          rw.text("name"),
		Images:        rw.list("images"),
		Description:   rw.text("description"),
		DestinationID: destinationID,
	})
	if err != nil {
		return err
	}
	state.localGems[itemKey{destinationID, created.Name}] = created.ID

	return nil
}

func (i *Importer) importActivity(ctx context.Context, state *run, rw row) error {
	destinationID, err := state.destination(rw)
	if err != nil {
		return err
	}
	price, err := rw.number("price")
	if err != nil {
		return err
	}
	duration, err := rw.number("durationHours")
	if err != nil {
		return err
	}

	created, err := i.activityUC.CreateActivity(ctx, &usecase.CreateActivityInput{
		Name:          rw.text("name"),
		Type:          rw.text("type"),
		Images:        rw.list("images"),
		Description:   rw.text("description"),
		Price:         price,
		DurationHours: valueOrZero(duration),
		DestinationID: destinationID,
	})
	if err != nil {
		return err
	}
	state.activities[itemKey{destinationID, created.Name}] = created.ID

	return nil
}

func (i *Importer) importPackage(ctx context.Context, state *run, rw row) error {
	destinationID, err := state.destination(rw)
	if err != nil {
		return err
	}

	input := &usecase.CreatePackageInput{
		DestinationID: destinationID,
		Name:          rw.text("name"),
		Description:   rw.text("description"),
	}

	var budget, minBudget, maxBudget *float64
	if budget, err = rw.number("budgetPerDay"); err != nil {
		return err
	}
	if minBudget, err = rw.number("minBudget"); err != nil {
		return err
	}
	if maxBudget, err = rw.number("maxBudget"); err != nil {
		return err
	}
	if budget == nil || minBudget == nil || maxBudget == nil {
		return errors.New("budgetPerDay, minBudget and maxBudget are required")
	}
	input.BudgetPerDay, input.MinBudget, input.MaxBudget = *budget, *minBudget, *maxBudget

	if input.Popularity, err = rw.number("popularity"); err != nil {
		return err
	}
	if input.Rating, err = rw.number("rating"); err != nil {
		return err
	}
	if input.TotalBookings, err = rw.integer("totalBookings"); err != nil {
		return err
	}
	if input.IsActive, err = rw.boolean("isActive"); err != nil {
		return err
	}

	if stay := rw.text("stay"); stay != "" {
		id, ok := state.stays[itemKey{destinationID, stay}]
		if !ok {
			return errors.Errorf("unknown stay %q", stay)
		}
		input.DefaultStayID = &id
	}
	if input.DefaultFoodSpotIDs, err = lookupAll(state.foodSpots, destinationID, rw.list("foodSpots"), "food spot"); err != nil {
		return err
	}
	if input.DefaultLocalGemIDs, err = lookupAll(state.localGems, destinationID, rw.list("localGems"), "local gem"); err != nil {
		return err
	}
	if input.DefaultActivityIDs, err = lookupAll(state.activities, destinationID, rw.list("activities"), "activity"); err != nil {
		return err
	}

	_, err = i.packageUC.CreatePackage(ctx, input)

	return err
}

// destination resolves the row's destination column against the imported destinations.
func (s *run) destination(rw row) (primitive.ObjectID, error) {
	name := rw.text("destination")
	if name == "" {
		return primitive.NilObjectID, errors.New("destination is required")
	}

	id, ok := s.destinations[name]
	if !ok {
		return primitive.NilObjectID, errors.Errorf("unknown destination %q", name)
	}

	return id, nil
}

func lookupAll(index map[itemKey]primitive.ObjectID, destinationID primitive.ObjectID, names []string, kind string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(names))
	for _, name := range names {
		id, ok := index[itemKey{destinationID, name}]
		if !ok {
			return nil, errors.Errorf("unknown %s %q", kind, name)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}
