package impl

import (
	"context"

	"trailpack/config"
	"trailpack/internal/domain/entity"
	domainerrors "trailpack/internal/domain/errors"
	"trailpack/internal/domain/repository"
	"trailpack/internal/usecase"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type packageAdminService struct {
	packageRepo           repository.PackageRepository
	enforceBudgetOrdering bool
}

// NewPackageAdminService creates a new package management service instance
func NewPackageAdminService(packageRepo repository.PackageRepository, cfg *config.Config) usecase.PackageAdminUsecase {
	return &packageAdminService{
		packageRepo:           packageRepo,
		enforceBudgetOrdering: cfg.Catalog.EnforceBudgetOrdering,
	}
}

// CreatePackage validates and stores a new package. Reference lists default to empty
// and new packages are active unless stated otherwise.
func (s *packageAdminService) CreatePackage(ctx context.Context, input *usecase.CreatePackageInput) (*entity.Package, error) {
	if err := firstError(
		requireName(input.Name),
		requireDestination(input.DestinationID),
		nonNegative("budgetPerDay", &input.BudgetPerDay),
		nonNegative("minBudget", &input.MinBudget),
		nonNegative("maxBudget", &input.MaxBudget),
		nonNegative("popularity", input.Popularity),
		ratingInRange(input.Rating),
	); err != nil {
		return nil, err
	}
	if input.TotalBookings != nil && *input.TotalBookings < 0 {
		return nil, invalid("totalBookings must not be negative")
	}

	pkg := &entity.Package{
		DestinationID:      input.DestinationID,
		Name:               input.Name,
		Description:        input.Description,
		BudgetPerDay:       input.BudgetPerDay,
		MinBudget:          input.MinBudget,
		MaxBudget:          input.MaxBudget,
		DefaultStayID:      input.DefaultStayID,
		DefaultFoodSpotIDs: idsOrEmpty(input.DefaultFoodSpotIDs),
		DefaultLocalGemIDs: idsOrEmpty(input.DefaultLocalGemIDs),
		DefaultActivityIDs: idsOrEmpty(input.DefaultActivityIDs),
		Popularity:         valueOr(input.Popularity, 0),
		Rating:             valueOr(input.Rating, 0),
		TotalBookings:      valueOr(input.TotalBookings, 0),
		IsActive:           valueOr(input.IsActive, true),
	}

	if s.enforceBudgetOrdering && !pkg.BudgetInRange() {
		return nil, domainerrors.ErrBudgetOutOfRange
	}

	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create package")
	}

	return pkg, nil
}

// UpdatePackage merges the supplied fields into an existing package.
// With budget ordering enforced the merged budgets are checked before writing.
func (s *packageAdminService) UpdatePackage(ctx context.Context, id primitive.ObjectID, input *usecase.UpdatePackageInput) (*entity.Package, error) {
	if err := firstError(
		optionalName(input.Name),
		optionalDestination(input.DestinationID),
		nonNegative("budgetPerDay", input.BudgetPerDay),
		nonNegative("minBudget", input.MinBudget),
		nonNegative("maxBudget", input.MaxBudget),
		nonNegative("popularity", input.Popularity),
		ratingInRange(input.Rating),
	); err != nil {
		return nil, err
	}
	if input.TotalBookings != nil && *input.TotalBookings < 0 {
		return nil, invalid("totalBookings must not be negative")
	}

	touchesBudget := input.BudgetPerDay != nil || input.MinBudget != nil || input.MaxBudget != nil
	if s.enforceBudgetOrdering && touchesBudget {
		current, err := s.packageRepo.FindByID(ctx, id)
		if err != nil {
			return nil, translateRepoError(err, repository.ErrPackageNotFound, domainerrors.ErrPackageNotFound, "failed to find package")
		}

		merged := entity.Package{
			BudgetPerDay: valueOr(input.BudgetPerDay, current.BudgetPerDay),
			MinBudget:    valueOr(input.MinBudget, current.MinBudget),
			MaxBudget:    valueOr(input.MaxBudget, current.MaxBudget),
		}
		if !merged.BudgetInRange() {
			return nil, domainerrors.ErrBudgetOutOfRange
		}
	}

	pkg, err := s.packageRepo.Update(ctx, id, &entity.PackagePatch{
		DestinationID:      input.DestinationID,
		Name:               input.Name,
		Description:        input.Description,
		BudgetPerDay:       input.BudgetPerDay,
		MinBudget:          input.MinBudget,
		MaxBudget:          input.MaxBudget,
		DefaultStayID:      input.DefaultStayID,
		ClearDefaultStay:   input.ClearDefaultStay,
		DefaultFoodSpotIDs: input.DefaultFoodSpotIDs,
		DefaultLocalGemIDs: input.DefaultLocalGemIDs,
		DefaultActivityIDs: input.DefaultActivityIDs,
		Popularity:         input.Popularity,
		Rating:             input.Rating,
		TotalBookings:      input.TotalBookings,
		IsActive:           input.IsActive,
	})
	if err != nil {
		return nil, translateRepoError(err, repository.ErrPackageNotFound, domainerrors.ErrPackageNotFound, "failed to update package")
	}

	return pkg, nil
}

// DeletePackage removes a package
func (s *packageAdminService) DeletePackage(ctx context.Context, id primitive.ObjectID) error {
	if err := s.packageRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, repository.ErrPackageNotFound, domainerrors.ErrPackageNotFound, "failed to delete package")
	}

	return nil
}

func idsOrEmpty(ids []primitive.ObjectID) []primitive.ObjectID {
	if ids == nil {
		return []primitive.ObjectID{}
	}

	return ids
}
