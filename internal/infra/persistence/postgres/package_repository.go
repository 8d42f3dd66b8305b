package postgres

import (
	"context"

	"trailpack/internal/domain/entity"
	"trailpack/internal/domain/repository"
	"trailpack/internal/errors"
	"trailpack/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// packageRepository implements the repository.PackageRepository interface.
type packageRepository struct {
	db *gorm.DB
}

// NewPackageRepository is the constructor for packageRepository.
func NewPackageRepository(db *gorm.DB) repository.PackageRepository {
	return &packageRepository{db: db}
}

func (repo *packageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	stamp(&pkg.ID, &pkg.CreatedAt, &pkg.UpdatedAt)

	if err := repo.db.WithContext(ctx).Create(fromPackageDomain(pkg)).Error; err != nil {
		return errors.Wrap(err, "failed to create package")
	}

	return nil
}

func (repo *packageRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Package, error) {
	m, err := findOne[model.PackageModel](ctx, repo.db, id, repository.ErrPackageNotFound)
	if err != nil {
		return nil, err
	}

	return toPackageDomain(m), nil
}

// FindActiveByDestination lists active packages of a destination within the
// optional budget bounds. Ties in the sort key are broken by id.
func (repo *packageRepository) FindActiveByDestination(ctx context.Context, query *entity.PackageQuery) ([]*entity.Package, error) {
	tx := repo.db.WithContext(ctx).
		Where("destination_id = ? AND is_active = ?", query.DestinationID.Hex(), true)

	if query.MinBudget != nil {
		tx = tx.Where("budget_per_day >= ?", *query.MinBudget)
	}
	if query.MaxBudget != nil {
		tx = tx.Where("budget_per_day <= ?", *query.MaxBudget)
	}

	var rows []*model.PackageModel
	if err := tx.Order(packageOrder(query.SortBy)).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list packages by destination")
	}

	return mapRows(rows, toPackageDomain), nil
}

func packageOrder(mode entity.SortMode) string {
	switch mode {
	case entity.SortPriceDesc:
		return "budget_per_day DESC"
	case entity.SortPopularity:
		return "popularity DESC"
	case entity.SortRating:
		return "rating DESC"
	default:
		return "budget_per_day ASC"
	}
}

func (repo *packageRepository) Update(ctx context.Context, id primitive.ObjectID, patch *entity.PackagePatch) (*entity.Package, error) {
	cols := columns{}
	setIDColumn(cols, "destination_id", patch.DestinationID)
	setColumn(cols, "name", patch.Name)
	setColumn(cols, "description", patch.Description)
	setColumn(cols, "budget_per_day", patch.BudgetPerDay)
	setColumn(cols, "min_budget", patch.MinBudget)
	setColumn(cols, "max_budget", patch.MaxBudget)
	switch {
	case patch.ClearDefaultStay:
		cols["default_stay_id"] = nil
	case patch.DefaultStayID != nil:
		setIDColumn(cols, "default_stay_id", patch.DefaultStayID)
	}
	setIDsColumn(cols, "default_food_spot_ids", patch.DefaultFoodSpotIDs)
	setIDsColumn(cols, "default_local_gem_ids", patch.DefaultLocalGemIDs)
	setIDsColumn(cols, "default_activity_ids", patch.DefaultActivityIDs)
	setColumn(cols, "popularity", patch.Popularity)
	setColumn(cols, "rating", patch.Rating)
	setColumn(cols, "total_bookings", patch.TotalBookings)
	setColumn(cols, "is_active", patch.IsActive)

	m, err := updateOne[model.PackageModel](ctx, repo.db, id, cols, repository.ErrPackageNotFound)
	if err != nil {
		return nil, err
	}

	return toPackageDomain(m), nil
}

func (repo *packageRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne[model.PackageModel](ctx, repo.db, id, repository.ErrPackageNotFound)
}

func (repo *packageRepository) DeleteByDestination(ctx context.Context, destinationID primitive.ObjectID) (int64, error) {
	return deleteByDestination[model.PackageModel](ctx, repo.db, destinationID)
}
