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

// foodSpotRepository implements the repository.FoodSpotRepository interface.
type foodSpotRepository struct {
	db *gorm.DB
}

// NewFoodSpotRepository is the constructor for foodSpotRepository.
func NewFoodSpotRepository(db *gorm.DB) repository.FoodSpotRepository {
	return &foodSpotRepository{db: db}
}

func (repo *foodSpotRepository) Create(ctx context.Context, foodSpot *entity.FoodSpot) error {
	stamp(&foodSpot.ID, &foodSpot.CreatedAt, &foodSpot.UpdatedAt)

	if err := repo.db.WithContext(ctx).Create(fromFoodSpotDomain(foodSpot)).Error; err != nil {
		return errors.Wrap(err, "failed to create food spot")
	}

	return nil
}

func (repo *foodSpotRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.FoodSpot, error) {
	rows, err := findMany[model.FoodSpotModel](ctx, repo.db, ids)
	if err != nil {
		return nil, err
	}

	return mapRows(rows, toFoodSpotDomain), nil
}

func (repo *foodSpotRepository) Update(ctx context.Context, id primitive.ObjectID, patch *entity.FoodSpotPatch) (*entity.FoodSpot, error) {
	cols := columns{}
	setColumn(cols, "name", patch.Name)
	setColumn(cols, "type", patch.Type)
	setImagesColumn(cols, patch.Images)
	setColumn(cols, "description", patch.Description)
	setColumn(cols, "price", patch.Price)
	setIDColumn(cols, "destination_id", patch.DestinationID)

	m, err := updateOne[model.FoodSpotModel](ctx, repo.db, id, cols, repository.ErrFoodSpotNotFound)
	if err != nil {
		return nil, err
	}

	return toFoodSpotDomain(m), nil
}

func (repo *foodSpotRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne[model.FoodSpotModel](ctx, repo.db, id, repository.ErrFoodSpotNotFound)
}

func (repo *foodSpotRepository) DeleteByDestination(ctx context.Context, destinationID primitive.ObjectID) (int64, error) {
	return deleteByDestination[model.FoodSpotModel](ctx, repo.db, destinationID)
}
