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

// activityRepository implements the repository.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (repo *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	stamp(&activity.ID, &activity.CreatedAt, &activity.UpdatedAt)

	if err := repo.db.WithContext(ctx).Create(fromActivityDomain(activity)).Error; err != nil {
		return errors.Wrap(err, "failed to create activity")
	}

	return nil
}

func (repo *activityRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Activity, error) {
	rows, err := findMany[model.ActivityModel](ctx, repo.db, ids)
	if err != nil {
		return nil, err
	}

	return mapRows(rows, toActivityDomain), nil
}

func (repo *activityRepository) Update(ctx context.Context, id primitive.ObjectID, patch *entity.ActivityPatch) (*entity.Activity, error) {
	cols := columns{}
	setColumn(cols, "name", patch.Name)
	setColumn(cols, "type", patch.Type)
	setImagesColumn(cols, patch.Images)
	setColumn(cols, "description", patch.Description)
	setColumn(cols, "price", patch.Price)
	setColumn(cols, "duration_hours", patch.DurationHours)
	setIDColumn(cols, "destination_id", patch.DestinationID)

	m, err := updateOne[model.ActivityModel](ctx, repo.db, id, cols, repository.ErrActivityNotFound)
	if err != nil {
		return nil, err
	}

	return toActivityDomain(m), nil
}

func (repo *activityRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne[model.ActivityModel](ctx, repo.db, id, repository.ErrActivityNotFound)
}

func (repo *activityRepository) DeleteByDestination(ctx context.Context, destinationID primitive.ObjectID) (int64, error) {
	return deleteByDestination[model.ActivityModel](ctx, repo.db, destinationID)
}
