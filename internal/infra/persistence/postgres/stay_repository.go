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

// stayRepository implements the repository.StayRepository interface.
type stayRepository struct {
	db *gorm.DB
}

// NewStayRepository is the constructor for stayRepository.
func NewStayRepository(db *gorm.DB) repository.StayRepository {
	return &stayRepository{db: db}
}

func (repo *stayRepository) Create(ctx context.Context, stay *entity.Stay) error {
	stamp(&stay.ID, &stay.CreatedAt, &stay.UpdatedAt)

	if err := repo.db.WithContext(ctx).Create(fromStayDomain(stay)).Error; err != nil {
		return errors.Wrap(err, "failed to create stay")
	}

	return nil
}

func (repo *stayRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Stay, error) {
	m, err := findOne[model.StayModel](ctx, repo.db, id, repository.ErrStayNotFound)
	if err != nil {
		return nil, err
	}

	return toStayDomain(m), nil
}

func (repo *stayRepository) Update(ctx context.Context, id primitive.ObjectID, patch *entity.StayPatch) (*entity.Stay, error) {
	cols := columns{}
	setColumn(cols, "name", patch.Name)
	setColumn(cols, "type", patch.Type)
	setImagesColumn(cols, patch.Images)
	setColumn(cols, "description", patch.Description)
	setColumn(cols, "price", patch.Price)
	setColumn(cols, "rating", patch.Rating)
	setIDColumn(cols, "destination_id", patch.DestinationID)

	m, err := updateOne[model.StayModel](ctx, repo.db, id, cols, repository.ErrStayNotFound)
	if err != nil {
		return nil, err
	}

	return toStayDomain(m), nil
}

func (repo *stayRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne[model.StayModel](ctx, repo.db, id, repository.ErrStayNotFound)
}

func (repo *stayRepository) DeleteByDestination(ctx context.Context, destinationID primitive.ObjectID) (int64, error) {
	return deleteByDestination[model.StayModel](ctx, repo.db, destinationID)
}
