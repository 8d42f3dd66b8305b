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

// localGemRepository implements the repository.LocalGemRepository interface.
type localGemRepository struct {
	db *gorm.DB
}

// NewLocalGemRepository is the constructor for localGemRepository.
func NewLocalGemRepository(db *gorm.DB) repository.LocalGemRepository {
	return &localGemRepository{db: db}
}

func (repo *localGemRepository) Create(ctx context.Context, gem *entity.LocalGem) error {
	stamp(&gem.ID, &gem.CreatedAt, &gem.UpdatedAt)

	if err := repo.db.WithContext(ctx).Create(fromLocalGemDomain(gem)).Error; err != nil {
		return errors.Wrap(err, "failed to create local gem")
	}

	return nil
}

func (repo *localGemRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.LocalGem, error) {
	rows, err := findMany[model.LocalGemModel](ctx, repo.db, ids)
	if err != nil {
		return nil, err
	}

	return mapRows(rows, toLocalGemDomain), nil
}

func (repo *localGemRepository) Update(ctx context.Context, id primitive.ObjectID, patch *entity.LocalGemPatch) (*entity.LocalGem, error) {
	cols := columns{}
	setColumn(cols, "name", patch.Name)
	setImagesColumn(cols, patch.Images)
	setColumn(cols, "description", patch.Description)
	setIDColumn(cols, "destination_id", patch.DestinationID)

	m, err := updateOne[model.LocalGemModel](ctx, repo.db, id, cols, repository.ErrLocalGemNotFound)
	if err != nil {
		return nil, err
	}

	return toLocalGemDomain(m), nil
}

func (repo *localGemRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne[model.LocalGemModel](ctx, repo.db, id, repository.ErrLocalGemNotFound)
}

func (repo *localGemRepository) DeleteByDestination(ctx context.Context, destinationID primitive.ObjectID) (int64, error) {
	return deleteByDestination[model.LocalGemModel](ctx, repo.db, destinationID)
}
