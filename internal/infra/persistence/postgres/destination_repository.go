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

// destinationRepository implements the repository.DestinationRepository interface.
type destinationRepository struct {
	db *gorm.DB
}

// NewDestinationRepository is the constructor for destinationRepository.
func NewDestinationRepository(db *gorm.DB) repository.DestinationRepository {
	return &destinationRepository{db: db}
}

// Create persists a new destination. A name clash maps to ErrDestinationNameTaken.
func (repo *destinationRepository) Create(ctx context.Context, destination *entity.Destination) error {
	stamp(&destination.ID, &destination.CreatedAt, &destination.UpdatedAt)

	if err := repo.db.WithContext(ctx).Create(fromDestinationDomain(destination)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDestinationNameTaken
		}

		return errors.Wrap(err, "failed to create destination")
	}

	return nil
}

func (repo *destinationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Destination, error) {
	m, err := findOne[model.DestinationModel](ctx, repo.db, id, repository.ErrDestinationNotFound)
	if err != nil {
		return nil, err
	}

	return toDestinationDomain(m), nil
}

func (repo *destinationRepository) FindByName(ctx context.Context, name string) (*entity.Destination, error) {
	var m model.DestinationModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDestinationNotFound
		}

		return nil, errors.Wrap(err, "failed to find destination by name")
	}

	return toDestinationDomain(&m), nil
}

func (repo *destinationRepository) Update(ctx context.Context, id primitive.ObjectID, patch *entity.DestinationPatch) (*entity.Destination, error) {
	cols := columns{}
	setColumn(cols, "name", patch.Name)
	if patch.Category != nil {
		cols["category"] = patch.Category.String()
	}
	setColumn(cols, "country", patch.Country)
	setColumn(cols, "rating", patch.Rating)
	setColumn(cols, "description", patch.Description)
	setImagesColumn(cols, patch.Images)

	m, err := updateOne[model.DestinationModel](ctx, repo.db, id, cols, repository.ErrDestinationNotFound)
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, repository.ErrDestinationNameTaken
		}

		return nil, err
	}

	return toDestinationDomain(m), nil
}

func (repo *destinationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne[model.DestinationModel](ctx, repo.db, id, repository.ErrDestinationNotFound)
}
