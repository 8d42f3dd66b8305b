package impl

import (
	"context"

	"trailpack/internal/domain/entity"
	domainerrors "trailpack/internal/domain/errors"
	"trailpack/internal/domain/repository"
	"trailpack/internal/usecase"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type localGemService struct {
	localGemRepo repository.LocalGemRepository
}

// NewLocalGemService creates a new local gem service instance
func NewLocalGemService(localGemRepo repository.LocalGemRepository) usecase.LocalGemUsecase {
	return &localGemService{localGemRepo: localGemRepo}
}

// CreateLocalGem validates and stores a new local gem.
// The referenced destination is not looked up.
func (s *localGemService) CreateLocalGem(ctx context.Context, input *usecase.CreateLocalGemInput) (*entity.LocalGem, error) {
	if err := firstError(
		requireName(input.Name),
		requireDestination(input.DestinationID),
	); err != nil {
		return nil, err
	}

	item := &entity.LocalGem{
		Name:          input.Name,
		Images:        imagesOrEmpty(input.Images),
		Description:   input.Description,
		DestinationID: input.DestinationID,
	}

	if err := s.localGemRepo.Create(ctx, item); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create local gem")
	}

	return item, nil
}

// UpdateLocalGem merges the supplied fields into an existing local gem
func (s *localGemService) UpdateLocalGem(ctx context.Context, id primitive.ObjectID, input *usecase.UpdateLocalGemInput) (*entity.LocalGem, error) {
	if err := firstError(
		optionalName(input.Name),
		optionalDestination(input.DestinationID),
	); err != nil {
		return nil, err
	}

	item, err := s.localGemRepo.Update(ctx, id, &entity.LocalGemPatch{
		Name:          input.Name,
		Images:        input.Images,
		Description:   input.Description,
		DestinationID: input.DestinationID,
	})
	if err != nil {
		return nil, translateRepoError(err, repository.ErrLocalGemNotFound, domainerrors.ErrLocalGemNotFound, "failed to update local gem")
	}

	return item, nil
}

// DeleteLocalGem removes a local gem. Packages that reference it are left as they are.
func (s *localGemService) DeleteLocalGem(ctx context.Context, id primitive.ObjectID) error {
	if err := s.localGemRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, repository.ErrLocalGemNotFound, domainerrors.ErrLocalGemNotFound, "failed to delete local gem")
	}

	return nil
}
