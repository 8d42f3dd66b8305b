package impl

import (
	"context"

	"trailpack/internal/domain/entity"
	domainerrors "trailpack/internal/domain/errors"
	"trailpack/internal/domain/repository"
	"trailpack/internal/usecase"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stayService struct {
	stayRepo repository.StayRepository
}

// NewStayService creates a new stay service instance
func NewStayService(stayRepo repository.StayRepository) usecase.StayUsecase {
	return &stayService{stayRepo: stayRepo}
}

// CreateStay validates and stores a new stay.
// The referenced destination is not looked up.
func (s *stayService) CreateStay(ctx context.Context, input *usecase.CreateStayInput) (*entity.Stay, error) {
	if err := firstError(
		requireName(input.Name),
		requireDestination(input.DestinationID),
		nonNegative("price", input.Price),
		ratingInRange(input.Rating),
	); err != nil {
		return nil, err
	}

	item := &entity.Stay{
		Name:          input.Name,
		Type:          input.Type,
		Images:        imagesOrEmpty(input.Images),
		Description:   input.Description,
		Price:         valueOr(input.Price, 0),
		Rating:        valueOr(input.Rating, 0),
		DestinationID: input.DestinationID,
	}

	if err := s.stayRepo.Create(ctx, item); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create stay")
	}

	return item, nil
}

// UpdateStay merges the supplied fields into an existing stay
func (s *stayService) UpdateStay(ctx context.Context, id primitive.ObjectID, input *usecase.UpdateStayInput) (*entity.Stay, error) {
	if err := firstError(
		optionalName(input.Name),
		optionalDestination(input.DestinationID),
		nonNegative("price", input.Price),
		ratingInRange(input.Rating),
	); err != nil {
		return nil, err
	}

	item, err := s.stayRepo.Update(ctx, id, &entity.StayPatch{
		Name:          input.Name,
		Type:          input.Type,
		Images:        input.Images,
		Description:   input.Description,
		Price:         input.Price,
		Rating:        input.Rating,
		DestinationID: input.DestinationID,
	})
	if err != nil {
		return nil, translateRepoError(err, repository.ErrStayNotFound, domainerrors.ErrStayNotFound, "failed to update stay")
	}

	return item, nil
}

// DeleteStay removes a stay. Packages that reference it are left as they are.
func (s *stayService) DeleteStay(ctx context.Context, id primitive.ObjectID) error {
	if err := s.stayRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, repository.ErrStayNotFound, domainerrors.ErrStayNotFound, "failed to delete stay")
	}

	return nil
}
