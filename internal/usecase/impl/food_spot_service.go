package impl

import (
	"context"

	"trailpack/internal/domain/entity"
	domainerrors "trailpack/internal/domain/errors"
	"trailpack/internal/domain/repository"
	"trailpack/internal/usecase"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type foodSpotService struct {
	foodSpotRepo repository.FoodSpotRepository
}

// NewFoodSpotService creates a new food spot service instance
func NewFoodSpotService(foodSpotRepo repository.FoodSpotRepository) usecase.FoodSpotUsecase {
	return &foodSpotService{foodSpotRepo: foodSpotRepo}
}

// CreateFoodSpot validates and stores a new food spot.
// The referenced destination is not looked up.
func (s *foodSpotService) CreateFoodSpot(ctx context.Context, input *usecase.CreateFoodSpotInput) (*entity.FoodSpot, error) {
	if err := firstError(
		requireName(input.Name),
		requireDestination(input.DestinationID),
		nonNegative("price", input.Price),
	); err != nil {
		return nil, err
	}

	item := &entity.FoodSpot{
		Name:          input.Name,
		Type:          input.Type,
		Images:        imagesOrEmpty(input.Images),
		Description:   input.Description,
		Price:         valueOr(input.Price, 0),
		DestinationID: input.DestinationID,
	}

	if err := s.foodSpotRepo.Create(ctx, item); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create food spot")
	}

	return item, nil
}

// UpdateFoodSpot merges the supplied fields into an existing food spot
func (s *foodSpotService) UpdateFoodSpot(ctx context.Context, id primitive.ObjectID, input *usecase.UpdateFoodSpotInput) (*entity.FoodSpot, error) {
	if err := firstError(
		optionalName(input.Name),
		optionalDestination(input.DestinationID),
		nonNegative("price", input.Price),
	); err != nil {
		return nil, err
	}

	item, err := s.foodSpotRepo.Update(ctx, id, &entity.FoodSpotPatch{
		Name:          input.Name,
		Type:          input.Type,
		Images:        input.Images,
		Description:   input.Description,
		Price:         input.Price,
		DestinationID: input.DestinationID,
	})
	if err != nil {
		return nil, translateRepoError(err, repository.ErrFoodSpotNotFound, domainerrors.ErrFoodSpotNotFound, "failed to update food spot")
	}

	return item, nil
}

// DeleteFoodSpot removes a food spot. Packages that reference it are left as they are.
func (s *foodSpotService) DeleteFoodSpot(ctx context.Context, id primitive.ObjectID) error {
	if err := s.foodSpotRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, repository.ErrFoodSpotNotFound, domainerrors.ErrFoodSpotNotFound, "failed to delete food spot")
	}

	return nil
}
