package impl

import (
	"context"

	"trailpack/internal/domain/entity"
	domainerrors "trailpack/internal/domain/errors"
	"trailpack/internal/domain/repository"
	"trailpack/internal/usecase"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type activityService struct {
	activityRepo repository.ActivityRepository
}

// NewActivityService creates a new activity service instance
func NewActivityService(activityRepo repository.ActivityRepository) usecase.ActivityUsecase {
	return &activityService{activityRepo: activityRepo}
}

// CreateActivity validates and stores a new activity.
// The referenced destination is not looked up.
func (s *activityService) CreateActivity(ctx context.Context, input *usecase.CreateActivityInput) (*entity.Activity, error) {
	if err := firstError(
		requireName(input.Name),
		requireDestination(input.DestinationID),
		nonNegative("price", input.Price),
		nonNegative("durationHours", &input.DurationHours),
	); err != nil {
		return nil, err
	}

	item := &entity.Activity{
		Name:          input.Name,
		Type:          input.Type,
		Images:        imagesOrEmpty(input.Images),
		Description:   input.Description,
		Price:         valueOr(input.Price, 0),
		DurationHours: input.DurationHours,
		DestinationID: input.DestinationID,
	}

	if err := s.activityRepo.Create(ctx, item); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create activity")
	}

	return item, nil
}

// UpdateActivity merges the supplied fields into an existing activity
func (s *activityService) UpdateActivity(ctx context.Context, id primitive.ObjectID, input *usecase.UpdateActivityInput) (*entity.Activity, error) {
	if err := firstError(
		optionalName(input.Name),
		optionalDestination(input.DestinationID),
		nonNegative("price", input.Price),
		nonNegative("durationHours", input.DurationHours),
	); err != nil {
		return nil, err
	}

	item, err := s.activityRepo.Update(ctx, id, &entity.ActivityPatch{
		Name:          input.Name,
		Type:          input.Type,
		Images:        input.Images,
		Description:   input.Description,
		Price:         input.Price,
		DurationHours: input.DurationHours,
		DestinationID: input.DestinationID,
	})
	if err != nil {
		return nil, translateRepoError(err, repository.ErrActivityNotFound, domainerrors.ErrActivityNotFound, "failed to update activity")
	}

	return item, nil
}

// DeleteActivity removes a activity. Packages that reference it are left as they are.
func (s *activityService) DeleteActivity(ctx context.Context, id primitive.ObjectID) error {
	if err := s.activityRepo.Delete(ctx, id); err != nil {
		return translateRepoError(err, repository.ErrActivityNotFound, domainerrors.ErrActivityNotFound, "failed to delete activity")
	}

	return nil
}
