package impl

import (
	"context"
	"log/slog"
	"strings"

	"trailpack/config"
	deliverycontext "trailpack/internal/delivery/context"
	"trailpack/internal/domain/entity"
	domainerrors "trailpack/internal/domain/errors"
	"trailpack/internal/domain/repository"
	"trailpack/internal/errors"
	"trailpack/internal/usecase"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Keys of DeleteResult.Cascaded.
const (
	cascadeFoodSpots  = "foodSpots"
	cascadeStays      = "stays"
	cascadeLocalGems  = "localGems"
	cascadeActivities = "activities"
	cascadePackages   = "packages"
)

type destinationService struct {
	destinationRepo repository.DestinationRepository
	foodSpotRepo    repository.FoodSpotRepository
	stayRepo        repository.StayRepository
	localGemRepo    repository.LocalGemRepository
	activityRepo    repository.ActivityRepository
	packageRepo     repository.PackageRepository
	policy          entity.DeletePolicy
	logger          *slog.Logger
}

// NewDestinationService creates a new destination service instance
func NewDestinationService(
	destinationRepo repository.DestinationRepository,
	foodSpotRepo repository.FoodSpotRepository,
	stayRepo repository.StayRepository,
	localGemRepo repository.LocalGemRepository,
	activityRepo repository.ActivityRepository,
	packageRepo repository.PackageRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DestinationUsecase {
	return &destinationService{
		destinationRepo: destinationRepo,
		foodSpotRepo:    foodSpotRepo,
		stayRepo:        stayRepo,
		localGemRepo:    localGemRepo,
		activityRepo:    activityRepo,
		packageRepo:     packageRepo,
		policy:          entity.ParseDeletePolicy(cfg.Catalog.DeletePolicy),
		logger:          logger,
	}
}

// CreateDestination validates and stores a new destination
func (s *destinationService) CreateDestination(ctx context.Context, input *usecase.CreateDestinationInput) (*entity.Destination, error) {
	if err := firstError(
		requireName(input.Name),
		validCategory(input.Category),
		nonNegative("rating", input.Rating),
	); err != nil {
		return nil, err
	}

	country := strings.TrimSpace(input.Country)
	if country == "" {
		country = entity.DefaultCountry
	}

	if err := s.ensureNameFree(ctx, input.Name, primitive.NilObjectID); err != nil {
		return nil, err
	}

	destination := &entity.Destination{
		Name:        input.Name,
		Category:    input.Category,
		Country:     country,
		Rating:      valueOr(input.Rating, 0),
		Description: input.Description,
		Images:      imagesOrEmpty(input.Images),
	}

	if err := s.destinationRepo.Create(ctx, destination); err != nil {
		return nil, translateRepoError(err, repository.ErrDestinationNameTaken, domainerrors.ErrDestinationAlreadyExists, "failed to create destination")
	}

	return destination, nil
}

// UpdateDestination merges the supplied fields into an existing destination
func (s *destinationService) UpdateDestination(ctx context.Context, id primitive.ObjectID, input *usecase.UpdateDestinationInput) (*entity.Destination, error) {
	if err := firstError(optionalName(input.Name), nonNegative("rating", input.Rating)); err != nil {
		return nil, err
	}
	if input.Category != nil {
		if err := validCategory(*input.Category); err != nil {
			return nil, err
		}
	}

	if input.Name != nil {
		if err := s.ensureNameFree(ctx, *input.Name, id); err != nil {
			return nil, err
		}
	}

	patch := &entity.DestinationPatch{
		Name:        input.Name,
		Category:    input.Category,
		Country:     input.Country,
		Rating:      input.Rating,
		Description: input.Description,
		Images:      input.Images,
	}

	destination, err := s.destinationRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrDestinationNameTaken) {
			return nil, domainerrors.ErrDestinationAlreadyExists
		}

		return nil, translateRepoError(err, repository.ErrDestinationNotFound, domainerrors.ErrDestinationNotFound, "failed to update destination")
	}

	return destination, nil
}

// DeleteDestination removes a destination. Under the cascade policy the
// dependents are removed afterwards; a failure there leaves the destination deleted.
func (s *destinationService) DeleteDestination(ctx context.Context, id primitive.ObjectID) (*usecase.DeleteResult, error) {
	if err := s.destinationRepo.Delete(ctx, id); err != nil {
		return nil, translateRepoError(err, repository.ErrDestinationNotFound, domainerrors.ErrDestinationNotFound, "failed to delete destination")
	}

	result := &usecase.DeleteResult{Policy: s.policy}
	if s.policy != entity.DeletePolicyCascade {
		return result, nil
	}

	steps := []struct {
		key string
		fn  func(context.Context, primitive.ObjectID) (int64, error)
	}{
		{cascadeFoodSpots, s.foodSpotRepo.DeleteByDestination},
		{cascadeStays, s.stayRepo.DeleteByDestination},
		{cascadeLocalGems, s.localGemRepo.DeleteByDestination},
		{cascadeActivities, s.activityRepo.DeleteByDestination},
		{cascadePackages, s.packageRepo.DeleteByDestination},
	}

	result.Cascaded = make(map[string]int64, len(steps))
	for _, step := range steps {
		removed, err := step.fn(ctx, id)
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to cascade delete "+step.key)
		}
		result.Cascaded[step.key] = removed
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Destination deleted with dependents",
		slog.String("destination_id", id.Hex()),
		slog.Any("cascaded", result.Cascaded),
	)

	return result, nil
}

func validCategory(category entity.Category) error {
	if !category.IsValid() {
		return invalid("category must be one of: " + strings.Join(entity.CategoryNames(), ", "))
	}

	return nil
}

// ensureNameFree rejects a name held by any destination other than self.
// The unique name index still catches concurrent writers.
func (s *destinationService) ensureNameFree(ctx context.Context, name string, self primitive.ObjectID) error {
	existing, err := s.destinationRepo.FindByName(ctx, name)
	switch {
	case errors.Is(err, repository.ErrDestinationNotFound):
		return nil
	case err != nil:
		return domainerrors.NewDatabaseExecuteError(err, "failed to look up destination name")
	case existing.ID != self:
		return domainerrors.ErrDestinationAlreadyExists
	}

	return nil
}
