package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "trailpack/internal/delivery/context"
	"trailpack/internal/domain/entity"
	domainerrors "trailpack/internal/domain/errors"
	"trailpack/internal/domain/repository"
	"trailpack/internal/domain/service"
	"trailpack/internal/errors"
	"trailpack/internal/usecase"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

type packageQueryService struct {
	packageRepo     repository.PackageRepository
	destinationRepo repository.DestinationRepository
	stayRepo        repository.StayRepository
	foodSpotRepo    repository.FoodSpotRepository
	localGemRepo    repository.LocalGemRepository
	activityRepo    repository.ActivityRepository
	qrCodeService   service.QRCodeService
	logger          *slog.Logger
}

// NewPackageQueryService creates the public package read service
func NewPackageQueryService(
	packageRepo repository.PackageRepository,
	destinationRepo repository.DestinationRepository,
	stayRepo repository.StayRepository,
	foodSpotRepo repository.FoodSpotRepository,
	localGemRepo repository.LocalGemRepository,
	activityRepo repository.ActivityRepository,
	qrCodeService service.QRCodeService,
	logger *slog.Logger,
) usecase.PackageQueryUsecase {
	return &packageQueryService{
		packageRepo:     packageRepo,
		destinationRepo: destinationRepo,
		stayRepo:        stayRepo,
		foodSpotRepo:    foodSpotRepo,
		localGemRepo:    localGemRepo,
		activityRepo:    activityRepo,
		qrCodeService:   qrCodeService,
		logger:          logger,
	}
}

// ListPackagesByDestination returns the active packages of an existing destination
func (s *packageQueryService) ListPackagesByDestination(ctx context.Context, input *usecase.ListPackagesInput) ([]*entity.Package, error) {
	minBudget, err := parseBudget("minBudget", input.MinBudget)
	if err != nil {
		return nil, err
	}
	maxBudget, err := parseBudget("maxBudget", input.MaxBudget)
	if err != nil {
		return nil, err
	}

	if _, err := s.destinationRepo.FindByID(ctx, input.DestinationID); err != nil {
		return nil, translateRepoError(err, repository.ErrDestinationNotFound, domainerrors.ErrDestinationNotFound, "failed to find destination")
	}

	packages, err := s.packageRepo.FindActiveByDestination(ctx, &entity.PackageQuery{
		DestinationID: input.DestinationID,
		MinBudget:     minBudget,
		MaxBudget:     maxBudget,
		SortBy:        entity.ParseSortMode(input.SortBy),
	})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list packages")
	}

	return packages, nil
}

// GetPackageDetail loads a package and resolves its references concurrently.
// The first failing lookup cancels the others and fails the call.
func (s *packageQueryService) GetPackageDetail(ctx context.Context, id primitive.ObjectID) (*entity.PackageDetail, error) {
	pkg, err := s.packageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, repository.ErrPackageNotFound, domainerrors.ErrPackageNotFound, "failed to find package")
	}

	detail := &entity.PackageDetail{Package: pkg}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if pkg.DefaultStayID == nil {
			return nil
		}
		stay, err := s.stayRepo.FindByID(gctx, *pkg.DefaultStayID)
		if errors.Is(err, repository.ErrStayNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "resolve default stay")
		}
		detail.DefaultStay = stay

		return nil
	})

	g.Go(func() error {
		spots, err := resolveInOrder(gctx, pkg.DefaultFoodSpotIDs, s.foodSpotRepo.FindByIDs, func(f *entity.FoodSpot) primitive.ObjectID { return f.ID })
		detail.DefaultFoodSpots = spots

		return errors.Wrap(err, "resolve default food spots")
	})

	g.Go(func() error {
		gems, err := resolveInOrder(gctx, pkg.DefaultLocalGemIDs, s.localGemRepo.FindByIDs, func(gem *entity.LocalGem) primitive.ObjectID { return gem.ID })
		detail.DefaultLocalGems = gems

		return errors.Wrap(err, "resolve default local gems")
	})

	g.Go(func() error {
		activities, err := resolveInOrder(gctx, pkg.DefaultActivityIDs, s.activityRepo.FindByIDs, func(a *entity.Activity) primitive.ObjectID { return a.ID })
		detail.DefaultActivities = activities

		return errors.Wrap(err, "resolve default activities")
	})

	if err := g.Wait(); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("Failed to resolve package references",
			slog.String("package_id", id.Hex()),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to resolve package references")
	}

	return detail, nil
}

// GetPackageShareQR renders the share QR code of an existing package
func (s *packageQueryService) GetPackageShareQR(ctx context.Context, id primitive.ObjectID) ([]byte, error) {
	if _, err := s.packageRepo.FindByID(ctx, id); err != nil {
		return nil, translateRepoError(err, repository.ErrPackageNotFound, domainerrors.ErrPackageNotFound, "failed to find package")
	}

	png, err := s.qrCodeService.GeneratePackageQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate package QR code")
	}

	return png, nil
}

// resolveInOrder fetches ids in one batch and returns the hits in the order of ids.
// Unknown ids are skipped and an empty list never reaches the store.
func resolveInOrder[T any](
	ctx context.Context,
	ids []primitive.ObjectID,
	find func(context.Context, []primitive.ObjectID) ([]*T, error),
	idOf func(*T) primitive.ObjectID,
) ([]*T, error) {
	if len(ids) == 0 {
		return []*T{}, nil
	}

	found, err := find(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]*T, len(found))
	for _, item := range found {
		byID[idOf(item)] = item
	}

	ordered := make([]*T, 0, len(ids))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			ordered = append(ordered, item)
		}
	}

	return ordered, nil
}

// parseBudget reads an optional numeric query bound. Empty means unbounded.
func parseBudget(field, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, invalid(field + " must be a number")
	}

	return &value, nil
}
