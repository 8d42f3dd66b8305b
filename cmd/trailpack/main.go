package main

import (
	"context"
	"log/slog"
	"os"

	"trailpack/config"
	"trailpack/internal/delivery"
	"trailpack/internal/delivery/api"
	"trailpack/internal/delivery/api/router/handler"
	"trailpack/internal/domain/service"
	logs "trailpack/internal/infra/log"
	"trailpack/internal/infra/persistence"
	"trailpack/internal/infra/qrcode"
	"trailpack/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// The storage driver decides which providers are registered, so config is loaded up front.
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		injectInfra(cfg),
		persistence.Module(cfg.Storage.Driver),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			logs.New,
			context.Background,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDestinationService,
			impl.NewFoodSpotService,
			impl.NewStayService,
			impl.NewLocalGemService,
			impl.NewActivityService,
			impl.NewPackageAdminService,
			impl.NewPackageQueryService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDestinationHandler,
			handler.NewCatalogHandler,
			handler.NewPackageHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
