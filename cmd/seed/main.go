package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"trailpack/config"
	logs "trailpack/internal/infra/log"
	"trailpack/internal/infra/persistence"
	"trailpack/internal/infra/seed"
	"trailpack/internal/usecase/impl"

	"go.uber.org/fx"
)

type runImportParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Importer *seed.Importer
	Logger   *slog.Logger
}

func main() {
	file := flag.String("file", "catalog.xlsx", "path to the catalog workbook")
	flag.Parse()

	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		fx.Provide(logs.New),
		persistence.Module(cfg.Storage.Driver),
		fx.Provide(
			impl.NewDestinationService,
			impl.NewFoodSpotService,
			impl.NewStayService,
			impl.NewLocalGemService,
			impl.NewActivityService,
			impl.NewPackageAdminService,
			seed.NewImporter,
		),
		fx.Invoke(func(params runImportParams) {
			params.Append(fx.Hook{
				OnStart: func(context.Context) error {
					go runImport(*file, params)

					return nil
				},
			})
		}),
		fx.NopLogger,
	).Run()
}

// runImport loads the workbook and shuts the app down, exiting non-zero when any row failed.
func runImport(path string, params runImportParams) {
	exitCode := 0
	defer func() {
		if err := params.Shutdown(fx.ExitCode(exitCode)); err != nil {
			slog.Error("Failed to shutdown gracefully", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		params.Logger.Error("Failed to open workbook", slog.String("file", path), slog.Any("error", err))
		exitCode = 1

		return
	}
	defer f.Close()

	summary, err := params.Importer.Import(context.Background(), f)
	if err != nil {
		params.Logger.Error("Import failed", slog.String("file", path), slog.Any("error", err))
		exitCode = 1

		return
	}

	params.Logger.Info("Import finished",
		slog.Any("created", summary.Created),
		slog.Int("reused_destinations", summary.ReusedDestinations),
		slog.Int("failed_rows", len(summary.Errors)),
	)
	if len(summary.Errors) > 0 {
		exitCode = 1
	}
}
