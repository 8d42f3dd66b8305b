// Package persistence selects the repository implementations for the configured store.
package persistence

import (
	"trailpack/config"
	"trailpack/internal/infra/persistence/mongodb"
	"trailpack/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Module provides the store client and every repository for driver.
// The driver is validated by config.New, unknown values fall back to mongo.
func Module(driver string) fx.Option {
	switch driver {
	case config.StorageDriverPostgres:
		return fx.Options(fx.Provide(postgres.New), gormRepositories())
	case config.StorageDriverSQLite:
		return fx.Options(fx.Provide(postgres.NewSQLite), gormRepositories())
	default:
		return fx.Options(
			fx.Provide(
				mongodb.New,
				mongodb.NewDestinationRepository,
				mongodb.NewFoodSpotRepository,
				mongodb.NewStayRepository,
				mongodb.NewLocalGemRepository,
				mongodb.NewActivityRepository,
				mongodb.NewPackageRepository,
			),
		)
	}
}

func gormRepositories() fx.Option {
	return fx.Provide(
		postgres.NewDestinationRepository,
		postgres.NewFoodSpotRepository,
		postgres.NewStayRepository,
		postgres.NewLocalGemRepository,
		postgres.NewActivityRepository,
		postgres.NewPackageRepository,
	)
}
