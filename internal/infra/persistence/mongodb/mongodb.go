// Package mongodb contains the MongoDB implementation of the persistence layer.
package mongodb

import (
	"context"
	"log/slog"

	"trailpack/config"
	"trailpack/internal/domain/lifecycle"
	"trailpack/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Collection names, one per entity type.
const (
	collectionDestinations = "destinations"
	collectionFoodSpots    = "foodspots"
	collectionStays        = "stays"
	collectionLocalGems    = "localgems"
	collectionActivities   = "activities"
	collectionPackages     = "packages"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client and returns the configured database.
// The connection is verified on start and closed on stop.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo

	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMonitor(newCommandMonitor(params.Logger, params.Config.Env.Debug))

	client, err := mongo.Connect(context.Background(), clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(cfg.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if params.Config.Storage.AutoMigrate {
				if err := EnsureIndexes(ctx, db); err != nil {
					return err
				}
				params.Logger.Info("MongoDB indexes ensured", slog.String("database", cfg.Database))
			}

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return db, nil
}

// EnsureIndexes creates the unique destination name index and the lookup
// indexes used by the package listing and cascade deletes.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	byDestination := mongo.IndexModel{Keys: bson.D{{Key: "destinationId", Value: 1}}}

	indexes := map[string][]mongo.IndexModel{
		collectionDestinations: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collectionFoodSpots:  {byDestination},
		collectionStays:      {byDestination},
		collectionLocalGems:  {byDestination},
		collectionActivities: {byDestination},
		collectionPackages: {
			listingIndex("budgetPerDay", 1),
			listingIndex("popularity", -1),
			listingIndex("rating", -1),
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "failed to create indexes on %s", name)
		}
	}

	return nil
}

// newCommandMonitor logs failed commands, and every command when debug is on.
func newCommandMonitor(logger *slog.Logger, debug bool) *event.CommandMonitor {
	monitor := &event.CommandMonitor{
		Failed: func(ctx context.Context, evt *event.CommandFailedEvent) {
			logger.LogAttrs(ctx, slog.LevelError, "MongoDB command failed",
				slog.String("command", evt.CommandName),
				slog.String("database", evt.DatabaseName),
				slog.Duration("elapsed", evt.Duration),
				slog.String("error", evt.Failure),
			)
		},
	}

	if debug {
		monitor.Succeeded = func(ctx context.Context, evt *event.CommandSucceededEvent) {
			logger.LogAttrs(ctx, slog.LevelDebug, "MongoDB command",
				slog.String("command", evt.CommandName),
				slog.String("database", evt.DatabaseName),
				slog.Duration("elapsed", evt.Duration),
			)
		}
	}

	return monitor
}

// listingIndex covers the active-package listing for one sort field.
func listingIndex(sortKey string, order int) mongo.IndexModel {
	return mongo.IndexModel{Keys: bson.D{
		{Key: "destinationId", Value: 1},
		{Key: "isActive", Value: 1},
		{Key: sortKey, Value: order},
	}}
}
