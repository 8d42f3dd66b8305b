package mongodb

import (
	"context"

	"trailpack/internal/domain/entity"
	"trailpack/internal/domain/repository"
	"trailpack/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type activityRepository struct {
	coll *mongo.Collection
}

// NewActivityRepository creates a new MongoDB-backed activity repository.
func NewActivityRepository(db *mongo.Database) repository.ActivityRepository {
	return &activityRepository{coll: db.Collection(collectionActivities)}
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	stamp(&activity.ID, &activity.CreatedAt, &activity.UpdatedAt)

	if _, err := r.coll.InsertOne(ctx, fromActivityDomain(activity)); err != nil {
		return errors.Wrap(err, "insert activity")
	}

	return nil
}

func (r *activityRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.Activity, error) {
	docs, err := findByIDs[activityDocument](ctx, r.coll, ids)
	if err != nil {
		return nil, err
	}

	return mapDocs(docs, toActivityDomain), nil
}

func (r *activityRepository) Update(ctx context.Context, id primitive.ObjectID, patch *entity.ActivityPatch) (*entity.Activity, error) {
	doc, err := updateByID[activityDocument](ctx, r.coll, id, activityUpdate(patch), repository.ErrActivityNotFound)
	if err != nil {
		return nil, err
	}

	return toActivityDomain(doc), nil
}

func (r *activityRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.coll, id, repository.ErrActivityNotFound)
}

func (r *activityRepository) DeleteByDestination(ctx context.Context, destinationID primitive.ObjectID) (int64, error) {
	return deleteByDestination(ctx, r.coll, destinationID)
}
