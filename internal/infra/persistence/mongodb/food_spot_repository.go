package mongodb

import (
	"context"

	"trailpack/internal/domain/entity"
	"trailpack/internal/domain/repository"
	"trailpack/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type foodSpotRepository struct {
	coll *mongo.Collection
}

// NewFoodSpotRepository creates a new MongoDB-backed food spot repository.
func NewFoodSpotRepository(db *mongo.Database) repository.FoodSpotRepository {
	return &foodSpotRepository{coll: db.Collection(collectionFoodSpots)}
}

func (r *foodSpotRepository) Create(ctx context.Context, foodSpot *entity.FoodSpot) error {
	stamp(&foodSpot.ID, &foodSpot.CreatedAt, &foodSpot.UpdatedAt)

	if _, err := r.coll.InsertOne(ctx, fromFoodSpotDomain(foodSpot)); err != nil {
		return errors.Wrap(err, "insert food spot")
	}

	return nil
}

func (r *foodSpotRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.FoodSpot, error) {
	docs, err := findByIDs[foodSpotDocument](ctx, r.coll, ids)
	if err != nil {
		return nil, err
	}

	return mapDocs(docs, toFoodSpotDomain), nil
}

func (r *foodSpotRepository) Update(ctx context.Context, id primitive.ObjectID, patch *entity.FoodSpotPatch) (*entity.FoodSpot, error) {
	doc, err := updateByID[foodSpotDocument](ctx, r.coll, id, foodSpotUpdate(patch), repository.ErrFoodSpotNotFound)
	if err != nil {
		return nil, err
	}

	return toFoodSpotDomain(doc), nil
}

func (r *foodSpotRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.coll, id, repository.ErrFoodSpotNotFound)
}

func (r *foodSpotRepository) DeleteByDestination(ctx context.Context, destinationID primitive.ObjectID) (int64, error) {
	return deleteByDestination(ctx, r.coll, destinationID)
}
