package mongodb

import (
	"context"

	"trailpack/internal/domain/entity"
	"trailpack/internal/domain/repository"
	"trailpack/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type stayRepository struct {
	coll *mongo.Collection
}

// NewStayRepository creates a new MongoDB-backed stay repository.
func NewStayRepository(db *mongo.Database) repository.StayRepository {
	return &stayRepository{coll: db.Collection(collectionStays)}
}

func (r *stayRepository) Create(ctx context.Context, stay *entity.Stay) error {
	stamp(&stay.ID, &stay.CreatedAt, &stay.UpdatedAt)

	if _, err := r.coll.InsertOne(ctx, fromStayDomain(stay)); err != nil {
		return errors.Wrap(err, "insert stay")
	}

	return nil
}

func (r *stayRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Stay, error) {
	doc, err := findByID[stayDocument](ctx, r.coll, id, repository.ErrStayNotFound)
	if err != nil {
		return nil, err
	}

	return toStayDomain(doc), nil
}

func (r *stayRepository) Update(ctx context.Context, id primitive.ObjectID, patch *entity.StayPatch) (*entity.Stay, error) {
	doc, err := updateByID[stayDocument](ctx, r.coll, id, stayUpdate(patch), repository.ErrStayNotFound)
	if err != nil {
		return nil, err
	}

	return toStayDomain(doc), nil
}

func (r *stayRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.coll, id, repository.ErrStayNotFound)
}

func (r *stayRepository) DeleteByDestination(ctx context.Context, destinationID primitive.ObjectID) (int64, error) {
	return deleteByDestination(ctx, r.coll, destinationID)
}
