package mongodb

import (
	"context"

	"trailpack/internal/domain/entity"
	"trailpack/internal/domain/repository"
	"trailpack/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type localGemRepository struct {
	coll *mongo.Collection
}

// NewLocalGemRepository creates a new MongoDB-backed local gem repository.
func NewLocalGemRepository(db *mongo.Database) repository.LocalGemRepository {
	return &localGemRepository{coll: db.Collection(collectionLocalGems)}
}

func (r *localGemRepository) Create(ctx context.Context, gem *entity.LocalGem) error {
	stamp(&gem.ID, &gem.CreatedAt, &gem.UpdatedAt)

	if _, err := r.coll.InsertOne(ctx, fromLocalGemDomain(gem)); err != nil {
		return errors.Wrap(err, "insert local gem")
	}

	return nil
}

func (r *localGemRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*entity.LocalGem, error) {
	docs, err := findByIDs[localGemDocument](ctx, r.coll, ids)
	if err != nil {
		return nil, err
	}

	return mapDocs(docs, toLocalGemDomain), nil
}

func (r *localGemRepository) Update(ctx context.Context, id primitive.ObjectID, patch *entity.LocalGemPatch) (*entity.LocalGem, error) {
	doc, err := updateByID[localGemDocument](ctx, r.coll, id, localGemUpdate(patch), repository.ErrLocalGemNotFound)
	if err != nil {
		return nil, err
	}

	return toLocalGemDomain(doc), nil
}

func (r *localGemRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.coll, id, repository.ErrLocalGemNotFound)
}

func (r *localGemRepository) DeleteByDestination(ctx context.Context, destinationID primitive.ObjectID) (int64, error) {
	return deleteByDestination(ctx, r.coll, destinationID)
}
