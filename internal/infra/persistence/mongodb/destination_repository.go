package mongodb

import (
	"context"

	"trailpack/internal/domain/entity"
	"trailpack/internal/domain/repository"
	"trailpack/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type destinationRepository struct {
	coll *mongo.Collection
}

// NewDestinationRepository creates a new MongoDB-backed destination repository.
func NewDestinationRepository(db *mongo.Database) repository.DestinationRepository {
	return &destinationRepository{coll: db.Collection(collectionDestinations)}
}

func (r *destinationRepository) Create(ctx context.Context, destination *entity.Destination) error {
	stamp(&destination.ID, &destination.CreatedAt, &destination.UpdatedAt)

	if _, err := r.coll.InsertOne(ctx, fromDestinationDomain(destination)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDestinationNameTaken
		}

		return errors.Wrap(err, "insert destination")
	}

	return nil
}

func (r *destinationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Destination, error) {
	doc, err := findByID[destinationDocument](ctx, r.coll, id, repository.ErrDestinationNotFound)
	if err != nil {
		return nil, err
	}

	return toDestinationDomain(doc), nil
}

func (r *destinationRepository) FindByName(ctx context.Context, name string) (*entity.Destination, error) {
	var doc destinationDocument
	if err := r.coll.FindOne(ctx, bson.D{{Key: "name", Value: name}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrDestinationNotFound
		}

		return nil, errors.Wrap(err, "find destination by name")
	}

	return toDestinationDomain(&doc), nil
}

func (r *destinationRepository) Update(ctx context.Context, id primitive.ObjectID, patch *entity.DestinationPatch) (*entity.Destination, error) {
	doc, err := updateByID[destinationDocument](ctx, r.coll, id, destinationUpdate(patch), repository.ErrDestinationNotFound)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, repository.ErrDestinationNameTaken
		}

		return nil, err
	}

	return toDestinationDomain(doc), nil
}

func (r *destinationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.coll, id, repository.ErrDestinationNotFound)
}
