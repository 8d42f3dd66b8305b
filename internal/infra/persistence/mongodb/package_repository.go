package mongodb

import (
	"context"

	"trailpack/internal/domain/entity"
	"trailpack/internal/domain/repository"
	"trailpack/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type packageRepository struct {
	coll *mongo.Collection
}

// NewPackageRepository creates a new MongoDB-backed package repository.
func NewPackageRepository(db *mongo.Database) repository.PackageRepository {
	return &packageRepository{coll: db.Collection(collectionPackages)}
}

func (r *packageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	stamp(&pkg.ID, &pkg.CreatedAt, &pkg.UpdatedAt)

	if _, err := r.coll.InsertOne(ctx, fromPackageDomain(pkg)); err != nil {
		return errors.Wrap(err, "insert package")
	}

	return nil
}

func (r *packageRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Package, error) {
	doc, err := findByID[packageDocument](ctx, r.coll, id, repository.ErrPackageNotFound)
	if err != nil {
		return nil, err
	}

	return toPackageDomain(doc), nil
}

func (r *packageRepository) FindActiveByDestination(ctx context.Context, query *entity.PackageQuery) ([]*entity.Package, error) {
	opts := options.Find().SetSort(buildPackageSort(query.SortBy))

	cursor, err := r.coll.Find(ctx, buildPackageFilter(query), opts)
	if err != nil {
		return nil, errors.Wrap(err, "find packages by destination")
	}

	var docs []*packageDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decode packages")
	}

	return mapDocs(docs, toPackageDomain), nil
}

func (r *packageRepository) Update(ctx context.Context, id primitive.ObjectID, patch *entity.PackagePatch) (*entity.Package, error) {
	doc, err := updateByID[packageDocument](ctx, r.coll, id, packageUpdate(patch), repository.ErrPackageNotFound)
	if err != nil {
		return nil, err
	}

	return toPackageDomain(doc), nil
}

func (r *packageRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, r.coll, id, repository.ErrPackageNotFound)
}

func (r *packageRepository) DeleteByDestination(ctx context.Context, destinationID primitive.ObjectID) (int64, error) {
	return deleteByDestination(ctx, r.coll, destinationID)
}
