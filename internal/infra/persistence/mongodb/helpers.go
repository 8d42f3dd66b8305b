package mongodb

import (
	"context"
	"time"

	"trailpack/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// stamp assigns a new ObjectID when id is zero and sets both timestamps.
func stamp(id *primitive.ObjectID, createdAt, updatedAt *time.Time) {
	if id.IsZero() {
		*id = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	*createdAt = now
	*updatedAt = now
}

func findByID[D any](ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, notFound error) (*D, error) {
	doc := new(D)
	if err := coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound
		}

		return nil, errors.Wrapf(err, "find %s by id", coll.Name())
	}

	return doc, nil
}

func findByIDs[D any](ctx context.Context, coll *mongo.Collection, ids []primitive.ObjectID) ([]*D, error) {
	if len(ids) == 0 {
		return []*D{}, nil
	}

	cursor, err := coll.Find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}})
	if err != nil {
		return nil, errors.Wrapf(err, "find %s by ids", coll.Name())
	}

	docs := make([]*D, 0, len(ids))
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrapf(err, "decode %s", coll.Name())
	}

	return docs, nil
}

func updateByID[D any](ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, update *updateDoc, notFound error) (*D, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	doc := new(D)
	err := coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update.build(time.Now().UTC()), opts).Decode(doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, notFound
		}

		return nil, errors.Wrapf(err, "update %s", coll.Name())
	}

	return doc, nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id primitive.ObjectID, notFound error) error {
	res, err := coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return errors.Wrapf(err, "delete %s", coll.Name())
	}
	if res.DeletedCount == 0 {
		return notFound
	}

	return nil
}

func deleteByDestination(ctx context.Context, coll *mongo.Collection, destinationID primitive.ObjectID) (int64, error) {
	res, err := coll.DeleteMany(ctx, bson.D{{Key: "destinationId", Value: destinationID}})
	if err != nil {
		return 0, errors.Wrapf(err, "delete %s by destination", coll.Name())
	}

	return res.DeletedCount, nil
}

func mapDocs[D any, E any](docs []*D, fn func(*D) *E) []*E {
	out := make([]*E, len(docs))
	for i, d := range docs {
		out[i] = fn(d)
	}

	return out
}
