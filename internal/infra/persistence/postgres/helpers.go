package postgres

import (
	"context"
	"time"

	"trailpack/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// columns collects the column updates of a partial update.
type columns map[string]any

func setColumn[T any](c columns, key string, value *T) {
	if value != nil {
		c[key] = *value
	}
}

func setImagesColumn(c columns, value *[]string) {
	if value != nil {
		c["images"] = stringSlice(*value)
	}
}

func setIDColumn(c columns, key string, value *primitive.ObjectID) {
	if value != nil {
		c[key] = value.Hex()
	}
}

func setIDsColumn(c columns, key string, value *[]primitive.ObjectID) {
	if value != nil {
		c[key] = hexes(*value)
	}
}

// stamp assigns a new ObjectID when id is zero and sets both timestamps.
func stamp(id *primitive.ObjectID, createdAt, updatedAt *time.Time) {
	if id.IsZero() {
		*id = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	*createdAt = now
	*updatedAt = now
}

func findOne[M any](ctx context.Context, db *gorm.DB, id primitive.ObjectID, notFound error) (*M, error) {
	m := new(M)
	if err := db.WithContext(ctx).Where("id = ?", id.Hex()).Take(m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}

		return nil, errors.Wrap(err, "failed to find record by ID")
	}

	return m, nil
}

func findMany[M any](ctx context.Context, db *gorm.DB, ids []primitive.ObjectID) ([]*M, error) {
	if len(ids) == 0 {
		return []*M{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.Hex()
	}

	var rows []*M
	if err := db.WithContext(ctx).Where("id IN ?", keys).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find records by IDs")
	}

	return rows, nil
}

// updateOne writes the collected columns and reloads the row.
func updateOne[M any](ctx context.Context, db *gorm.DB, id primitive.ObjectID, cols columns, notFound error) (*M, error) {
	cols["updated_at"] = time.Now().UTC()

	result := db.WithContext(ctx).Model(new(M)).Where("id = ?", id.Hex()).Updates(map[string]any(cols))
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update record")
	}
	if result.RowsAffected == 0 {
		return nil, notFound
	}

	return findOne[M](ctx, db, id, notFound)
}

func deleteOne[M any](ctx context.Context, db *gorm.DB, id primitive.ObjectID, notFound error) error {
	result := db.WithContext(ctx).Where("id = ?", id.Hex()).Delete(new(M))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete record")
	}
	if result.RowsAffected == 0 {
		return notFound
	}

	return nil
}

func deleteByDestination[M any](ctx context.Context, db *gorm.DB, destinationID primitive.ObjectID) (int64, error) {
	result := db.WithContext(ctx).Where("destination_id = ?", destinationID.Hex()).Delete(new(M))
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete records by destination")
	}

	return result.RowsAffected, nil
}

func mapRows[M any, E any](rows []*M, fn func(*M) *E) []*E {
	out := make([]*E, len(rows))
	for i, r := range rows {
		out[i] = fn(r)
	}

	return out
}
