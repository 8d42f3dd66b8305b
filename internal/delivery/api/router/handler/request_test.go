package handler

import (
	"testing"

	domainerrors "trailpack/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIDReader(t *testing.T) {
	valid := primitive.NewObjectID()

	t.Run("converts valid ids", func(t *testing.T) {
		ids := &idReader{}
		hex := valid.Hex()

		assert.Equal(t, valid, ids.one("destinationId", hex))
		assert.Equal(t, &valid, ids.optional("defaultStayId", &hex))
		assert.Equal(t, []primitive.ObjectID{valid, valid}, ids.many("defaultFoodSpotIds", []string{hex, hex}))
		assert.NoError(t, ids.err)
	})

	t.Run("absent optional values stay nil", func(t *testing.T) {
		ids := &idReader{}

		assert.Nil(t, ids.optional("defaultStayId", nil))
		assert.Nil(t, ids.optionalMany("defaultLocalGemIds", nil))
		assert.NoError(t, ids.err)
	})

	t.Run("empty list stays empty", func(t *testing.T) {
		ids := &idReader{}

		assert.Equal(t, []primitive.ObjectID{}, ids.many("defaultActivityIds", nil))
		assert.NoError(t, ids.err)
	})

	t.Run("malformed id is a validation failure", func(t *testing.T) {
		ids := &idReader{}

		ids.one("destinationId", "not-an-id")

		require.ErrorIs(t, ids.err, domainerrors.ErrValidationFailed)
		assert.Equal(t, "destinationId must be a valid id", ids.err.Error())
	})

	t.Run("first failure wins", func(t *testing.T) {
		ids := &idReader{}

		ids.many("defaultFoodSpotIds", []string{valid.Hex(), "zzz", ""})
		ids.one("destinationId", "also-bad")

		require.Error(t, ids.err)
		assert.Equal(t, "defaultFoodSpotIds[1] must be a valid id", ids.err.Error())
	})
}
