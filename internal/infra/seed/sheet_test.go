package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRow(t *testing.T) {
	rw := row{
		line:   2,
		cells:  []string{" Thaff ", "x.jpg| |y.jpg", "12.5", "abc", "TRUE"},
		header: map[string]int{"name": 0, "images": 1, "price": 2, "rating": 3, "isactive": 4, "missing": 9},
	}

	assert.Equal(t, "Thaff", rw.text("name"))
	assert.Equal(t, "", rw.text("missing"))
	assert.Equal(t, "", rw.text("unknown"))
	assert.Equal(t, []string{"x.jpg", "y.jpg"}, rw.list("images"))
	assert.Equal(t, []string{}, rw.list("missing"))

	price, err := rw.number("price")
	require.NoError(t, err)
	assert.InDelta(t, 12.5, *price, 0.0001)

	_, err = rw.number("rating")
	assert.EqualError(t, err, `column rating: "abc" is not a number`)

	empty, err := rw.number("missing")
	require.NoError(t, err)
	assert.Nil(t, empty)

	active, err := rw.boolean("isActive")
	require.NoError(t, err)
	assert.True(t, *active)
}
