package valueobject_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/detection-map-backend/internal/domain/valueobject"
)

func TestBoundingBoxFromPoints(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		box, ok := valueobject.BoundingBoxFromPoints(nil)

		assert.False(t, ok)
		assert.Nil(t, box)
	})

	t.Run("componentwise min and max", func(t *testing.T) {
		box, ok := valueobject.BoundingBoxFromPoints([]valueobject.LatLon{
			valueobject.NewLatLon(42.5, -1),
			valueobject.NewLatLon(42, -1.5),
			valueobject.NewLatLon(42.2, -1.2),
		})

		require.True(t, ok)
		assert.Equal(t, valueobject.NewLatLon(42, -1.5), box.SouthWest)
		assert.Equal(t, valueobject.NewLatLon(42.5, -1), box.NorthEast)
		assert.True(t, box.IsValid())
		assert.False(t, box.IsPoint())
	})

	t.Run("single point degenerates", func(t *testing.T) {
		box, ok := valueobject.BoundingBoxFromPoints([]valueobject.LatLon{valueobject.NewLatLon(42, -1)})

		require.True(t, ok)
		assert.True(t, box.IsPoint())
	})
}

func TestLatLon(t *testing.T) {
	l := valueobject.NewLatLon(42.8125, -1.6458)

	assert.Equal(t, l, valueobject.LatLonFromPoint(l.Point()))
	assert.Equal(t, -1.6458, l.Point()[0])
	assert.True(t, l.IsValid())
	assert.False(t, valueobject.NewLatLon(91, 0).IsValid())
	assert.False(t, valueobject.NewLatLon(math.NaN(), 0).IsFinite())
}
