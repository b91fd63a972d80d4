package filter_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/detection-map-backend/internal/domain/entity"
	"github.com/marcos-nsantos/detection-map-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/filter"
)

func named(id string, geometryType valueobject.GeometryType, name any) entity.Feature {
	props := entity.Properties{}
	if name != nil {
		props["name"] = name
	}
	return entity.NewFeature(id, &entity.Geometry{
		Type:        geometryType,
		Coordinates: json.RawMessage(`[0,0]`),
	}, props)
}

func ids(fs []entity.Feature) []string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.ID)
	}
	return out
}

func fixtures() []entity.Feature {
	return []entity.Feature{
		named("1", valueobject.GeometryPoint, "Tafalla"),
		named("2", valueobject.GeometryPolygon, "Pamplona area"),
		named("3", valueobject.GeometryPoint, "Olite"),
		named("4", "LineString", "Camino"),
		named("5", valueobject.GeometryPoint, nil),
		named("6", valueobject.GeometryPoint, "Tudela"),
	}
}

func TestApply(t *testing.T) {
	t.Run("default state keeps everything in order", func(t *testing.T) {
		got := filter.Apply(fixtures(), valueobject.DefaultFilterState())

		assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids(got))
	})

	t.Run("disabled type is removed", func(t *testing.T) {
		state := valueobject.DefaultFilterState().WithGeometryType(valueobject.GeometryPoint, false)

		got := filter.Apply(fixtures(), state)

		assert.Equal(t, []string{"2", "4"}, ids(got))
	})

	t.Run("unrecognized type stays visible with everything disabled", func(t *testing.T) {
		state := valueobject.DefaultFilterState().
			WithGeometryType(valueobject.GeometryPoint, false).
			WithGeometryType(valueobject.GeometryPolygon, false)

		got := filter.Apply(fixtures(), state)

		assert.Equal(t, []string{"4"}, ids(got))
	})

	t.Run("name query is case insensitive substring", func(t *testing.T) {
		state := valueobject.DefaultFilterState().WithNameQuery("TU")

		got := filter.Apply(fixtures(), state)

		assert.Equal(t, []string{"6"}, ids(got))
	})

	t.Run("name query drops features without a name", func(t *testing.T) {
		fs := []entity.Feature{
			named("a", valueobject.GeometryPoint, nil),
			named("b", valueobject.GeometryPoint, 42),
			named("c", valueobject.GeometryPoint, "Olite"),
		}

		got := filter.Apply(fs, valueobject.DefaultFilterState().WithNameQuery("o"))

		assert.Equal(t, []string{"c"}, ids(got))
	})

	t.Run("type and name combine", func(t *testing.T) {
		state := valueobject.DefaultFilterState().
			WithGeometryType(valueobject.GeometryPolygon, false).
			WithNameQuery("a")

		got := filter.Apply(fixtures(), state)

		assert.Equal(t, []string{"1", "4", "6"}, ids(got))
	})

	t.Run("empty query is neutral", func(t *testing.T) {
		state := valueobject.DefaultFilterState().WithGeometryType(valueobject.GeometryPolygon, false)

		assert.Equal(t,
			ids(filter.Apply(fixtures(), state)),
			ids(filter.Apply(fixtures(), state.WithNameQuery(""))),
		)
	})

	t.Run("idempotent", func(t *testing.T) {
		state := valueobject.DefaultFilterState().WithNameQuery("l")

		once := filter.Apply(fixtures(), state)
		twice := filter.Apply(once, state)

		assert.Equal(t, ids(once), ids(twice))
	})

	t.Run("result is a subsequence", func(t *testing.T) {
		in := fixtures()
		got := filter.Apply(in, valueobject.DefaultFilterState().WithNameQuery("a"))

		i := 0
		for _, f := range got {
			for i < len(in) && in[i].ID != f.ID {
				i++
			}
			assert.Less(t, i, len(in), "feature %s out of order", f.ID)
			i++
		}
	})

	t.Run("input is not modified", func(t *testing.T) {
		in := fixtures()
		before := ids(in)

		_ = filter.Apply(in, valueobject.DefaultFilterState().WithGeometryType(valueobject.GeometryPoint, false))

		assert.Equal(t, before, ids(in))
	})

	t.Run("empty input gives empty output", func(t *testing.T) {
		got := filter.Apply(nil, valueobject.DefaultFilterState().WithNameQuery("x"))

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
