package mapview_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/detection-map-backend/internal/domain/entity"
	"github.com/marcos-nsantos/detection-map-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/mapview"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/viewport"
)

func newService(src mapview.FeatureSource) *mapview.Service {
	return mapview.NewService(src, viewport.NewFitter(zap.NewNop(), nil), mapview.Settings{
		Options:       viewport.DefaultOptions(),
		InitialCenter: valueobject.NewLatLon(42.8125, -1.6458),
		InitialZoom:   12,
	}, zap.NewNop())
}

type fitRecorder struct {
	outcomes []string
}

func (r *fitRecorder) ObserveFit(outcome string, _ bool) {
	r.outcomes = append(r.outcomes, outcome)
}

func (r *fitRecorder) ObserveMalformedGeometry(string) {}

func TestService_Compute_ObservesOneFitPerRequest(t *testing.T) {
	tests := []struct {
		name   string
		source mapview.FeatureSource
		filter valueobject.FilterState
		want   string
	}{
		{
			name:   "single point focuses",
			source: staticSource(point("1", "Olite", `[-1.0, 42.0]`)),
			filter: valueobject.DefaultFilterState(),
			want:   "focus",
		},
		{
			name:   "several features fit",
			source: staticSource(navarra()...),
			filter: valueobject.DefaultFilterState().WithGeometryType(valueobject.GeometryPolygon, false),
			want:   "fit",
		},
		{
			name:   "nothing matches",
			source: staticSource(navarra()...),
			filter: valueobject.DefaultFilterState().WithNameQuery("bilbao"),
			want:   "noop",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &fitRecorder{}
			svc := mapview.NewService(tt.source, viewport.NewFitter(zap.NewNop(), rec), mapview.Settings{
				Options:     viewport.DefaultOptions(),
				InitialZoom: 10,
			}, zap.NewNop())

			_, err := svc.Compute(context.Background(), mapview.ComputeInput{Filter: tt.filter})

			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, rec.outcomes)
		})
	}
}

func TestService_Compute(t *testing.T) {
	t.Run("animated fit of all features", func(t *testing.T) {
		svc := newService(staticSource(navarra()...))

		res, err := svc.Compute(context.Background(), mapview.ComputeInput{
			Filter:  valueobject.DefaultFilterState(),
			Animate: true,
		})

		require.NoError(t, err)
		assert.Equal(t, 3, res.Total)
		assert.Len(t, res.Visible, 3)
		require.NotNil(t, res.Command)
		assert.Equal(t, viewport.CommandFitToBounds, res.Command.Kind)
		assert.Equal(t, 700*time.Millisecond, res.Command.Duration)
	})

	t.Run("without animation fits immediately", func(t *testing.T) {
		svc := newService(staticSource(navarra()...))

		res, err := svc.Compute(context.Background(), mapview.ComputeInput{Filter: valueobject.DefaultFilterState()})

		require.NoError(t, err)
		require.NotNil(t, res.Command)
		assert.Equal(t, time.Duration(0), res.Command.Duration)
	})

	t.Run("single match focuses from given zoom", func(t *testing.T) {
		svc := newService(staticSource(navarra()...))
		zoom := 8.0
		maxZoom := 13.0

		res, err := svc.Compute(context.Background(), mapview.ComputeInput{
			Filter:      valueobject.DefaultFilterState().WithNameQuery("tafalla"),
			CurrentZoom: &zoom,
			MaxZoom:     &maxZoom,
		})

		require.NoError(t, err)
		assert.Equal(t, 3, res.Total)
		require.Len(t, res.Visible, 1)
		require.NotNil(t, res.Command)
		assert.Equal(t, viewport.CommandFocusOn, res.Command.Kind)
		assert.Equal(t, 13.0, res.Command.Zoom)
	})

	t.Run("single match uses initial zoom by default", func(t *testing.T) {
		svc := newService(staticSource(navarra()...))
		rendererMax := 17.0

		res, err := svc.Compute(context.Background(), mapview.ComputeInput{
			Filter:          valueobject.DefaultFilterState().WithNameQuery("tafalla"),
			RendererMaxZoom: &rendererMax,
		})

		require.NoError(t, err)
		assert.Equal(t, 17.0, res.Command.Zoom)
	})

	t.Run("custom padding", func(t *testing.T) {
		svc := newService(staticSource(navarra()...))
		padding := valueobject.Padding{40, 30}

		res, err := svc.Compute(context.Background(), mapview.ComputeInput{
			Filter:  valueobject.DefaultFilterState(),
			Padding: &padding,
		})

		require.NoError(t, err)
		assert.Equal(t, padding, res.Command.Padding)
		assert.Equal(t, padding, res.Viewport.Target.Padding)
	})

	t.Run("source failure yields empty no-op view", func(t *testing.T) {
		svc := newService(sourceFunc(func(context.Context) ([]entity.Feature, error) {
			return nil, errors.New("timeout")
		}))

		res, err := svc.Compute(context.Background(), mapview.ComputeInput{Filter: valueobject.DefaultFilterState()})

		require.NoError(t, err)
		assert.Equal(t, 0, res.Total)
		assert.Empty(t, res.Visible)
		assert.Nil(t, res.Command)
		assert.Equal(t, viewport.OutcomeNoOp, res.Viewport.Outcome)
	})
}

func TestService_InitialCamera(t *testing.T) {
	svc := newService(staticSource())

	cam := svc.InitialCamera()

	assert.Equal(t, valueobject.NewLatLon(42.8125, -1.6458), cam.Center)
	assert.Equal(t, 12.0, cam.Zoom)
	assert.Len(t, svc.TileProviders(), 3)
}
