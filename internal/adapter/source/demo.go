package source

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/detection-map-backend/internal/domain/entity"
)

const demoSourceName = "demo"

//go:embed geodata/demo.geojson
var demoFS embed.FS

// LoadDemoFeatures returns the built-in sample detections around Navarre
// together with their bounds.
func LoadDemoFeatures() ([]entity.Feature, orb.Bound, error) {
	data, err := demoFS.ReadFile("geodata/demo.geojson")
	if err != nil {
		return nil, orb.Bound{}, fmt.Errorf("reading embedded geojson: %w", err)
	}

	fc := geojson.NewFeatureCollection()
	if err := json.Unmarshal(data, fc); err != nil {
		return nil, orb.Bound{}, fmt.Errorf("parsing geojson: %w", err)
	}

	features := make([]entity.Feature, 0, len(fc.Features))
	var bound orb.Bound
	for i, f := range fc.Features {
		geometry, err := json.Marshal(geojson.NewGeometry(f.Geometry))
		if err != nil {
			return nil, orb.Bound{}, fmt.Errorf("encoding geometry %d: %w", i, err)
		}

		var g entity.Geometry
		if err := json.Unmarshal(geometry, &g); err != nil {
			return nil, orb.Bound{}, fmt.Errorf("decoding geometry %d: %w", i, err)
		}

		id, _ := f.ID.(string)
		features = append(features, entity.NewFeature(id, &g, entity.Properties(f.Properties)))

		if i == 0 {
			bound = f.Geometry.Bound()
		} else {
			bound = bound.Union(f.Geometry.Bound())
		}
	}

	return features, bound, nil
}

// FallbackSource returns the demo dataset whenever next yields no features.
// Errors from next are passed through.
type FallbackSource struct {
	next     Source
	demo     []entity.Feature
	logger   *zap.Logger
	observer Observer
}

func NewFallbackSource(next Source, logger *zap.Logger, observer Observer) (*FallbackSource, error) {
	demo, bound, err := LoadDemoFeatures()
	if err != nil {
		return nil, err
	}
	logger.Info("demo fallback enabled",
		zap.Int("features", len(demo)),
		zap.Float64s("bound_min", bound.Min[:]),
		zap.Float64s("bound_max", bound.Max[:]),
	)

	return &FallbackSource{
		next:     next,
		demo:     demo,
		logger:   logger,
		observer: observerOrNop(observer),
	}, nil
}

func (s *FallbackSource) FetchFeatures(ctx context.Context) ([]entity.Feature, error) {
	start := time.Now()

	features, err := s.next.FetchFeatures(ctx)
	if err != nil {
		return nil, err
	}
	if len(features) > 0 {
		return features, nil
	}

	s.logger.Warn("upstream returned no features, serving demo dataset")
	s.observer.ObserveSourceFetch(demoSourceName, OutcomeFallback, time.Since(start))

	out := make([]entity.Feature, len(s.demo))
	copy(out, s.demo)
	return out, nil
}
