package mapview

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/detection-map-backend/internal/domain/entity"
	"github.com/marcos-nsantos/detection-map-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/viewport"
)

// Settings are the configured defaults of every computed view.
type Settings struct {
	Options       viewport.Options
	InitialCenter valueobject.LatLon
	InitialZoom   float64
}

type Service struct {
	source   FeatureSource
	fitter   *viewport.Fitter
	settings Settings
	logger   *zap.Logger
}

func NewService(source FeatureSource, fitter *viewport.Fitter, settings Settings, logger *zap.Logger) *Service {
	return &Service{
		source:   source,
		fitter:   fitter,
		settings: settings,
		logger:   logger,
	}
}

// ComputeInput describes the client map: its filter and camera. Nil fields
// fall back to the configured settings.
type ComputeInput struct {
	Filter          valueobject.FilterState
	CurrentZoom     *float64
	RendererMaxZoom *float64
	Animate         bool
	Padding         *valueobject.Padding
	MaxZoom         *float64
}

type ComputeResult struct {
	Visible  []entity.Feature
	Total    int
	Viewport viewport.Result
	// Command is the camera move for the client, nil on a no-op.
	Command *viewport.Command
}

func (s *Service) Compute(ctx context.Context, input ComputeInput) (*ComputeResult, error) {
	zoom := s.settings.InitialZoom
	if input.CurrentZoom != nil {
		zoom = *input.CurrentZoom
	}

	opts := s.settings.Options
	if input.Padding != nil {
		opts.Padding = *input.Padding
	}
	if input.MaxZoom != nil {
		opts.MaxZoom = *input.MaxZoom
	}

	recorder := viewport.NewRecorder(zoom, input.RendererMaxZoom, input.Animate)
	view := NewView(s.fitter, recorder, opts, s.logger, WithFilter(input.Filter))

	res, err := view.Load(ctx, s.source)
	if err != nil {
		return nil, fmt.Errorf("computing viewport: %w", err)
	}

	result := &ComputeResult{
		Visible:  view.Visible(),
		Total:    len(view.Features()),
		Viewport: res,
	}
	if cmd, ok := recorder.Last(); ok {
		result.Command = &cmd
	}

	return result, nil
}

type InitialCamera struct {
	Center valueobject.LatLon
	Zoom   float64
}

func (s *Service) InitialCamera() InitialCamera {
	return InitialCamera{
		Center: s.settings.InitialCenter,
		Zoom:   s.settings.InitialZoom,
	}
}

func (s *Service) TileProviders() []TileProvider {
	providers := make([]TileProvider, len(tileProviders))
	copy(providers, tileProviders)
	return providers
}
