// Package mapview wires filtering and viewport fitting into one pipeline:
// every change to the features, the filter or the fit options recomputes the
// visible features and the camera move from scratch.
package mapview

import (
	"context"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/detection-map-backend/internal/domain/entity"
	"github.com/marcos-nsantos/detection-map-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/filter"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/viewport"
)

type FeatureSource interface {
	FetchFeatures(ctx context.Context) ([]entity.Feature, error)
}

// View holds the state of one map view. It is not safe for concurrent use;
// events are applied one at a time and each runs to completion.
type View struct {
	fitter   *viewport.Fitter
	renderer viewport.Renderer
	logger   *zap.Logger

	features []entity.Feature
	state    valueobject.FilterState
	opts     viewport.Options
	visible  []entity.Feature
	last     viewport.Result
}

type ViewOption func(*View)

// WithFilter sets the starting filter. Unlike SetFilter it does not
// recompute, so no camera command is issued before features arrive.
func WithFilter(state valueobject.FilterState) ViewOption {
	return func(v *View) { v.state = state }
}

func NewView(fitter *viewport.Fitter, renderer viewport.Renderer, opts viewport.Options, logger *zap.Logger, viewOpts ...ViewOption) *View {
	v := &View{
		fitter:   fitter,
		renderer: renderer,
		logger:   logger,
		state:    valueobject.DefaultFilterState(),
		opts:     opts,
		visible:  []entity.Feature{},
		last:     viewport.Result{Outcome: viewport.OutcomeNoOp},
	}
	for _, opt := range viewOpts {
		opt(v)
	}
	return v
}

// Load replaces the features with a fresh fetch from src. A failed fetch
// leaves the view with an empty collection instead of an error.
func (v *View) Load(ctx context.Context, src FeatureSource) (viewport.Result, error) {
	fs, err := src.FetchFeatures(ctx)
	if err != nil {
		v.logger.Error("fetching features, continuing with empty collection", zap.Error(err))
		fs = nil
	}
	return v.SetFeatures(fs)
}

func (v *View) SetFeatures(fs []entity.Feature) (viewport.Result, error) {
	v.features = fs
	return v.recompute()
}

func (v *View) SetFilter(state valueobject.FilterState) (viewport.Result, error) {
	v.state = state
	return v.recompute()
}

func (v *View) ToggleGeometryType(t valueobject.GeometryType, enabled bool) (viewport.Result, error) {
	return v.SetFilter(v.state.WithGeometryType(t, enabled))
}

func (v *View) SetNameQuery(query string) (viewport.Result, error) {
	return v.SetFilter(v.state.WithNameQuery(query))
}

func (v *View) SetOptions(opts viewport.Options) (viewport.Result, error) {
	v.opts = opts
	return v.recompute()
}

func (v *View) Filter() valueobject.FilterState {
	return v.state
}

func (v *View) Features() []entity.Feature {
	return v.features
}

func (v *View) Visible() []entity.Feature {
	return v.visible
}

func (v *View) LastResult() viewport.Result {
	return v.last
}

func (v *View) recompute() (viewport.Result, error) {
	v.visible = filter.Apply(v.features, v.state)

	res, err := v.fitter.Fit(v.visible, v.renderer, v.opts)
	if err != nil {
		return viewport.Result{}, err
	}
	v.last = res

	return res, nil
}
