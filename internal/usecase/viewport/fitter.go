// Package viewport turns a feature set into a single camera move: a zoomed
// focus on one coordinate, or a padded fit around the bounds of many.
package viewport

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/detection-map-backend/internal/domain"
	"github.com/marcos-nsantos/detection-map-backend/internal/domain/entity"
	"github.com/marcos-nsantos/detection-map-backend/internal/domain/valueobject"
)

const (
	// DefaultZoomBoost is added to the current zoom when focusing a single coordinate.
	DefaultZoomBoost = 6
	DefaultMaxZoom   = 18
	// ZoomCeiling caps every focus zoom regardless of options.
	ZoomCeiling = 18
	// DefaultAnimationDuration applies to focus moves and animated fits.
	DefaultAnimationDuration = 700 * time.Millisecond
)

var DefaultPadding = valueobject.Padding{20, 20}

type Options struct {
	Padding           valueobject.Padding
	MaxZoom           float64
	ZoomBoost         float64
	AnimationDuration time.Duration
}

func DefaultOptions() Options {
	return Options{
		Padding:           DefaultPadding,
		MaxZoom:           DefaultMaxZoom,
		ZoomBoost:         DefaultZoomBoost,
		AnimationDuration: DefaultAnimationDuration,
	}
}

func (o Options) normalized() Options {
	if o.MaxZoom <= 0 {
		o.MaxZoom = DefaultMaxZoom
	}
	if o.ZoomBoost < 0 {
		o.ZoomBoost = 0
	}
	if o.AnimationDuration < 0 {
		o.AnimationDuration = 0
	}
	return o
}

type Outcome string

const (
	OutcomeNoOp  Outcome = "noop"
	OutcomeFocus Outcome = "focus"
	OutcomeFit   Outcome = "fit"
)

type Result struct {
	Outcome  Outcome
	Target   *valueobject.ViewportTarget
	Duration time.Duration
	// Skipped counts features whose geometry could not be read.
	Skipped int
}

// Observer receives fit outcomes, e.g. for metrics.
type Observer interface {
	ObserveFit(outcome string, animated bool)
	ObserveMalformedGeometry(geometryType string)
}

type nopObserver struct{}

func (nopObserver) ObserveFit(string, bool)          {}
func (nopObserver) ObserveMalformedGeometry(string) {}

// Fitter keeps no state between calls; everything it needs comes from the
// features, the renderer and the options of each Fit.
type Fitter struct {
	logger   *zap.Logger
	observer Observer
}

func NewFitter(logger *zap.Logger, observer Observer) *Fitter {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Fitter{
		logger:   logger,
		observer: observer,
	}
}

// Fit computes the viewport for fs and issues at most one camera command to r.
// An empty or entirely unreadable feature set is a no-op, not an error.
func (f *Fitter) Fit(fs []entity.Feature, r Renderer, opts Options) (Result, error) {
	opts = opts.normalized()

	coords, skipped := f.collect(fs)

	box, ok := valueobject.BoundingBoxFromPoints(coords)
	if !ok {
		f.observer.ObserveFit(string(OutcomeNoOp), false)
		f.logger.Debug("no coordinates to fit",
			zap.Int("features", len(fs)),
			zap.Int("skipped", skipped),
		)
		return Result{Outcome: OutcomeNoOp, Skipped: skipped}, nil
	}

	if box.IsPoint() {
		return f.focus(box.SouthWest, r, opts, skipped)
	}
	return f.fitBounds(box, r, opts, skipped)
}

func (f *Fitter) focus(center valueobject.LatLon, r Renderer, opts Options, skipped int) (Result, error) {
	zoom := min(opts.MaxZoom, r.CurrentZoom()+opts.ZoomBoost, ZoomCeiling)
	if rendererMax, ok := r.MaxZoom(); ok {
		zoom = min(zoom, rendererMax)
	}

	target := valueobject.NewFocusPoint(center, zoom)
	if err := r.FocusOn(center, zoom, opts.AnimationDuration); err != nil {
		return Result{}, fmt.Errorf("focusing viewport: %w", err)
	}

	f.observer.ObserveFit(string(OutcomeFocus), opts.AnimationDuration > 0)
	return Result{
		Outcome:  OutcomeFocus,
		Target:   target,
		Duration: opts.AnimationDuration,
		Skipped:  skipped,
	}, nil
}

func (f *Fitter) fitBounds(box *valueobject.BoundingBox, r Renderer, opts Options, skipped int) (Result, error) {
	duration := opts.AnimationDuration
	if err := animatedFitAvailable(r); err != nil {
		f.logger.Debug("falling back to immediate fit", zap.Error(err))
		duration = 0
	}

	target := valueobject.NewFitBounds(box, opts.Padding, opts.MaxZoom)
	if err := r.FitToBounds(box, opts.Padding, opts.MaxZoom, duration); err != nil {
		return Result{}, fmt.Errorf("fitting viewport: %w", err)
	}

	f.observer.ObserveFit(string(OutcomeFit), duration > 0)
	return Result{
		Outcome:  OutcomeFit,
		Target:   target,
		Duration: duration,
		Skipped:  skipped,
	}, nil
}

func animatedFitAvailable(r Renderer) error {
	s, ok := r.(AnimatedFitSupporter)
	if !ok || !s.SupportsAnimatedFit() {
		return fmt.Errorf("%w: animated fit not supported", domain.ErrRendererUnavailable)
	}
	return nil
}

func (f *Fitter) collect(fs []entity.Feature) ([]valueobject.LatLon, int) {
	var coords []valueobject.LatLon
	skipped := 0

	for i, feature := range fs {
		c, err := ExtractCoordinates(feature)
		if err != nil {
			skipped++
			f.observer.ObserveMalformedGeometry(string(feature.GeometryType()))
			f.logger.Warn("skipping feature with malformed geometry",
				zap.Int("index", i),
				zap.String("feature_id", feature.ID),
				zap.String("geometry_type", string(feature.GeometryType())),
				zap.Error(err),
			)
			continue
		}
		coords = append(coords, c...)
	}

	return coords, skipped
}
