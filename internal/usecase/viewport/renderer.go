package viewport

import (
	"time"

	"github.com/marcos-nsantos/detection-map-backend/internal/domain/valueobject"
)

// Renderer is the map surface the fitter moves. A zero duration asks for an
// immediate, non-animated camera change.
type Renderer interface {
	CurrentZoom() float64
	MaxZoom() (float64, bool)
	FocusOn(center valueobject.LatLon, zoom float64, duration time.Duration) error
	FitToBounds(box *valueobject.BoundingBox, padding valueobject.Padding, maxZoom float64, duration time.Duration) error
}

// AnimatedFitSupporter is implemented by renderers that can animate a bounds
// fit. Renderers without it get immediate fits.
type AnimatedFitSupporter interface {
	SupportsAnimatedFit() bool
}

type CommandKind string

const (
	CommandFocusOn     CommandKind = "focus_on"
	CommandFitToBounds CommandKind = "fit_to_bounds"
)

type Command struct {
	Kind     CommandKind
	Center   valueobject.LatLon
	Zoom     float64
	Box      *valueobject.BoundingBox
	Padding  valueobject.Padding
	MaxZoom  float64
	Duration time.Duration
}

// Recorder is a Renderer that records camera commands instead of drawing.
// The HTTP layer uses it to hand the computed camera move to the map client.
type Recorder struct {
	zoom     float64
	maxZoom  *float64
	animated bool
	commands []Command
}

func NewRecorder(currentZoom float64, maxZoom *float64, animated bool) *Recorder {
	return &Recorder{
		zoom:     currentZoom,
		maxZoom:  maxZoom,
		animated: animated,
	}
}

func (r *Recorder) CurrentZoom() float64 {
	return r.zoom
}

func (r *Recorder) MaxZoom() (float64, bool) {
	if r.maxZoom == nil {
		return 0, false
	}
	return *r.maxZoom, true
}

func (r *Recorder) SupportsAnimatedFit() bool {
	return r.animated
}

func (r *Recorder) FocusOn(center valueobject.LatLon, zoom float64, duration time.Duration) error {
	r.zoom = zoom
	r.commands = append(r.commands, Command{
		Kind:     CommandFocusOn,
		Center:   center,
		Zoom:     zoom,
		Duration: duration,
	})
	return nil
}

func (r *Recorder) FitToBounds(box *valueobject.BoundingBox, padding valueobject.Padding, maxZoom float64, duration time.Duration) error {
	r.commands = append(r.commands, Command{
		Kind:     CommandFitToBounds,
		Box:      box,
		Padding:  padding,
		MaxZoom:  maxZoom,
		Duration: duration,
	})
	return nil
}

func (r *Recorder) Commands() []Command {
	return r.commands
}

// Last returns the most recent command, or false when none was issued.
func (r *Recorder) Last() (Command, bool) {
	if len(r.commands) == 0 {
		return Command{}, false
	}
	return r.commands[len(r.commands)-1], true
}
