package valueobject

type TargetKind string

const (
	TargetFocusPoint TargetKind = "focus_point"
	TargetFitBounds  TargetKind = "fit_bounds"
)

// Padding is the pixel inset [x, y] kept between fitted bounds and the map edge.
type Padding [2]int

// ViewportTarget is the camera state computed for a feature set. Center and
// Zoom are set for TargetFocusPoint; Box, Padding and MaxZoom for
// TargetFitBounds.
type ViewportTarget struct {
	Kind    TargetKind
	Center  LatLon
	Zoom    float64
	Box     *BoundingBox
	Padding Padding
	MaxZoom float64
}

func NewFocusPoint(center LatLon, zoom float64) *ViewportTarget {
	return &ViewportTarget{
		Kind:   TargetFocusPoint,
		Center: center,
		Zoom:   zoom,
	}
}

func NewFitBounds(box *BoundingBox, padding Padding, maxZoom float64) *ViewportTarget {
	return &ViewportTarget{
		Kind:    TargetFitBounds,
		Box:     box,
		Padding: padding,
		MaxZoom: maxZoom,
	}
}
