package viewport

import (
	"bytes"
	"fmt"
	"math"

	"github.com/goccy/go-json"
	"github.com/paulmach/orb"

	"github.com/marcos-nsantos/detection-map-backend/internal/domain"
	"github.com/marcos-nsantos/detection-map-backend/internal/domain/entity"
	"github.com/marcos-nsantos/detection-map-backend/internal/domain/valueobject"
)

// ExtractCoordinates returns the coordinates of f that take part in bounds
// computation, converted to (lat, lon). Points yield their position, polygons
// every vertex of the outer ring; holes and unrecognized types yield nothing.
func ExtractCoordinates(f entity.Feature) ([]valueobject.LatLon, error) {
	switch f.GeometryType() {
	case valueobject.GeometryPoint:
		p, err := decodePoint(f.Geometry.Coordinates)
		if err != nil {
			return nil, err
		}
		return []valueobject.LatLon{valueobject.LatLonFromPoint(p)}, nil

	case valueobject.GeometryPolygon:
		ring, err := decodeOuterRing(f.Geometry.Coordinates)
		if err != nil {
			return nil, err
		}
		coords := make([]valueobject.LatLon, 0, len(ring))
		for _, p := range ring {
			coords = append(coords, valueobject.LatLonFromPoint(p))
		}
		return coords, nil

	default:
		return nil, nil
	}
}

func decodePoint(raw []byte) (orb.Point, error) {
	if len(raw) == 0 {
		return orb.Point{}, fmt.Errorf("%w: point has no coordinates", domain.ErrMalformedGeometry)
	}
	return decodePosition(raw)
}

// decodeOuterRing reads only the first ring. Holes are never decoded, so a
// broken hole does not reject an otherwise usable polygon.
func decodeOuterRing(raw []byte) (orb.Ring, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: polygon has no coordinates", domain.ErrMalformedGeometry)
	}

	var rings []json.RawMessage
	if err := json.Unmarshal(raw, &rings); err != nil {
		return nil, fmt.Errorf("%w: decoding polygon: %v", domain.ErrMalformedGeometry, err)
	}
	if len(rings) == 0 {
		return nil, fmt.Errorf("%w: polygon has no outer ring", domain.ErrMalformedGeometry)
	}

	var positions []json.RawMessage
	if err := json.Unmarshal(rings[0], &positions); err != nil {
		return nil, fmt.Errorf("%w: decoding outer ring: %v", domain.ErrMalformedGeometry, err)
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("%w: polygon has no outer ring", domain.ErrMalformedGeometry)
	}

	ring := make(orb.Ring, 0, len(positions))
	for i, position := range positions {
		p, err := decodePosition(position)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		ring = append(ring, p)
	}

	return ring, nil
}

// decodePosition reads [lon, lat, ...]. Values after the first two, such as
// altitude, are ignored whatever they hold.
func decodePosition(raw []byte) (orb.Point, error) {
	var values []json.RawMessage
	if err := json.Unmarshal(raw, &values); err != nil {
		return orb.Point{}, fmt.Errorf("%w: decoding position: %v", domain.ErrMalformedGeometry, err)
	}
	if len(values) < 2 {
		return orb.Point{}, fmt.Errorf("%w: position has %d values", domain.ErrMalformedGeometry, len(values))
	}

	var lonLat [2]float64
	for i := range lonLat {
		if string(bytes.TrimSpace(values[i])) == "null" {
			return orb.Point{}, fmt.Errorf("%w: position value %d is null", domain.ErrMalformedGeometry, i)
		}
		if err := json.Unmarshal(values[i], &lonLat[i]); err != nil {
			return orb.Point{}, fmt.Errorf("%w: position value %d: %v", domain.ErrMalformedGeometry, i, err)
		}
		if math.IsNaN(lonLat[i]) || math.IsInf(lonLat[i], 0) {
			return orb.Point{}, fmt.Errorf("%w: non-finite position", domain.ErrMalformedGeometry)
		}
	}

	return orb.Point{lonLat[0], lonLat[1]}, nil
}
