package valueobject

import "github.com/paulmach/orb"

type BoundingBox struct {
	SouthWest LatLon
	NorthEast LatLon
}

func NewBoundingBox(southWest, northEast LatLon) *BoundingBox {
	return &BoundingBox{
		SouthWest: southWest,
		NorthEast: northEast,
	}
}

// BoundingBoxFromPoints returns the smallest box holding every point, or
// false when points is empty.
func BoundingBoxFromPoints(points []LatLon) (*BoundingBox, bool) {
	if len(points) == 0 {
		return nil, false
	}

	bound := points[0].Point().Bound()
	for _, p := range points[1:] {
		bound = bound.Extend(p.Point())
	}

	return BoundingBoxFromBound(bound), true
}

func BoundingBoxFromBound(b orb.Bound) *BoundingBox {
	return &BoundingBox{
		SouthWest: LatLonFromPoint(b.Min),
		NorthEast: LatLonFromPoint(b.Max),
	}
}

func (bb *BoundingBox) Bound() orb.Bound {
	return orb.Bound{Min: bb.SouthWest.Point(), Max: bb.NorthEast.Point()}
}

func (bb *BoundingBox) IsValid() bool {
	return bb.SouthWest.Lat <= bb.NorthEast.Lat &&
		bb.SouthWest.Lon <= bb.NorthEast.Lon &&
		bb.SouthWest.IsValid() && bb.NorthEast.IsValid()
}

// IsPoint reports whether the box collapsed to a single coordinate.
func (bb *BoundingBox) IsPoint() bool {
	return bb.SouthWest == bb.NorthEast
}
