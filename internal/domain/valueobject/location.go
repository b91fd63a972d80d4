package valueobject

import (
	"math"

	"github.com/paulmach/orb"
)

// LatLon is a coordinate in (latitude, longitude) order. GeoJSON and orb use
// (longitude, latitude); convert with LatLonFromPoint and Point.
type LatLon struct {
	Lat float64
	Lon float64
}

func NewLatLon(lat, lon float64) LatLon {
	return LatLon{Lat: lat, Lon: lon}
}

func LatLonFromPoint(p orb.Point) LatLon {
	return LatLon{Lat: p.Lat(), Lon: p.Lon()}
}

func (l LatLon) Point() orb.Point {
	return orb.Point{l.Lon, l.Lat}
}

func (l LatLon) IsFinite() bool {
	return !math.IsNaN(l.Lat) && !math.IsInf(l.Lat, 0) &&
		!math.IsNaN(l.Lon) && !math.IsInf(l.Lon, 0)
}

func (l LatLon) IsValid() bool {
	return l.IsFinite() &&
		l.Lat >= -90 && l.Lat <= 90 &&
		l.Lon >= -180 && l.Lon <= 180
}
