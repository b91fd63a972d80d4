package valueobject

type GeometryType string

const (
	GeometryPoint   GeometryType = "Point"
	GeometryPolygon GeometryType = "Polygon"
)

// KnownGeometryTypes lists the geometry kinds the map can filter and fit.
var KnownGeometryTypes = []GeometryType{GeometryPoint, GeometryPolygon}

func (t GeometryType) IsKnown() bool {
	return t == GeometryPoint || t == GeometryPolygon
}

func ParseGeometryType(s string) (GeometryType, bool) {
	for _, t := range KnownGeometryTypes {
		if string(t) == s {
			return t, true
		}
	}
	return GeometryType(s), false
}
