package entity

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/marcos-nsantos/detection-map-backend/internal/domain/valueobject"
)

const FeatureType = "Feature"

// VideoIDKeys are the property names a video id may be stored under, in
// lookup priority order.
var VideoIDKeys = []string{"video", "youtube", "youtubeId", "videoId"}

var detectionDateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// Feature is a GeoJSON feature as stored upstream. Coordinates stay raw until
// a consumer decodes them for the geometry type, so one malformed geometry
// does not prevent loading the rest of a collection.
type Feature struct {
	ID         string     `json:"id,omitempty"`
	Type       string     `json:"type"`
	Geometry   *Geometry  `json:"geometry"`
	Properties Properties `json:"properties"`
}

type Geometry struct {
	Type        valueobject.GeometryType `json:"type"`
	Coordinates json.RawMessage          `json:"coordinates"`
}

func NewFeature(id string, geometry *Geometry, props Properties) Feature {
	return Feature{
		ID:         id,
		Type:       FeatureType,
		Geometry:   geometry,
		Properties: props,
	}
}

// GeometryType returns the geometry tag, or "" when the feature has no geometry.
func (f Feature) GeometryType() valueobject.GeometryType {
	if f.Geometry == nil {
		return ""
	}
	return f.Geometry.Type
}

type Properties map[string]any

func (p Properties) Name() (string, bool) {
	return p.stringValue("name")
}

func (p Properties) Description() string {
	s, _ := p.stringValue("description")
	return s
}

func (p Properties) DetectionDate() (time.Time, bool) {
	raw, ok := p.stringValue("detection_date")
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range detectionDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// VideoID returns the first non-empty value found under VideoIDKeys.
func (p Properties) VideoID() (string, bool) {
	for _, key := range VideoIDKeys {
		if s, ok := p.stringValue(key); ok {
			return s, true
		}
	}
	return "", false
}

func (p Properties) stringValue(key string) (string, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}
