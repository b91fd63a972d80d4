package response

import (
	"github.com/marcos-nsantos/detection-map-backend/internal/domain/entity"
	"github.com/marcos-nsantos/detection-map-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/mapview"
	"github.com/marcos-nsantos/detection-map-backend/internal/usecase/viewport"
)

// PopupDateLayout is how detection dates are shown in popups.
const PopupDateLayout = "2006-01-02"

const CameraNoOp = "noop"

type MapFeature struct {
	ID         string            `json:"id,omitempty"`
	Type       string            `json:"type"`
	Geometry   *entity.Geometry  `json:"geometry"`
	Properties entity.Properties `json:"properties"`
	Popup      *PopupResponse    `json:"popup,omitempty"`
}

type PopupResponse struct {
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	DetectionDate string `json:"detection_date,omitempty"`
	VideoID       string `json:"video_id,omitempty"`
}

type LatLonResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type BoundsResponse struct {
	SouthWest LatLonResponse `json:"south_west"`
	NorthEast LatLonResponse `json:"north_east"`
}

type CameraResponse struct {
	Action     string          `json:"action"`
	Center     *LatLonResponse `json:"center,omitempty"`
	Zoom       *float64        `json:"zoom,omitempty"`
	Bounds     *BoundsResponse `json:"bounds,omitempty"`
	Padding    *[2]int         `json:"padding,omitempty"`
	MaxZoom    *float64        `json:"max_zoom,omitempty"`
	DurationMS int64           `json:"duration_ms"`
	Animate    bool            `json:"animate"`
}

type FilterResponse struct {
	Types map[string]bool `json:"types"`
	Query string          `json:"q"`
}

type MapViewResponse struct {
	Type     string         `json:"type"`
	Features []MapFeature   `json:"features"`
	Total    int            `json:"total"`
	Visible  int            `json:"visible"`
	Skipped  int            `json:"skipped"`
	Filter   FilterResponse `json:"filter"`
	Camera   CameraResponse `json:"camera"`
}

type TileProviderResponse struct {
	Name        string `json:"name"`
	Attribution string `json:"attribution"`
	URL         string `json:"url"`
}

type InitialCameraResponse struct {
	Center LatLonResponse `json:"center"`
	Zoom   float64        `json:"zoom"`
}

type TilesResponse struct {
	Providers []TileProviderResponse `json:"providers"`
	Initial   InitialCameraResponse  `json:"initial"`
}

// PopupFromProperties builds the popup of a feature. Features without a name
// get no popup.
func PopupFromProperties(props entity.Properties) *PopupResponse {
	name, ok := props.Name()
	if !ok {
		return nil
	}

	popup := &PopupResponse{
		Title:       name,
		Description: props.Description(),
	}
	if date, ok := props.DetectionDate(); ok {
		popup.DetectionDate = date.Format(PopupDateLayout)
	}
	if videoID, ok := props.VideoID(); ok {
		popup.VideoID = videoID
	}
	return popup
}

func MapFeatureFromEntity(f entity.Feature) MapFeature {
	typ := f.Type
	if typ == "" {
		typ = entity.FeatureType
	}
	return MapFeature{
		ID:         f.ID,
		Type:       typ,
		Geometry:   f.Geometry,
		Properties: f.Properties,
		Popup:      PopupFromProperties(f.Properties),
	}
}

func FilterFromState(state valueobject.FilterState) FilterResponse {
	types := make(map[string]bool, len(valueobject.KnownGeometryTypes))
	for _, t := range valueobject.KnownGeometryTypes {
		types[string(t)] = state.IsTypeEnabled(t)
	}
	return FilterResponse{Types: types, Query: state.NameQuery}
}

func latLon(l valueobject.LatLon) LatLonResponse {
	return LatLonResponse{Lat: l.Lat, Lon: l.Lon}
}

func CameraFromCommand(cmd *viewport.Command) CameraResponse {
	if cmd == nil {
		return CameraResponse{Action: CameraNoOp}
	}

	camera := CameraResponse{
		Action:     string(cmd.Kind),
		DurationMS: cmd.Duration.Milliseconds(),
		Animate:    cmd.Duration > 0,
	}
	switch cmd.Kind {
	case viewport.CommandFocusOn:
		center := latLon(cmd.Center)
		zoom := cmd.Zoom
		camera.Center = &center
		camera.Zoom = &zoom
	case viewport.CommandFitToBounds:
		padding := [2]int(cmd.Padding)
		maxZoom := cmd.MaxZoom
		camera.Padding = &padding
		camera.MaxZoom = &maxZoom
		if cmd.Box != nil {
			camera.Bounds = &BoundsResponse{
				SouthWest: latLon(cmd.Box.SouthWest),
				NorthEast: latLon(cmd.Box.NorthEast),
			}
		}
	}
	return camera
}

func MapViewFromResult(result *mapview.ComputeResult, state valueobject.FilterState) MapViewResponse {
	features := make([]MapFeature, len(result.Visible))
	for i, f := range result.Visible {
		features[i] = MapFeatureFromEntity(f)
	}

	return MapViewResponse{
		Type:     "FeatureCollection",
		Features: features,
		Total:    result.Total,
		Visible:  len(result.Visible),
		Skipped:  result.Viewport.Skipped,
		Filter:   FilterFromState(state),
		Camera:   CameraFromCommand(result.Command),
	}
}

func TilesFromCatalogue(providers []mapview.TileProvider, initial mapview.InitialCamera) TilesResponse {
	resp := TilesResponse{
		Providers: make([]TileProviderResponse, len(providers)),
		Initial: InitialCameraResponse{
			Center: latLon(initial.Center),
			Zoom:   initial.Zoom,
		},
	}
	for i, p := range providers {
		resp.Providers[i] = TileProviderResponse{
			Name:        p.Name,
			Attribution: p.Attribution,
			URL:         p.URL,
		}
	}
	return resp
}
