package request

import (
	"time"

	"github.com/marcos-nsantos/detection-map-backend/internal/domain/entity"
)

type CreateInformationRequest struct {
	Name          string          `json:"name" binding:"required,max=255"`
	Description   string          `json:"description"`
	DetectionDate *time.Time      `json:"detection_date"`
	GeoJSON       *entity.Feature `json:"geojson" binding:"required"`
}

type ListInformationRequest struct {
	Page    int      `form:"page" binding:"omitempty,min=1"`
	PerPage int      `form:"per_page" binding:"omitempty,min=1,max=100"`
	MinLat  *float64 `form:"min_lat" binding:"omitempty,min=-90,max=90"`
	MaxLat  *float64 `form:"max_lat" binding:"omitempty,min=-90,max=90"`
	MinLng  *float64 `form:"min_lng" binding:"omitempty,min=-180,max=180"`
	MaxLng  *float64 `form:"max_lng" binding:"omitempty,min=-180,max=180"`
}

// HasBoundingBox reports whether all four bounds were given.
func (r ListInformationRequest) HasBoundingBox() bool {
	return r.MinLat != nil && r.MaxLat != nil && r.MinLng != nil && r.MaxLng != nil
}
