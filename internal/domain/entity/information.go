package entity

import (
	"time"

	"github.com/google/uuid"
)

// Information is a stored detection record: its GeoJSON feature plus the
// descriptive columns kept alongside it.
type Information struct {
	ID            uuid.UUID
	Name          string
	Description   string
	DetectionDate *time.Time
	Feature       Feature
	Images        []Image
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewInformation(name, description string, detectionDate *time.Time, feature Feature) *Information {
	now := time.Now().UTC()
	id := uuid.New()
	feature.ID = id.String()
	if feature.Type == "" {
		feature.Type = FeatureType
	}
	return &Information{
		ID:            id,
		Name:          name,
		Description:   description,
		DetectionDate: detectionDate,
		Feature:       feature,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
