package entity

import (
	"time"

	"github.com/google/uuid"
)

type Image struct {
	ID            uuid.UUID
	InformationID uuid.UUID
	URL           string
	Key           string
	MimeType      string
	Size          int64
	Width         int
	Height        int
	PicDate       *time.Time
	CreatedAt     time.Time
}

func NewImage(informationID uuid.UUID, url, key, mimeType string, size int64, width, height int, picDate *time.Time) *Image {
	return &Image{
		ID:            uuid.New(),
		InformationID: informationID,
		URL:           url,
		Key:           key,
		MimeType:      mimeType,
		Size:          size,
		Width:         width,
		Height:        height,
		PicDate:       picDate,
		CreatedAt:     time.Now().UTC(),
	}
}
