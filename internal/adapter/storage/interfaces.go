package storage

import (
	"context"
	"io"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

// ImageStorage keeps detection pictures in object storage.
type ImageStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string, size int64) error
	GetURL(key string) string
	GetSignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

// ImageProcessor validates and downsizes an uploaded picture. It returns the
// processed body, its size and its pixel dimensions.
type ImageProcessor interface {
	Process(reader io.Reader, contentType string) (io.Reader, int64, int, int, error)
}
