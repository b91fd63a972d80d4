package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/detection-map-backend/internal/infrastructure/config"
)

func TestNewS3Storage(t *testing.T) {
	t.Run("requires a bucket", func(t *testing.T) {
		_, err := NewS3Storage(config.S3Config{Region: "us-east-1"})
		assert.Error(t, err)
	})

	t.Run("public url wins", func(t *testing.T) {
		s, err := NewS3Storage(config.S3Config{
			Region:    "eu-west-3",
			Bucket:    "detections",
			Endpoint:  "http://minio:9000",
			PublicURL: "https://cdn.example.com/",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/information/a/b.jpg", s.GetURL("information/a/b.jpg"))
	})

	t.Run("path style endpoint", func(t *testing.T) {
		s, err := NewS3Storage(config.S3Config{
			Region:       "us-east-1",
			Bucket:       "detections",
			Endpoint:     "http://minio:9000/",
			UsePathStyle: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "http://minio:9000/detections/k.png", s.GetURL("k.png"))
	})

	t.Run("aws virtual hosted", func(t *testing.T) {
		s, err := NewS3Storage(config.S3Config{Region: "eu-west-3", Bucket: "detections"})
		require.NoError(t, err)
		assert.Equal(t, "https://detections.s3.eu-west-3.amazonaws.com/a%20b.jpg", s.GetURL("a b.jpg"))
	})
}

func TestS3Storage_GetSignedURL(t *testing.T) {
	s, err := NewS3Storage(config.S3Config{
		Region:          "us-east-1",
		Bucket:          "detections",
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
		Endpoint:        "http://minio:9000",
		UsePathStyle:    true,
	})
	require.NoError(t, err)

	signed, err := s.GetSignedURL(context.Background(), "information/x/y.jpg", 15*time.Minute)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(signed, "http://minio:9000/detections/information/x/y.jpg?"))
	assert.Contains(t, signed, "X-Amz-Expires=900")
	assert.Contains(t, signed, "X-Amz-Signature=")
}
