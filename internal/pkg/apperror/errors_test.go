package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/detection-map-backend/internal/domain"
	"github.com/marcos-nsantos/detection-map-backend/internal/pkg/apperror"
)

func TestFromDomain(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"information not found", domain.ErrInformationNotFound, "NOT_FOUND", http.StatusNotFound},
		{"wrapped image not found", fmt.Errorf("loading: %w", domain.ErrImageNotFound), "NOT_FOUND", http.StatusNotFound},
		{"invalid bbox", domain.ErrInvalidBoundingBox, "INVALID_BOUNDING_BOX", http.StatusBadRequest},
		{"malformed geometry", fmt.Errorf("%w: ring 0 empty", domain.ErrMalformedGeometry), "MALFORMED_GEOMETRY", http.StatusBadRequest},
		{"unsupported image", domain.ErrUnsupportedImageType, "INVALID_TYPE", http.StatusBadRequest},
		{"source unavailable", domain.ErrSourceUnavailable, "UNAVAILABLE", http.StatusServiceUnavailable},
		{"app error kept", apperror.BadRequest("nope"), "BAD_REQUEST", http.StatusBadRequest},
		{"unknown", errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := apperror.FromDomain(tt.err)

			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, tt.status, got.StatusCode)
		})
	}
}

func TestWrap(t *testing.T) {
	wrapped := apperror.Wrap(apperror.NotFound("image"), "loading image")
	assert.Equal(t, http.StatusNotFound, wrapped.StatusCode)
	assert.Equal(t, "loading image", wrapped.Message)

	internal := apperror.Wrap(errors.New("boom"), "loading image")
	assert.Equal(t, http.StatusInternalServerError, apperror.StatusCode(internal))
	assert.True(t, apperror.Is(internal))
}
