package domain

import "errors"

var (
	ErrInformationNotFound  = errors.New("information not found")
	ErrImageNotFound        = errors.New("image not found")
	ErrInvalidBoundingBox   = errors.New("invalid bounding box")
	ErrInvalidLocation      = errors.New("invalid location")
	ErrMalformedGeometry    = errors.New("malformed geometry")
	ErrRendererUnavailable  = errors.New("renderer unavailable")
	ErrSourceUnavailable    = errors.New("feature source unavailable")
	ErrUnsupportedImageType = errors.New("unsupported image type")
)
