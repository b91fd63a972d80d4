package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/disintegration/imaging"

	"github.com/marcos-nsantos/detection-map-backend/internal/domain"
)

const (
	DefaultMaxImageSide = 2048
	DefaultJPEGQuality  = 85
)

var supportedContentTypes = map[string]string{
	"image/jpeg": "jpeg",
	"image/jpg":  "jpeg",
	"image/png":  "png",
}

// ImageProcessor fits detection pictures inside a square of maxSide pixels.
// Pictures already within bounds are stored untouched.
type ImageProcessor struct {
	maxSide int
	quality int
}

func NewImageProcessor(maxSide, quality int) *ImageProcessor {
	if maxSide <= 0 {
		maxSide = DefaultMaxImageSide
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	return &ImageProcessor{
		maxSide: maxSide,
		quality: quality,
	}
}

func (p *ImageProcessor) Process(reader io.Reader, contentType string) (io.Reader, int64, int, int, error) {
	if _, ok := supportedContentTypes[contentType]; !ok {
		return nil, 0, 0, 0, fmt.Errorf("%w: %s", domain.ErrUnsupportedImageType, contentType)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("reading image: %w", err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("%w: decoding: %v", domain.ErrUnsupportedImageType, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if width <= p.maxSide && height <= p.maxSide {
		return bytes.NewReader(data), int64(len(data)), width, height, nil
	}

	img = imaging.Fit(img, p.maxSide, p.maxSide, imaging.Lanczos)
	bounds = img.Bounds()

	var buf bytes.Buffer
	switch format {
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, 0, 0, 0, fmt.Errorf("encoding png: %w", err)
		}
	default:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality}); err != nil {
			return nil, 0, 0, 0, fmt.Errorf("encoding jpeg: %w", err)
		}
	}

	return bytes.NewReader(buf.Bytes()), int64(buf.Len()), bounds.Dx(), bounds.Dy(), nil
}
