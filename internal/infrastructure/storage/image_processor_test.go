package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/detection-map-backend/internal/domain"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := imaging.New(width, height, color.NRGBA{R: 40, G: 120, B: 60, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestImageProcessor_Process(t *testing.T) {
	p := NewImageProcessor(100, 0)

	t.Run("keeps small pictures untouched", func(t *testing.T) {
		data := encodePNG(t, 80, 40)

		out, size, w, h, err := p.Process(bytes.NewReader(data), "image/png")

		require.NoError(t, err)
		assert.Equal(t, 80, w)
		assert.Equal(t, 40, h)
		assert.Equal(t, int64(len(data)), size)
		got, err := io.ReadAll(out)
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("fits large pictures", func(t *testing.T) {
		out, size, w, h, err := p.Process(bytes.NewReader(encodePNG(t, 400, 200)), "image/png")

		require.NoError(t, err)
		assert.Equal(t, 100, w)
		assert.Equal(t, 50, h)

		img, format, err := image.Decode(out)
		require.NoError(t, err)
		assert.Equal(t, "png", format)
		assert.Equal(t, 100, img.Bounds().Dx())
		assert.Positive(t, size)
	})

	t.Run("rejects unsupported content type", func(t *testing.T) {
		_, _, _, _, err := p.Process(strings.NewReader("GIF89a"), "image/gif")
		assert.ErrorIs(t, err, domain.ErrUnsupportedImageType)
	})

	t.Run("rejects undecodable data", func(t *testing.T) {
		_, _, _, _, err := p.Process(strings.NewReader("not an image"), "image/jpeg")
		assert.ErrorIs(t, err, domain.ErrUnsupportedImageType)
	})
}
