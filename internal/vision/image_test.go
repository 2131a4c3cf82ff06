package vision_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floodlens/floodlens/internal/vision"
)

func encodePNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		img.Set(x, x, color.RGBA{R: 200, A: 255})
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeUpload_NonImageContentType(t *testing.T) {
	_, err := vision.DecodeUpload("text/plain", []byte("not an image"))
	assert.ErrorIs(t, err, vision.ErrUnsupportedContentType)

	_, err = vision.DecodeUpload("application/pdf", encodePNG(t))
	assert.ErrorIs(t, err, vision.ErrUnsupportedContentType)
}

func TestDecodeUpload_UndecodableBytes(t *testing.T) {
	_, err := vision.DecodeUpload("image/png", []byte{0xde, 0xad, 0xbe, 0xef})
	assert.ErrorIs(t, err, vision.ErrInvalidImage)
}

func TestDecodeUpload_ValidPNG(t *testing.T) {
	img, err := vision.DecodeUpload("image/png", encodePNG(t))
	require.NoError(t, err)
	require.NotNil(t, img)

	assert.Equal(t, 8, img.Bounds().Dx())
	assert.IsType(t, &image.NRGBA{}, img, "uploads are normalized to NRGBA before encoding")
}
