package vision

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"strings"

	// Register decoders for the upload formats we accept.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
)

// Intake validation errors. Handlers map these to client errors.
var (
	// ErrUnsupportedContentType is returned when the declared content type
	// is not image/*.
	ErrUnsupportedContentType = errors.New("file must be an image")

	// ErrInvalidImage is returned when the payload cannot be decoded.
	ErrInvalidImage = errors.New("invalid image format")
)

// DecodeUpload gates the image flow: it rejects uploads whose declared
// content type does not begin with "image/", decodes the payload, and
// normalizes it to a 3-channel color representation before any AI call.
func DecodeUpload(contentType string, data []byte) (image.Image, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrUnsupportedContentType
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	// Clone re-renders into NRGBA, so palette and grayscale inputs come
	// out as full color.
	return imaging.Clone(img), nil
}
