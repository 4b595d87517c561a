package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MaxQuality is the JPEG quality used for every cached write.
const MaxQuality = 100

var ErrEmptyData = errors.New("image: empty data")

// Decode decodes any registered format and reports the format name.
func Decode(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

func EncodeJPEG(w io.Writer, img image.Image) error {
	if img == nil {
		return errors.New("image: nothing to encode")
	}

	options := &jpeg.Options{
		Quality: MaxQuality,
	}

	return jpeg.Encode(w, img, options)
}
