package image

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solid(3, 2, red)))

	img, format, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
}

func TestDecode_Empty(t *testing.T) {
	_, _, err := Decode(nil)
	assert.ErrorIs(t, err, ErrEmptyData)
}

func TestDecode_Garbage(t *testing.T) {
	_, _, err := Decode([]byte("<html>not found</html>"))
	assert.ErrorIs(t, err, image.ErrFormat)
}

func TestEncodeJPEG_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeJPEG(&buf, solid(16, 16, red)))

	img, format, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assertNear(t, red, img.At(8, 8))
}

func TestEncodeJPEG_Deterministic(t *testing.T) {
	src := solid(16, 16, red)

	var first, second bytes.Buffer
	require.NoError(t, EncodeJPEG(&first, src))
	require.NoError(t, EncodeJPEG(&second, src))

	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestEncodeJPEG_Nil(t *testing.T) {
	assert.Error(t, EncodeJPEG(&bytes.Buffer{}, nil))
}
