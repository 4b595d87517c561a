package image

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContentMode(t *testing.T) {
	for _, mode := range []ContentMode{ScaleToFill, ScaleAspectFit, ScaleAspectFill, Center} {
		parsed, err := ParseContentMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}

	parsed, err := ParseContentMode(" Scale-Aspect-Fill ")
	require.NoError(t, err)
	assert.Equal(t, ScaleAspectFill, parsed)

	_, err = ParseContentMode("stretch")
	assert.ErrorIs(t, err, ErrUnknownContentMode)
}

func TestContentMode_String(t *testing.T) {
	assert.Equal(t, "center", Center.String())
	assert.Equal(t, "content_mode(42)", ContentMode(42).String())
	assert.False(t, ContentMode(42).Valid())
	assert.True(t, ScaleToFill.Valid())
}
