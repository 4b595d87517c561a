package services

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lazyimage/internal/view"
)

func TestWeak_ResolvesLiveSurface(t *testing.T) {
	v := view.NewImageView(4, 4)
	ref := Weak(v)

	s, ok := ref.Surface()
	require.True(t, ok)
	assert.Same(t, v, s)
}

func detachedRef() SurfaceRef {
	return Weak(view.NewImageView(4, 4))
}

func TestWeak_DoesNotKeepSurfaceAlive(t *testing.T) {
	ref := detachedRef()

	released := false
	for i := 0; i < 10 && !released; i++ {
		runtime.GC()
		_, ok := ref.Surface()
		released = !ok
	}
	assert.True(t, released)
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "download_failed", DownloadFailed.String())
	assert.Equal(t, "local_save_failed", LocalSaveFailed.String())
	assert.Equal(t, "error_kind(7)", ErrorKind(7).String())
}

func TestErrorHandler_NilIsSafe(t *testing.T) {
	var h ErrorHandler
	assert.NotPanics(t, func() { h.Report(DownloadFailed) })
}
