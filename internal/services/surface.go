package services

import (
	img "image"
	"image/color"
	"weak"

	"lazyimage/internal/image"
)

// Surface is anything that can show an image: a native view behind a
// bridge, or an offscreen view.ImageView.
type Surface interface {
	SetImage(i img.Image)
	SetContentMode(mode image.ContentMode)
	SetBackgroundColor(c color.Color)
}

// SurfaceRef is a non-owning handle on a Surface. Surface reports false
// once the underlying surface is gone.
type SurfaceRef interface {
	Surface() (Surface, bool)
}

type weakRef[T any, P interface {
	*T
	Surface
}] struct {
	ptr weak.Pointer[T]
}

// Weak returns a SurfaceRef that does not keep s alive. When nothing
// else references s it may be collected and the ref resolves to false.
func Weak[T any, P interface {
	*T
	Surface
}](s P) SurfaceRef {
	return weakRef[T, P]{ptr: weak.Make((*T)(s))}
}

func (r weakRef[T, P]) Surface() (Surface, bool) {
	p := r.ptr.Value()
	if p == nil {
		return nil, false
	}
	return P(p), true
}

func apply(s Surface, i img.Image, mode image.ContentMode) {
	s.SetImage(i)
	s.SetContentMode(mode)
	s.SetBackgroundColor(color.White)
}
