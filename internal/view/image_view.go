package view

import (
	img "image"
	"image/color"
	"image/png"
	"io"
	"sync"

	"lazyimage/internal/image"
)

// ImageView is an offscreen display surface. It stores what a native
// image view would show and can render that state at its own size.
type ImageView struct {
	mu         sync.RWMutex
	image      img.Image
	mode       image.ContentMode
	background color.Color

	width, height int
	processor     *image.Processor
}

func NewImageView(width, height int) *ImageView {
	return &ImageView{
		width:      max(width, 1),
		height:     max(height, 1),
		mode:       image.ScaleToFill,
		background: color.Transparent,
		processor:  &image.Processor{},
	}
}

func (v *ImageView) SetImage(i img.Image) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.image = i
}

func (v *ImageView) SetContentMode(mode image.ContentMode) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.mode = mode
}

func (v *ImageView) SetBackgroundColor(c color.Color) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.background = c
}

func (v *ImageView) Image() img.Image {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.image
}

func (v *ImageView) ContentMode() image.ContentMode {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.mode
}

func (v *ImageView) BackgroundColor() color.Color {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.background
}

func (v *ImageView) Bounds() img.Rectangle {
	return img.Rect(0, 0, v.width, v.height)
}

// Render lays the current image out with the current content mode.
func (v *ImageView) Render() img.Image {
	v.mu.RLock()
	src, mode, bg := v.image, v.mode, v.background
	v.mu.RUnlock()

	return v.processor.Fit(src, mode, v.width, v.height, bg)
}

func (v *ImageView) WritePNG(w io.Writer) error {
	return png.Encode(w, v.Render())
}
