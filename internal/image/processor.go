package image

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
)

type Processor struct{}

// Fit lays src out on a width x height canvas filled with background,
// the way a view with the given content mode would show it.
func (p *Processor) Fit(src image.Image, mode ContentMode, width, height int, background color.Color) image.Image {
	dc := gg.NewContext(width, height)
	if background == nil {
		background = color.Transparent
	}
	dc.SetColor(background)
	dc.Clear()

	if src == nil || src.Bounds().Empty() {
		return dc.Image()
	}

	b := src.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())

	var placed image.Image
	switch mode {
	case ScaleToFill:
		placed = p.Resize(src, width, height)
	case ScaleAspectFit:
		scale := math.Min(float64(width)/sw, float64(height)/sh)
		placed = p.Resize(src, scaled(sw, scale), scaled(sh, scale))
	case ScaleAspectFill:
		scale := math.Max(float64(width)/sw, float64(height)/sh)
		placed = p.CropCenter(p.Resize(src, scaled(sw, scale), scaled(sh, scale)), width, height)
	default:
		placed = src
	}

	dc.DrawImageAnchored(placed, width/2, height/2, 0.5, 0.5)
	return dc.Image()
}

// CropCenter cuts a w x h window out of the middle of img. Dimensions
// larger than the image are clamped to it.
func (p *Processor) CropCenter(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	w, h = min(w, b.Dx()), min(h, b.Dy())

	if w == b.Dx() && h == b.Dy() {
		return img
	}

	offX := b.Min.X + (b.Dx()-w)/2
	offY := b.Min.Y + (b.Dy()-h)/2
	crop := image.Rect(offX, offY, offX+w, offY+h)

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, crop.Min, draw.Src)
	return rgba
}

func (p *Processor) Resize(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	return resize.Resize(uint(max(w, 1)), uint(max(h, 1)), img, resize.Lanczos3)
}

func scaled(v, scale float64) int {
	return max(int(math.Round(v*scale)), 1)
}
