package view

import (
	"bytes"
	img "image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lazyimage/internal/image"
)

func blue(w, h int) img.Image {
	m := img.NewRGBA(img.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, color.RGBA{B: 255, A: 255})
		}
	}
	return m
}

func TestImageView_Defaults(t *testing.T) {
	v := NewImageView(0, 10)

	assert.Nil(t, v.Image())
	assert.Equal(t, image.ScaleToFill, v.ContentMode())
	assert.Equal(t, color.Transparent, v.BackgroundColor())
	assert.Equal(t, img.Rect(0, 0, 1, 10), v.Bounds())
}

func TestImageView_Setters(t *testing.T) {
	v := NewImageView(4, 4)
	src := blue(2, 2)

	v.SetImage(src)
	v.SetContentMode(image.Center)
	v.SetBackgroundColor(color.White)

	assert.Same(t, src, v.Image())
	assert.Equal(t, image.Center, v.ContentMode())
	assert.Equal(t, color.White, v.BackgroundColor())
}

func TestImageView_WritePNG(t *testing.T) {
	v := NewImageView(20, 10)
	v.SetImage(blue(10, 10))
	v.SetContentMode(image.ScaleAspectFit)
	v.SetBackgroundColor(color.White)

	var buf bytes.Buffer
	require.NoError(t, v.WritePNG(&buf))

	out, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Rect(0, 0, 20, 10), out.Bounds())

	r, g, b, _ := out.At(10, 5).RGBA()
	assert.Less(t, r, uint32(0x1000))
	assert.Less(t, g, uint32(0x1000))
	assert.Greater(t, b, uint32(0xF000))

	r, g, b, _ = out.At(1, 5).RGBA()
	assert.Greater(t, r, uint32(0xF000))
	assert.Greater(t, g, uint32(0xF000))
	assert.Greater(t, b, uint32(0xF000))
}
