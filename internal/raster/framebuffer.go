// Package raster is the host pipeline for the quad shader: it runs the four
// vertex invocations, rasterizes the projected quad with screen-space-linear
// varying interpolation, and feeds every covered pixel through the fragment
// stage.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/Faultbox/spinquad/pkg/shader"
)

// Framebuffer is an RGBA render target.
type Framebuffer struct {
	Width  int
	Height int
	img    *image.RGBA
}

// NewFramebuffer creates a framebuffer of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Clear fills the framebuffer with a single color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := 0; i < len(fb.img.Pix); i += 4 {
		fb.img.Pix[i] = c.R
		fb.img.Pix[i+1] = c.G
		fb.img.Pix[i+2] = c.B
		fb.img.Pix[i+3] = c.A
	}
}

// BlendPixel composites a shader color over the pixel at (x, y) with
// straight-alpha source-over blending. Out-of-bounds writes are dropped.
func (fb *Framebuffer) BlendPixel(x, y int, c shader.Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}

	i := fb.img.PixOffset(x, y)
	a := clamp01(c.A)
	inv := 1 - a

	fb.img.Pix[i] = ftou8(clamp01(c.R)*a + float32(fb.img.Pix[i])/255*inv)
	fb.img.Pix[i+1] = ftou8(clamp01(c.G)*a + float32(fb.img.Pix[i+1])/255*inv)
	fb.img.Pix[i+2] = ftou8(clamp01(c.B)*a + float32(fb.img.Pix[i+2])/255*inv)
	fb.img.Pix[i+3] = ftou8(a + float32(fb.img.Pix[i+3])/255*inv)
}

// At returns the pixel at (x, y).
func (fb *Framebuffer) At(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.img.RGBAAt(x, y)
}

// Image exposes the underlying image for blitting and encoding.
func (fb *Framebuffer) Image() *image.RGBA {
	return fb.img
}

// SavePNG writes the framebuffer to a PNG file, creating the directory if
// needed.
func (fb *Framebuffer) SavePNG(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, fb.img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func ftou8(v float32) uint8 {
	return uint8(v*255 + 0.5)
}
