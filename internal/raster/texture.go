package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/spinquad/pkg/shader"
)

// Filter selects the texture sampling mode.
type Filter int

const (
	FilterNearest Filter = iota
	FilterBilinear
)

// ParseFilter maps a config string to a Filter. Unknown values fall back to
// nearest.
func ParseFilter(name string) Filter {
	if strings.EqualFold(name, "bilinear") {
		return FilterBilinear
	}
	return FilterNearest
}

// Texture is a sampleable RGBA image. It implements shader.Sampler.
type Texture struct {
	Width  int
	Height int
	Filter Filter
	img    *image.RGBA
}

// NewTexture wraps an image as a texture, converting it to RGBA if needed.
func NewTexture(src image.Image, filter Filter) *Texture {
	bounds := src.Bounds()
	rgba, ok := src.(*image.RGBA)
	if !ok || bounds.Min != (image.Point{}) {
		rgba = imageToRGBA(src)
		bounds = rgba.Bounds()
	}
	return &Texture{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Filter: filter,
		img:    rgba,
	}
}

// LoadTexture reads a PNG or TGA file from disk.
func LoadTexture(path string, filter Filter) (*Texture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading texture: %w", err)
	}

	var img image.Image
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, err = DecodeTGA(data)
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}

	return NewTexture(img, filter), nil
}

// NewCheckerTexture builds a two-color checkerboard, handy as a default
// surface when no texture file is configured.
func NewCheckerTexture(size, cell int, a, b color.RGBA) *Texture {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return NewTexture(img, FilterNearest)
}

// Sample looks up the color at texture coordinates (u, v) in [0, 1], clamped
// at the edges.
func (t *Texture) Sample(u, v float32) shader.Color {
	if t.Filter == FilterBilinear {
		return t.sampleBilinear(u, v)
	}
	return t.sampleNearest(u, v)
}

func (t *Texture) sampleNearest(u, v float32) shader.Color {
	x := clampInt(int(u*float32(t.Width)), 0, t.Width-1)
	y := clampInt(int(v*float32(t.Height)), 0, t.Height-1)
	return t.texel(x, y)
}

func (t *Texture) sampleBilinear(u, v float32) shader.Color {
	fx := u*float32(t.Width) - 0.5
	fy := v*float32(t.Height) - 0.5

	x0 := floorInt(fx)
	y0 := floorInt(fy)
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	c00 := t.texel(clampInt(x0, 0, t.Width-1), clampInt(y0, 0, t.Height-1))
	c10 := t.texel(clampInt(x0+1, 0, t.Width-1), clampInt(y0, 0, t.Height-1))
	c01 := t.texel(clampInt(x0, 0, t.Width-1), clampInt(y0+1, 0, t.Height-1))
	c11 := t.texel(clampInt(x0+1, 0, t.Width-1), clampInt(y0+1, 0, t.Height-1))

	top := lerpColor(c00, c10, tx)
	bottom := lerpColor(c01, c11, tx)
	return lerpColor(top, bottom, ty)
}

func (t *Texture) texel(x, y int) shader.Color {
	i := t.img.PixOffset(x, y)
	return shader.Color{
		R: float32(t.img.Pix[i]) / 255,
		G: float32(t.img.Pix[i+1]) / 255,
		B: float32(t.img.Pix[i+2]) / 255,
		A: float32(t.img.Pix[i+3]) / 255,
	}
}

func lerpColor(a, b shader.Color, t float32) shader.Color {
	return shader.Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// imageToRGBA converts any image.Image to *image.RGBA with a zero origin.
func imageToRGBA(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			rgba.Set(x, y, src.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return rgba
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func floorInt(v float32) int {
	i := int(v)
	if v < 0 && float32(i) != v {
		i--
	}
	return i
}
