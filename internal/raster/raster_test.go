package raster

import (
	"image/color"
	"testing"

	"github.com/Faultbox/spinquad/pkg/math"
	"github.com/Faultbox/spinquad/pkg/shader"
)

var background = color.RGBA{R: 10, G: 20, B: 30, A: 255}

func newTarget(w, h int) (*Framebuffer, *Rasterizer) {
	fb := NewFramebuffer(w, h)
	fb.Clear(background)
	return fb, NewRasterizer(fb)
}

// countShaded counts pixels that no longer match the background.
func countShaded(fb *Framebuffer) int {
	n := 0
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if fb.At(x, y) != background {
				n++
			}
		}
	}
	return n
}

func solidTexture(size int, c color.RGBA) *Texture {
	return NewCheckerTexture(size, size, c, c)
}

func TestDrawQuadIdentityCoverage(t *testing.T) {
	fb, r := newTarget(32, 32)
	tex := solidTexture(16, color.RGBA{R: 200, G: 50, B: 50, A: 255})

	cfg := shader.Config{FOV: 90, CullBack: true}
	r.DrawQuad(cfg, tex, math.Vec2{X: 16, Y: 16}, shader.White)

	shaded := countShaded(fb)
	// An unprojected 16x16 quad covers ~256 pixels; allow edge slack.
	if shaded < 200 || shaded > 300 {
		t.Errorf("shaded %d pixels, want ~256", shaded)
	}

	if got := fb.At(16, 16); got.R != 200 || got.G != 50 || got.B != 50 {
		t.Errorf("center pixel = %v, want texture color", got)
	}
	if got := fb.At(2, 2); got != background {
		t.Errorf("pixel outside quad = %v, want background", got)
	}
}

func TestDrawQuadBackFaceCulled(t *testing.T) {
	fb, r := newTarget(32, 32)
	tex := solidTexture(16, color.RGBA{R: 255, A: 255})

	cfg := shader.Config{FOV: 90, CullBack: true, Angles: math.Vec3{Y: 135}}
	r.DrawQuad(cfg, tex, math.Vec2{X: 16, Y: 16}, shader.White)

	if shaded := countShaded(fb); shaded != 0 {
		t.Errorf("culled back face shaded %d pixels, want 0", shaded)
	}

	// Culling off: the back face renders (mirrored).
	cfg.CullBack = false
	r.DrawQuad(cfg, tex, math.Vec2{X: 16, Y: 16}, shader.White)
	if shaded := countShaded(fb); shaded == 0 {
		t.Error("back face with culling disabled shaded nothing")
	}
}

func TestDrawQuadRotatedShrinks(t *testing.T) {
	tex := solidTexture(16, color.RGBA{G: 255, A: 255})
	center := math.Vec2{X: 16, Y: 16}

	fbFlat, rFlat := newTarget(32, 32)
	rFlat.DrawQuad(shader.Config{FOV: 90}, tex, center, shader.White)

	fbTilted, rTilted := newTarget(32, 32)
	rTilted.DrawQuad(shader.Config{FOV: 90, Angles: math.Vec3{Y: 60}}, tex, center, shader.White)

	flat := countShaded(fbFlat)
	tilted := countShaded(fbTilted)
	if tilted >= flat {
		t.Errorf("tilted quad covers %d pixels, flat covers %d; want fewer when tilted", tilted, flat)
	}
	if tilted == 0 {
		t.Error("tilted quad covers nothing")
	}
}

func TestDrawQuadTextureMirrorsOnBackFace(t *testing.T) {
	// Half red, half blue texture: seen from behind, the halves swap sides.
	tex := NewCheckerTexture(16, 8, color.RGBA{R: 255, A: 255}, color.RGBA{B: 255, A: 255})

	center := math.Vec2{X: 16, Y: 16}

	front, rFront := newTarget(32, 32)
	rFront.DrawQuad(shader.Config{FOV: 90}, tex, center, shader.White)

	back, rBack := newTarget(32, 32)
	rBack.DrawQuad(shader.Config{FOV: 90, Angles: math.Vec3{Y: 180}}, tex, center, shader.White)

	fl := front.At(11, 11)
	fr := front.At(21, 11)
	bl := back.At(11, 11)
	br := back.At(21, 11)

	if fl.R < 200 || fr.B < 200 {
		t.Fatalf("front: left %v right %v, want red left / blue right", fl, fr)
	}
	if bl.B < 200 || br.R < 200 {
		t.Errorf("back: left %v right %v, want mirrored blue left / red right", bl, br)
	}
}

func TestDrawQuadParallelMatchesSerial(t *testing.T) {
	tex := NewCheckerTexture(32, 4, color.RGBA{R: 255, A: 255}, color.RGBA{G: 255, A: 255})
	cfg := shader.Config{FOV: 75, Angles: math.Vec3{X: 30, Y: 45, Z: 15}}
	center := math.Vec2{X: 32, Y: 32}

	serial, rSerial := newTarget(64, 64)
	rSerial.DrawQuad(cfg, tex, center, shader.White)

	parallel, rParallel := newTarget(64, 64)
	rParallel.Workers = 4
	rParallel.DrawQuad(cfg, tex, center, shader.White)

	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if serial.At(x, y) != parallel.At(x, y) {
				t.Fatalf("pixel (%d,%d): serial %v, parallel %v", x, y, serial.At(x, y), parallel.At(x, y))
			}
		}
	}
}

func TestDrawLabelMarksPixels(t *testing.T) {
	fb, _ := newTarget(64, 32)
	fb.DrawLabel(2, 14, "fov 90", color.RGBA{R: 255, G: 255, B: 255, A: 255})

	if countShaded(fb) == 0 {
		t.Error("label rendered no pixels")
	}
}
