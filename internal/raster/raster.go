package raster

import (
	stdmath "math"
	"sync"

	"github.com/Faultbox/spinquad/pkg/math"
	"github.com/Faultbox/spinquad/pkg/shader"
)

// invDepthEpsilon guards the perspective divide at the fragment stage: a
// fragment whose interpolated depth reciprocal is this close to zero sits on
// the camera plane and is skipped instead of dividing by ~0.
const invDepthEpsilon = 1e-6

// screenVertex is one vertex invocation's output mapped into framebuffer
// coordinates (Y down, origin top-left).
type screenVertex struct {
	X, Y     float32
	ScaledUV math.Vec2
	InvDepth float32
	Color    shader.Color
}

// Rasterizer draws shaded quads into a framebuffer.
type Rasterizer struct {
	fb *Framebuffer

	// Workers caps the number of goroutines rasterizing rows; values below 2
	// keep everything on the calling goroutine.
	Workers int
}

// NewRasterizer creates a rasterizer targeting the given framebuffer.
func NewRasterizer(fb *Framebuffer) *Rasterizer {
	return &Rasterizer{fb: fb}
}

// DrawQuad renders one textured quad centered at the given framebuffer
// position. It runs the four vertex invocations (each of which independently
// rebuilds the whole quad), splits the projected quad into the triangles
// (0,1,2) and (0,2,3), and runs the fragment stage for every covered pixel
// with the varyings interpolated linearly in screen space. The facing flag
// is propagated flat.
func (r *Rasterizer) DrawQuad(cfg shader.Config, tex *Texture, center math.Vec2, tint shader.Color) {
	texSize := math.Vec2{X: float32(tex.Width), Y: float32(tex.Height)}
	size := cfg.SurfaceSize(texSize)

	var sv [4]screenVertex
	var facing bool
	for i := 0; i < 4; i++ {
		out := cfg.VertexStage(shader.VertexInput{
			Index:       i,
			Position:    shader.CornerPosition(i, size),
			TextureSize: texSize,
			Color:       tint,
		})

		// The stage works with Y up; the framebuffer has Y down.
		sv[i] = screenVertex{
			X:        center.X + out.Position.X,
			Y:        center.Y - out.Position.Y,
			ScaledUV: out.ScaledUV,
			InvDepth: out.InvDepth,
			Color:    out.Color,
		}
		facing = out.FrontFacing
	}

	r.drawTriangles(cfg, tex, sv, facing)
}

// drawTriangles rasterizes the quad's two triangles over their shared
// bounding box. Each pixel is tested against the first triangle and then the
// second, so pixels on the shared diagonal are shaded exactly once.
func (r *Rasterizer) drawTriangles(cfg shader.Config, tex *Texture, sv [4]screenVertex, facing bool) {
	tri1 := [3]screenVertex{sv[0], sv[1], sv[2]}
	tri2 := [3]screenVertex{sv[0], sv[2], sv[3]}

	minX := clampInt(floorInt(min4(sv[0].X, sv[1].X, sv[2].X, sv[3].X)), 0, r.fb.Width-1)
	maxX := clampInt(ceilInt(max4(sv[0].X, sv[1].X, sv[2].X, sv[3].X)), 0, r.fb.Width-1)
	minY := clampInt(floorInt(min4(sv[0].Y, sv[1].Y, sv[2].Y, sv[3].Y)), 0, r.fb.Height-1)
	maxY := clampInt(ceilInt(max4(sv[0].Y, sv[1].Y, sv[2].Y, sv[3].Y)), 0, r.fb.Height-1)

	if maxX < minX || maxY < minY {
		return
	}

	rasterizeRow := func(y int) {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5

			bc, inside := barycentric(&tri1, px, py)
			tri := &tri1
			if !inside {
				bc, inside = barycentric(&tri2, px, py)
				tri = &tri2
			}
			if !inside {
				continue
			}

			r.shadeFragment(cfg, tex, tri, bc, facing, x, y)
		}
	}

	if r.Workers < 2 || maxY-minY < r.Workers {
		for y := minY; y <= maxY; y++ {
			rasterizeRow(y)
		}
		return
	}

	// Fragment invocations are independent by contract, so rows can fan out
	// freely; only the row partitioning is coordinated.
	var wg sync.WaitGroup
	rows := make(chan int)
	for w := 0; w < r.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				rasterizeRow(y)
			}
		}()
	}
	for y := minY; y <= maxY; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()
}

// shadeFragment interpolates the varyings at one pixel and runs the fragment
// stage.
func (r *Rasterizer) shadeFragment(cfg shader.Config, tex *Texture, tri *[3]screenVertex, bc math.Vec3, facing bool, x, y int) {
	invDepth := bc.X*tri[0].InvDepth + bc.Y*tri[1].InvDepth + bc.Z*tri[2].InvDepth
	if absf(invDepth) < invDepthEpsilon {
		return
	}

	scaledUV := math.Vec2{
		X: bc.X*tri[0].ScaledUV.X + bc.Y*tri[1].ScaledUV.X + bc.Z*tri[2].ScaledUV.X,
		Y: bc.X*tri[0].ScaledUV.Y + bc.Y*tri[1].ScaledUV.Y + bc.Z*tri[2].ScaledUV.Y,
	}
	tint := shader.Color{
		R: bc.X*tri[0].Color.R + bc.Y*tri[1].Color.R + bc.Z*tri[2].Color.R,
		G: bc.X*tri[0].Color.G + bc.Y*tri[1].Color.G + bc.Z*tri[2].Color.G,
		B: bc.X*tri[0].Color.B + bc.Y*tri[1].Color.B + bc.Z*tri[2].Color.B,
		A: bc.X*tri[0].Color.A + bc.Y*tri[1].Color.A + bc.Z*tri[2].Color.A,
	}

	out, ok := cfg.FragmentStage(shader.FragmentInput{
		ScaledUV:    scaledUV,
		InvDepth:    invDepth,
		Color:       tint,
		FrontFacing: facing,
	}, tex)
	if !ok {
		return
	}

	r.fb.BlendPixel(x, y, out)
}

// barycentric computes the barycentric coordinates of (px, py) in the
// triangle and reports whether the point is inside it. Degenerate triangles
// cover nothing.
func barycentric(tri *[3]screenVertex, px, py float32) (math.Vec3, bool) {
	v0x, v0y := tri[2].X-tri[0].X, tri[2].Y-tri[0].Y
	v1x, v1y := tri[1].X-tri[0].X, tri[1].Y-tri[0].Y
	v2x, v2y := px-tri[0].X, py-tri[0].Y

	dot00 := v0x*v0x + v0y*v0y
	dot01 := v0x*v1x + v0y*v1y
	dot02 := v0x*v2x + v0y*v2y
	dot11 := v1x*v1x + v1y*v1y
	dot12 := v1x*v2x + v1y*v2y

	denom := dot00*dot11 - dot01*dot01
	if denom == 0 {
		return math.Vec3{}, false
	}

	invDenom := 1 / denom
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom

	bc := math.Vec3{X: 1 - u - v, Y: v, Z: u}
	return bc, bc.X >= 0 && bc.Y >= 0 && bc.Z >= 0
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func min4(a, b, c, d float32) float32 {
	return float32(stdmath.Min(stdmath.Min(float64(a), float64(b)), stdmath.Min(float64(c), float64(d))))
}

func max4(a, b, c, d float32) float32 {
	return float32(stdmath.Max(stdmath.Max(float64(a), float64(b)), stdmath.Max(float64(c), float64(d))))
}

func ceilInt(v float32) int {
	return int(stdmath.Ceil(float64(v)))
}
