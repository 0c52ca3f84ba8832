package shader

import (
	"testing"

	"github.com/Faultbox/spinquad/pkg/math"
)

func runVertex(cfg Config, texSize math.Vec2, index int) VertexOutput {
	size := cfg.SurfaceSize(texSize)
	return cfg.VertexStage(VertexInput{
		Index:       index,
		Position:    CornerPosition(index, size),
		TextureSize: texSize,
		Color:       White,
	})
}

func TestVertexStageIdentity(t *testing.T) {
	// With no rotation and a resting pivot the projection must be
	// invisible for any field of view.
	texSize := math.Vec2{X: 128, Y: 64}

	for _, fov := range []float32{2, 30, 90, 150, 178} {
		cfg := Config{FOV: fov}

		for idx := CornerTopLeft; idx <= CornerTopRight; idx++ {
			in := CornerPosition(idx, texSize)
			out := runVertex(cfg, texSize, idx)

			if out.Position.Sub(in).Length() > 1e-2 {
				t.Errorf("fov %v corner %d: position %v, want %v", fov, idx, out.Position, in)
			}
			if !out.FrontFacing {
				t.Errorf("fov %v corner %d: want front-facing", fov, idx)
			}
		}
	}
}

func TestVertexStageIdentityWithPivot(t *testing.T) {
	// A displaced pivot must not move an unrotated quad either.
	texSize := math.Vec2{X: 100, Y: 100}
	cfg := Config{FOV: 75, Pivot: math.Vec3{X: 0.8, Y: -0.4, Z: 0.3}}

	for idx := CornerTopLeft; idx <= CornerTopRight; idx++ {
		in := CornerPosition(idx, texSize)
		out := runVertex(cfg, texSize, idx)

		if out.Position.Sub(in).Length() > 1e-2 {
			t.Errorf("corner %d: position %v, want %v", idx, out.Position, in)
		}
	}
}

func TestVertexStageFacingAgreement(t *testing.T) {
	// Each invocation recomputes the facing from scratch; all four must
	// land on the same verdict.
	texSize := math.Vec2{X: 64, Y: 96}
	cases := []math.Vec3{
		{},
		{X: 25, Y: 50, Z: -15},
		{Y: 135},
		{X: -170, Y: 10, Z: 80},
	}

	for _, angles := range cases {
		cfg := Config{FOV: 90, Angles: angles}

		first := runVertex(cfg, texSize, CornerTopLeft).FrontFacing
		for idx := CornerBottomLeft; idx <= CornerTopRight; idx++ {
			if got := runVertex(cfg, texSize, idx).FrontFacing; got != first {
				t.Errorf("angles %v: corner %d facing %v, corner 0 facing %v", angles, idx, got, first)
			}
		}
	}
}

func TestVertexStageProfileCollapse(t *testing.T) {
	// Square surface turned 90° about Y: the projected width collapses to a
	// vertical sliver. The degenerate winding still resolves to one
	// deterministic flag shared by all four invocations.
	texSize := math.Vec2{X: 128, Y: 128}
	cfg := Config{FOV: 90, Angles: math.Vec3{Y: 90}}

	first := runVertex(cfg, texSize, CornerTopLeft).FrontFacing
	for idx := CornerTopLeft; idx <= CornerTopRight; idx++ {
		out := runVertex(cfg, texSize, idx)

		if absf(out.Position.X) > 1e-2 {
			t.Errorf("corner %d: X = %f, want ~0", idx, out.Position.X)
		}
		if out.FrontFacing != first {
			t.Errorf("corner %d: facing %v disagrees with corner 0 (%v)", idx, out.FrontFacing, first)
		}
	}
}

func TestVertexStageOverrideSize(t *testing.T) {
	// The normalized ratio must follow the override, not the texture.
	texSize := math.Vec2{X: 128, Y: 128}
	cfg := Config{FOV: 90, OverrideSize: math.Vec2{X: 32, Y: 64}}

	norm, scale := cfg.NormalizedSize(texSize)
	if absf(norm.X-0.5) > 1e-6 || absf(norm.Y-1) > 1e-6 {
		t.Errorf("normalized size = %v, want (0.5, 1)", norm)
	}
	if scale != 64 {
		t.Errorf("scale = %f, want 64", scale)
	}

	// A non-positive component falls back to the texture extent.
	cfg.OverrideSize = math.Vec2{X: 32, Y: 0}
	if got := cfg.SurfaceSize(texSize); got != texSize {
		t.Errorf("surface size = %v, want texture extent %v", got, texSize)
	}
}

func TestVertexStageDepthReciprocal(t *testing.T) {
	// On the projection plane the reciprocal equals 1/projection distance,
	// and the scaled UVs carry the same factor.
	texSize := math.Vec2{X: 50, Y: 50}
	cfg := Config{FOV: 90}
	dist := ProjectionDistance(cfg.FOV)

	out := runVertex(cfg, texSize, CornerBottomRight)
	if absf(out.InvDepth-1/dist) > 1e-5 {
		t.Errorf("InvDepth = %f, want %f", out.InvDepth, 1/dist)
	}

	want := ScaleUV(CornerUV(CornerBottomRight), out.InvDepth)
	if out.ScaledUV.Sub(want).Length() > 1e-6 {
		t.Errorf("ScaledUV = %v, want %v", out.ScaledUV, want)
	}
}

func TestVertexStageCornersAgreeAcrossInvocations(t *testing.T) {
	// No invocation can read another's result, so each rebuilds the quad;
	// projecting the rebuilt quads must give byte-for-byte equal corners.
	texSize := math.Vec2{X: 80, Y: 120}
	cfg := Config{FOV: 60, Angles: math.Vec3{X: 40, Y: -25, Z: 10}}
	size := cfg.SurfaceSize(texSize)

	var positions [4]math.Vec2
	for idx := CornerTopLeft; idx <= CornerTopRight; idx++ {
		positions[idx] = cfg.VertexStage(VertexInput{
			Index:       idx,
			Position:    CornerPosition(idx, size),
			TextureSize: texSize,
			Color:       White,
		}).Position
	}

	// Re-run each invocation; determinism means identical output.
	for idx := CornerTopLeft; idx <= CornerTopRight; idx++ {
		again := cfg.VertexStage(VertexInput{
			Index:       idx,
			Position:    CornerPosition(idx, size),
			TextureSize: texSize,
			Color:       White,
		}).Position
		if again != positions[idx] {
			t.Errorf("corner %d: re-running the invocation changed the output", idx)
		}
	}
}
