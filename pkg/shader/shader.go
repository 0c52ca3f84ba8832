// Package shader implements the software vertex and fragment stages that
// rotate a flat textured quad in 3D and project it back onto the 2D canvas.
//
// There is no mesh and no depth buffer: every vertex invocation rebuilds the
// whole quad from its own corner, rotates and projects all four corners, and
// classifies the facing from the projected winding order. Texture coordinates
// are scaled by the reciprocal of the projected depth so that the host
// pipeline's screen-space-linear interpolation reproduces perspective-correct
// sampling at the fragment stage.
package shader

import (
	"github.com/Faultbox/spinquad/pkg/math"
)

// Config holds the per-draw-call parameters. It is immutable during a draw:
// both stages are pure functions of Config and their inputs.
type Config struct {
	// Angles are the rotation angles in degrees, one per axis, each in
	// [-180, 180].
	Angles math.Vec3

	// Pivot is the center of rotation. X and Y are in units of the surface's
	// half-extent, Z in units of the larger surface dimension.
	Pivot math.Vec3

	// FOV is the field of view in degrees, in (1, 179]. Values outside that
	// range must be rejected or clamped by the configuration surface before
	// they reach the stages.
	FOV float32

	// CullBack discards back-facing fragments. When false the quad still
	// renders when seen from behind, mirrored as a consequence of the
	// winding-based texture coordinates.
	CullBack bool

	// OverrideSize replaces the texture extent as the surface size when both
	// components are positive.
	OverrideSize math.Vec2
}

// VertexInput is what the host pipeline hands to one vertex invocation.
type VertexInput struct {
	Index       int       // corner index, see CornerTopLeft etc.
	Position    math.Vec2 // local position in pixels, quad centered at origin, Y up
	TextureSize math.Vec2 // default texture extent in pixels
	Color       Color     // incoming vertex color
}

// VertexOutput is handed back to the host pipeline. Position is consumed
// directly; ScaledUV, InvDepth and Color are varyings to be interpolated
// linearly in screen space; FrontFacing is propagated flat.
type VertexOutput struct {
	Position    math.Vec2
	ScaledUV    math.Vec2
	InvDepth    float32
	Color       Color
	FrontFacing bool
}

// FragmentInput carries the pipeline-interpolated varyings for one fragment.
type FragmentInput struct {
	ScaledUV    math.Vec2
	InvDepth    float32
	Color       Color
	FrontFacing bool
}

// SurfaceSize resolves the effective surface size: the override when both of
// its components are positive, the texture extent otherwise.
func (c Config) SurfaceSize(textureSize math.Vec2) math.Vec2 {
	if c.OverrideSize.X > 0 && c.OverrideSize.Y > 0 {
		return c.OverrideSize
	}
	return textureSize
}

// NormalizedSize divides the surface size by its larger dimension, so local
// corner components stay within ±0.5 regardless of aspect ratio. The second
// return value is the scale that maps normalized units back to pixels.
func (c Config) NormalizedSize(textureSize math.Vec2) (math.Vec2, float32) {
	size := c.SurfaceSize(textureSize)
	scale := size.X
	if size.Y > scale {
		scale = size.Y
	}
	if scale == 0 {
		return math.Vec2{}, 1
	}
	return size.Scale(1 / scale), scale
}

// VertexStage runs one vertex invocation. It recomputes the full quad,
// rotates and projects every corner, classifies the facing, and emits this
// corner's projected position along with the depth-scaled varyings.
//
// A corner whose rotated depth lands exactly on the camera plane makes the
// perspective divide undefined. The stage does not mask that singularity; a
// quad straddling the camera plane renders distorted.
func (c Config) VertexStage(in VertexInput) VertexOutput {
	norm, scale := c.NormalizedSize(in.TextureSize)
	local := in.Position.Scale(1 / scale)

	rot := ComposeRotation(c.Angles)
	dist := ProjectionDistance(c.FOV)
	pivot := math.Vec3{
		X: c.Pivot.X * norm.X / 2,
		Y: c.Pivot.Y * norm.Y / 2,
		Z: c.Pivot.Z,
	}

	corners := ExpandQuad(in.Index, math.Vec3{X: local.X, Y: local.Y}, norm.X, norm.Y)
	projected := ProjectQuad(corners, rot, pivot, dist)
	facing := FrontFacing(projected[0].XY(), projected[1].XY(), projected[2].XY())

	this := projected[in.Index]
	invDepth := 1 / this.Z

	return VertexOutput{
		Position:    this.XY().Add(pivot.XY()).Scale(scale),
		ScaledUV:    ScaleUV(CornerUV(in.Index), invDepth),
		InvDepth:    invDepth,
		Color:       in.Color,
		FrontFacing: facing,
	}
}
