package shader

import (
	"github.com/Faultbox/spinquad/pkg/math"
)

// Corner indices in the fixed enumeration order used by both stages.
const (
	CornerTopLeft = iota
	CornerBottomLeft
	CornerBottomRight
	CornerTopRight
)

// cornerOffsets holds each corner's offset from the bottom-left anchor, in
// (width, height) multiples. Y is up.
var cornerOffsets = [4]math.Vec2{
	CornerTopLeft:     {X: 0, Y: 1},
	CornerBottomLeft:  {X: 0, Y: 0},
	CornerBottomRight: {X: 1, Y: 0},
	CornerTopRight:    {X: 1, Y: 1},
}

// ExpandQuad reconstructs all four corners of the quad from one corner's
// position. index says which corner pos is; the bottom-left anchor is derived
// by subtracting that corner's offset, and the others are the anchor plus
// their fixed width/height offsets.
func ExpandQuad(index int, pos math.Vec3, width, height float32) [4]math.Vec3 {
	anchor := math.Vec3{
		X: pos.X - cornerOffsets[index].X*width,
		Y: pos.Y - cornerOffsets[index].Y*height,
		Z: pos.Z,
	}

	var corners [4]math.Vec3
	for i, off := range cornerOffsets {
		corners[i] = math.Vec3{
			X: anchor.X + off.X*width,
			Y: anchor.Y + off.Y*height,
			Z: anchor.Z,
		}
	}
	return corners
}

// CornerPosition returns a corner's local position in pixels for a quad of
// the given size centered at the origin, Y up.
func CornerPosition(index int, size math.Vec2) math.Vec2 {
	half := size.Scale(0.5)
	switch index {
	case CornerTopLeft:
		return math.Vec2{X: -half.X, Y: half.Y}
	case CornerBottomLeft:
		return math.Vec2{X: -half.X, Y: -half.Y}
	case CornerBottomRight:
		return math.Vec2{X: half.X, Y: -half.Y}
	default:
		return math.Vec2{X: half.X, Y: half.Y}
	}
}

// CornerUV returns a corner's texture coordinates. UVs are image-space:
// (0,0) at the top-left, V growing downward.
func CornerUV(index int) math.Vec2 {
	switch index {
	case CornerTopLeft:
		return math.Vec2{X: 0, Y: 0}
	case CornerBottomLeft:
		return math.Vec2{X: 0, Y: 1}
	case CornerBottomRight:
		return math.Vec2{X: 1, Y: 1}
	default:
		return math.Vec2{X: 1, Y: 0}
	}
}
