package shader

import (
	"github.com/Faultbox/spinquad/pkg/math"
)

// True texture coordinates vary linearly across the quad's 3D surface, not
// across its screen projection, but the host pipeline only interpolates
// linearly in screen space. Both uv/z and 1/z are linear in screen space, so
// the vertex stage emits those and the fragment stage divides them back.

// ScaleUV scales a corner's texture coordinates by its depth reciprocal,
// making them safe for screen-space-linear interpolation.
func ScaleUV(uv math.Vec2, invDepth float32) math.Vec2 {
	return uv.Scale(invDepth)
}

// RecoverUV turns interpolated depth-scaled coordinates back into true
// texture coordinates. With an interpolated reciprocal of zero the fragment
// sits on the camera plane and the result is undefined; callers skip such
// fragments.
func RecoverUV(scaled math.Vec2, invDepth float32) math.Vec2 {
	return scaled.Scale(1 / invDepth)
}
