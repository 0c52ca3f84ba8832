package shader

import (
	stdmath "math"

	"github.com/Faultbox/spinquad/pkg/math"
)

// ProjectQuad rotates the four corners about the pivot, pushes them onto the
// projection plane and applies the perspective divide. The returned Z is the
// post-offset depth the divide used; its reciprocal is the interpolation
// weight for the fragment stage.
//
// A corner whose depth reaches exactly zero sits on the camera plane and the
// divide is undefined there. That singularity is left as is.
func ProjectQuad(corners [4]math.Vec3, rot math.Mat3, pivot math.Vec3, dist float32) [4]math.Vec3 {
	var projected [4]math.Vec3
	for i, corner := range corners {
		r := rot.MulVec3(corner.Sub(pivot))
		r.Z += pivot.Z + dist
		projected[i] = math.Vec3{
			X: r.X * r.Z / dist,
			Y: r.Y * r.Z / dist,
			Z: r.Z,
		}
	}
	return projected
}

// ProjectionDistance derives the focal length from the field of view in
// degrees:
//
//	distance = -0.5 - 0.5/tan(fov/2)
//
// At 90° the distance is -1; it tends to -0.5 as the field of view opens
// toward 180° and grows without bound as it closes toward 0°. An unrotated
// zero-pivot corner lands exactly on the projection plane, so the perspective
// divide leaves its x,y untouched for every field of view.
func ProjectionDistance(fovDeg float32) float32 {
	half := float64(radians(fovDeg)) / 2
	return float32(-0.5 - 0.5/stdmath.Tan(half))
}
