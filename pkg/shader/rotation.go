package shader

import (
	stdmath "math"

	"github.com/Faultbox/spinquad/pkg/math"
)

// ComposeRotation builds the 3x3 rotation matrix for the given per-axis
// angles in degrees: intrinsic rotation about X, then Y, then Z. The X and Z
// angles are negated so a positive angle turns the quad in the screen's
// rotation sense (Y up, Z toward the viewer).
func ComposeRotation(angles math.Vec3) math.Mat3 {
	rx := math.Mat3RotateX(radians(-angles.X))
	ry := math.Mat3RotateY(radians(angles.Y))
	rz := math.Mat3RotateZ(radians(-angles.Z))
	return rz.Mul(ry.Mul(rx))
}

// radians converts degrees to radians.
func radians(deg float32) float32 {
	return deg * stdmath.Pi / 180
}
