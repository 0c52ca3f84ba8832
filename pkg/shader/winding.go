package shader

import (
	"github.com/Faultbox/spinquad/pkg/math"
)

// FrontFacing classifies the quad's facing from the projected top-left,
// bottom-left and bottom-right corners, in that order. The front face points
// toward the camera when the signed area (p2-p1) x (p3-p1) is non-negative.
//
// Every vertex invocation of a quad feeds this the same three corners, so all
// four agree on the classification without sharing any state. A quad seen
// exactly edge-on has zero area and classifies as front-facing.
func FrontFacing(p1, p2, p3 math.Vec2) bool {
	return p2.Sub(p1).Cross(p3.Sub(p1)) >= 0
}
