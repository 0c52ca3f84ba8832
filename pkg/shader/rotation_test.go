package shader

import (
	"testing"

	"github.com/Faultbox/spinquad/pkg/math"
)

func TestComposeRotationIdentity(t *testing.T) {
	m := ComposeRotation(math.Vec3{})
	id := math.Mat3Identity()

	for i := 0; i < 9; i++ {
		if absf(m[i]-id[i]) > 1e-6 {
			t.Errorf("zero angles element %d: got %f, want %f", i, m[i], id[i])
		}
	}
}

func TestComposeRotationOrthonormal(t *testing.T) {
	angles := []float32{-180, -135, -90, -45, -17.3, 0, 12.5, 45, 90, 135, 180}

	for _, ax := range angles {
		for _, ay := range angles {
			for _, az := range angles {
				m := ComposeRotation(math.Vec3{X: ax, Y: ay, Z: az})

				for i := 0; i < 3; i++ {
					if l := m.Row(i).Length(); absf(l-1) > 1e-4 {
						t.Fatalf("angles (%v,%v,%v): row %d length %f, want 1", ax, ay, az, i, l)
					}
					if l := m.Col(i).Length(); absf(l-1) > 1e-4 {
						t.Fatalf("angles (%v,%v,%v): col %d length %f, want 1", ax, ay, az, i, l)
					}
				}
				for i := 0; i < 3; i++ {
					j := (i + 1) % 3
					if d := m.Row(i).Dot(m.Row(j)); absf(d) > 1e-4 {
						t.Fatalf("angles (%v,%v,%v): rows %d,%d dot %f, want 0", ax, ay, az, i, j, d)
					}
					if d := m.Col(i).Dot(m.Col(j)); absf(d) > 1e-4 {
						t.Fatalf("angles (%v,%v,%v): cols %d,%d dot %f, want 0", ax, ay, az, i, j, d)
					}
				}
			}
		}
	}
}

func TestComposeRotationYSense(t *testing.T) {
	// +90 about Y swings +X toward the viewer (-Z stays right-handed).
	m := ComposeRotation(math.Vec3{Y: 90})
	v := m.MulVec3(math.Vec3{X: 1})

	if absf(v.X) > 1e-4 || absf(v.Y) > 1e-4 || absf(v.Z+1) > 1e-4 {
		t.Errorf("Y 90: got %v, want (0, 0, -1)", v)
	}
}

func TestComposeRotationNegatedAxes(t *testing.T) {
	// The X and Z angles are negated before composition, so +90 about Z
	// turns +X toward -Y.
	m := ComposeRotation(math.Vec3{Z: 90})
	v := m.MulVec3(math.Vec3{X: 1})

	if absf(v.X) > 1e-4 || absf(v.Y+1) > 1e-4 || absf(v.Z) > 1e-4 {
		t.Errorf("Z 90: got %v, want (0, -1, 0)", v)
	}

	m = ComposeRotation(math.Vec3{X: 90})
	v = m.MulVec3(math.Vec3{Y: 1})

	if absf(v.X) > 1e-4 || absf(v.Y) > 1e-4 || absf(v.Z+1) > 1e-4 {
		t.Errorf("X 90: got %v, want (0, 0, -1)", v)
	}
}

func TestComposeRotationOrder(t *testing.T) {
	// X then Y then Z: with X=90 mapping +Y onto -Z first, Y=90 must then
	// carry that -Z onto -X.
	m := ComposeRotation(math.Vec3{X: 90, Y: 90})
	v := m.MulVec3(math.Vec3{Y: 1})

	if absf(v.X+1) > 1e-4 || absf(v.Y) > 1e-4 || absf(v.Z) > 1e-4 {
		t.Errorf("X 90 then Y 90: got %v, want (-1, 0, 0)", v)
	}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
