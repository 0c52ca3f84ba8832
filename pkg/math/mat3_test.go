package math

import (
	"math"
	"testing"
)

func TestMat3Identity(t *testing.T) {
	m := Mat3Identity()
	if m[0] != 1 || m[4] != 1 || m[8] != 1 {
		t.Error("Mat3Identity diagonal should be 1")
	}
	if m[1] != 0 || m[3] != 0 {
		t.Error("Mat3Identity off-diagonal should be 0")
	}
}

func TestMat3MulIdentity(t *testing.T) {
	m := Mat3RotateY(0.7)
	id := Mat3Identity()
	result := m.Mul(id)

	for i := 0; i < 9; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestMat3RotateZ90(t *testing.T) {
	m := Mat3RotateZ(float32(math.Pi / 2))
	v := m.MulVec3(Vec3{1, 0, 0})

	// After 90 degree Z rotation, (1,0,0) should become approximately (0,1,0)
	if abs(v.X) > 0.001 || abs(v.Y-1) > 0.001 || abs(v.Z) > 0.001 {
		t.Errorf("Mat3RotateZ 90: got %v, want (0, 1, 0)", v)
	}
}

func TestMat3RotateX90(t *testing.T) {
	m := Mat3RotateX(float32(math.Pi / 2))
	v := m.MulVec3(Vec3{0, 1, 0})

	if abs(v.X) > 0.001 || abs(v.Y) > 0.001 || abs(v.Z-1) > 0.001 {
		t.Errorf("Mat3RotateX 90: got %v, want (0, 0, 1)", v)
	}
}

func TestMat3RotateY90(t *testing.T) {
	m := Mat3RotateY(float32(math.Pi / 2))
	v := m.MulVec3(Vec3{1, 0, 0})

	if abs(v.X) > 0.001 || abs(v.Y) > 0.001 || abs(v.Z+1) > 0.001 {
		t.Errorf("Mat3RotateY 90: got %v, want (0, 0, -1)", v)
	}
}

func TestMat3Transpose(t *testing.T) {
	m := Mat3RotateX(0.4).Mul(Mat3RotateZ(1.1))
	mt := m.Transpose()

	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			if m[col*3+row] != mt[row*3+col] {
				t.Errorf("Transpose element (%d,%d) mismatch", row, col)
			}
		}
	}
}

func TestMat3RowCol(t *testing.T) {
	m := Mat3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	if m.Col(1) != (Vec3{4, 5, 6}) {
		t.Errorf("Col(1) = %v, want (4, 5, 6)", m.Col(1))
	}
	if m.Row(1) != (Vec3{2, 5, 8}) {
		t.Errorf("Row(1) = %v, want (2, 5, 8)", m.Row(1))
	}
}
