package math

import (
	"math"
	"testing"
)

func TestQuatNormalize(t *testing.T) {
	n := Quat{X: 1, Y: 2, Z: 3, W: 4}.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatToMat4MatchesAxisRotations(t *testing.T) {
	tests := []struct {
		name string
		axis Vec3
		rot  func(float32) Mat4
	}{
		{"x", AxisX, RotateX},
		{"y", AxisY, RotateY},
		{"z", AxisZ, RotateZ},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, angle := range []float32{-1.2, 0, 0.4, 2.5} {
				got := QuatFromAxisAngle(tt.axis, angle).ToMat4()
				if want := tt.rot(angle); !got.ApproxEqual(want, 1e-5) {
					t.Errorf("angle %v: got %v, want %v", angle, got, want)
				}
			}
		})
	}
}

func TestQuatMulComposesLikeMatrices(t *testing.T) {
	qx := QuatFromAxisAngle(AxisX, 0.3)
	qz := QuatFromAxisAngle(AxisZ, -0.7)

	got := qx.Mul(qz).ToMat4()
	want := RotateX(0.3).Mul(RotateZ(-0.7))
	if !got.ApproxEqual(want, 1e-5) {
		t.Errorf("qx*qz = %v, want RotateX*RotateZ = %v", got, want)
	}
}
