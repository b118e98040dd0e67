package math

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestMulMatchesMathgl(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		var a, b Mat4
		for j := range a {
			a[j] = rng.Float32()*4 - 2
			b[j] = rng.Float32()*4 - 2
		}
		got := a.Mul(b)
		want := Mat4(mgl32.Mat4(a).Mul4(mgl32.Mat4(b)))
		if !got.ApproxEqual(want, 1e-4) {
			t.Fatalf("Mul mismatch:\n got %v\nwant %v", got, want)
		}
	}
}

func TestChain(t *testing.T) {
	a := Translate(1, 0, 0)
	b := RotateZ(float32(math.Pi / 2))
	c := Scale(2, 3, 4)

	want := a.Mul(b).Mul(c)
	if got := Chain(a, b, c); got != want {
		t.Errorf("Chain(a, b, c) = %v, want %v", got, want)
	}
	if got := Chain(); got != Identity() {
		t.Errorf("Chain() = %v, want identity", got)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
	if got := m.Translation(); got != (Vec3{5, 10, 15}) {
		t.Errorf("Translation() = %v", got)
	}
}

func TestTransformVec3(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"translate", Translate(10, 20, 30), Vec3{1, 2, 3}, Vec3{11, 22, 33}},
		{"scale", Scale(2, 2, 2), Vec3{1, 2, 3}, Vec3{2, 4, 6}},
		{"rotate y", RotateY(float32(math.Pi / 2)), Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{"rotate x", RotateX(float32(math.Pi / 2)), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"rotate z", RotateZ(float32(math.Pi / 2)), Vec3{1, 0, 0}, Vec3{0, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformVec3(tt.in)
			if got.Sub(tt.want).Length() > 1e-5 {
				t.Errorf("TransformVec3(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestShear(t *testing.T) {
	p := Vec3{1, 2, 3}

	if got := ShearX(0.5, 1).TransformVec3(p); got != (Vec3{1 + 1 + 3, 2, 3}) {
		t.Errorf("ShearX = %v", got)
	}
	if got := ShearY(-1, 0.25).TransformVec3(p); got != (Vec3{1, 2 - 1 + 0.75, 3}) {
		t.Errorf("ShearY = %v", got)
	}
	if got := ShearZ(1, 0.25).TransformVec3(p); got != (Vec3{1, 2, 3 + 1 + 0.5}) {
		t.Errorf("ShearZ = %v", got)
	}
}

func TestInverse(t *testing.T) {
	m := Chain(Translate(1, -2, 3), RotateX(0.3), ShearY(1, 0.25), Scale(2, 0.5, 4))
	if got := m.Mul(m.Inverse()); !got.ApproxEqual(Identity(), 1e-4) {
		t.Errorf("M * M^-1 = %v, want identity", got)
	}
	if got := Scale(0, 1, 1).Inverse(); got != Identity() {
		t.Errorf("singular inverse = %v, want identity", got)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAt(t *testing.T) {
	m := LookAt(Vec3{0, 0, 20}, Vec3{}, Vec3{0, 1, 0})

	// The eye maps to the view-space origin.
	if got := m.TransformVec3(Vec3{0, 0, 20}); got.Length() > 1e-5 {
		t.Errorf("eye in view space = %v, want origin", got)
	}
	if got := m.TransformVec3(Vec3{}); got.Sub(Vec3{0, 0, -20}).Length() > 1e-5 {
		t.Errorf("center in view space = %v, want (0, 0, -20)", got)
	}
}
