package math

import (
	"testing"
)

func TestVec2Normalize(t *testing.T) {
	n := Vec2{3, 4}.Normalize()
	if l := n.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Vec2.Normalize().Length() = %v, want ~1", l)
	}
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("zero vector Normalize() = %v, want zero", got)
	}
}

func TestVec2SignClamp(t *testing.T) {
	if got := (Vec2{-3, 0}).Sign(); got != (Vec2{-1, 0}) {
		t.Errorf("Sign() = %v", got)
	}
	got := Vec2{30, -50}.Clamp(Vec2{-15, -35}, Vec2{15, 35})
	if got != (Vec2{15, -35}) {
		t.Errorf("Clamp() = %v, want (15, -35)", got)
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, -2, 3}
	b := Vec3{-1, 2, 3}
	if got := a.Min(b); got != (Vec3{-1, -2, 3}) {
		t.Errorf("Min() = %v", got)
	}
	if got := a.Max(b); got != (Vec3{1, 2, 3}) {
		t.Errorf("Max() = %v", got)
	}
	if a.At(0) != 1 || a.At(1) != -2 || a.At(2) != 3 {
		t.Errorf("At() mismatch for %v", a)
	}
}

func TestVec3Cross(t *testing.T) {
	got := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}
