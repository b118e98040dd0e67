package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/skirmish/pkg/math"
)

func TestArenaCameraView(t *testing.T) {
	c := NewArenaCamera(45)

	got := c.ViewMatrix().TransformVec3(math.Vec3{})
	if gomath.Abs(float64(got.Z+20)) > 1e-5 || gomath.Abs(float64(got.X)) > 1e-5 || gomath.Abs(float64(got.Y)) > 1e-5 {
		t.Errorf("origin in view space = %+v, want (0, 0, -20)", got)
	}
}

func TestArenaCameraDepth(t *testing.T) {
	c := NewArenaCamera(45)

	tests := []struct {
		p    math.Vec3
		want float32
	}{
		{math.Vec3{}, 20},
		{math.Vec3{Z: -100}, 120},
		{math.Vec3{X: 5, Y: -3, Z: 10}, 10},
	}
	for _, tt := range tests {
		if got := c.Depth(tt.p); gomath.Abs(float64(got-tt.want)) > 1e-4 {
			t.Errorf("Depth(%+v) = %f, want %f", tt.p, got, tt.want)
		}
	}
}

func TestArenaCameraProjection(t *testing.T) {
	c := NewArenaCamera(90)
	p := c.ProjectionMatrix(1600, 800)

	// With a 90 degree fov the focal length is 1.
	if gomath.Abs(float64(p[5]-1)) > 1e-5 {
		t.Errorf("p[5] = %f, want 1", p[5])
	}
	if gomath.Abs(float64(p[5]/p[0]-2)) > 1e-5 {
		t.Errorf("aspect = %f, want 2", p[5]/p[0])
	}

	// A degenerate viewport falls back to a square aspect.
	sq := c.ProjectionMatrix(0, 0)
	if sq[0] != sq[5] {
		t.Errorf("zero viewport aspect: p[0]=%f p[5]=%f", sq[0], sq[5])
	}
}

func TestNewArenaCameraDefaultsFOV(t *testing.T) {
	for _, fov := range []float32{0, -10, 180, 360} {
		if got := NewArenaCamera(fov).FOV; got != 45 {
			t.Errorf("NewArenaCamera(%f).FOV = %f, want 45", fov, got)
		}
	}
}
