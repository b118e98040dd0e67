package lighting

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/skirmish/pkg/math"
)

func near(a, b math.Vec3) bool {
	const eps = 1e-6
	return gomath.Abs(float64(a.X-b.X)) < eps &&
		gomath.Abs(float64(a.Y-b.Y)) < eps &&
		gomath.Abs(float64(a.Z-b.Z)) < eps
}

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name string
		sun  Sun
		want math.Vec3
	}{
		{"horizon front", Sun{0, 0}, math.Vec3{Z: 1}},
		{"horizon right", Sun{90, 0}, math.Vec3{X: 1}},
		{"zenith", Sun{45, 90}, math.Vec3{Y: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sun.Direction(); !near(got, tt.want) {
				t.Errorf("Direction() = %+v, want %+v", got, tt.want)
			}
			if got := tt.sun.Rays(); !near(got, tt.want.Scale(-1)) {
				t.Errorf("Rays() = %+v, want %+v", got, tt.want.Scale(-1))
			}
		})
	}
}

func TestSunDirectionIsUnit(t *testing.T) {
	for lon := float32(0); lon < 360; lon += 37 {
		for lat := float32(-90); lat <= 90; lat += 23 {
			if l := (Sun{lon, lat}).Direction().Length(); gomath.Abs(float64(l-1)) > 1e-5 {
				t.Errorf("|Direction(%f, %f)| = %f", lon, lat, l)
			}
		}
	}
}
