// Package lighting provides lighting utilities for 3D rendering.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/skirmish/pkg/math"
)

// Sun is a directional light placed by two angles in degrees. Longitude
// turns around the Y axis from +Z, latitude is the elevation above the
// horizon.
type Sun struct {
	Longitude float32
	Latitude  float32
}

// Direction returns the unit vector pointing towards the sun.
func (s Sun) Direction() math.Vec3 {
	lon := float64(s.Longitude) * gomath.Pi / 180
	lat := float64(s.Latitude) * gomath.Pi / 180

	return math.Vec3{
		X: float32(gomath.Cos(lat) * gomath.Sin(lon)),
		Y: float32(gomath.Sin(lat)),
		Z: float32(gomath.Cos(lat) * gomath.Cos(lon)),
	}
}

// Rays returns the direction the light travels in, away from the sun.
func (s Sun) Rays() math.Vec3 {
	return s.Direction().Scale(-1)
}
