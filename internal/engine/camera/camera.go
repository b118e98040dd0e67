// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/skirmish/pkg/math"
)

// ArenaCamera looks at the arena from a fixed point in front of it.
type ArenaCamera struct {
	Eye    math.Vec3
	Target math.Vec3
	Up     math.Vec3

	// Vertical field of view in degrees.
	FOV  float32
	Near float32
	Far  float32
}

// NewArenaCamera creates a camera at (0, 0, 20) looking at the origin.
func NewArenaCamera(fov float32) *ArenaCamera {
	if fov <= 0 || fov >= 180 {
		fov = 45
	}
	return &ArenaCamera{
		Eye:    math.Vec3{X: 0, Y: 0, Z: 20},
		Target: math.Vec3{},
		Up:     math.Vec3{X: 0, Y: 1, Z: 0},
		FOV:    fov,
		Near:   0.1,
		Far:    500,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *ArenaCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Eye, c.Target, c.Up)
}

// ProjectionMatrix returns the perspective projection for a viewport.
func (c *ArenaCamera) ProjectionMatrix(width, height int) math.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	fovy := c.FOV * gomath.Pi / 180
	return math.Perspective(fovy, aspect, c.Near, c.Far)
}

// Depth returns the distance of a world point in front of the camera.
// Larger is farther.
func (c *ArenaCamera) Depth(p math.Vec3) float32 {
	forward := c.Target.Sub(c.Eye).Normalize()
	return p.Sub(c.Eye).Dot(forward)
}
