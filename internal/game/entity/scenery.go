package entity

import (
	gomath "math"

	"github.com/Faultbox/skirmish/internal/engine/mesh"
	"github.com/Faultbox/skirmish/pkg/math"
)

var (
	floorColor = mesh.RGBA(135, 206, 250, 191)
	skyColor   = mesh.Color{B: 1, A: 0.5}
)

const floorTurnsPerSecond = 0.1

// Scenery is the arena dressing: a rolling floor and a sky dome. It takes
// no part in collisions.
type Scenery struct {
	roll float64
}

// NewScenery creates the arena dressing.
func NewScenery() *Scenery {
	return &Scenery{}
}

// Update rolls the floor.
func (s *Scenery) Update(dt float64) {
	s.roll = gomath.Mod(s.roll+dt*2*gomath.Pi*floorTurnsPerSecond, 2*gomath.Pi)
}

// FloorTransform returns the world transform of the floor.
func (s *Scenery) FloorTransform() math.Mat4 {
	return math.Chain(
		math.Translate(0, -13, 0),
		math.Scale(200, 2, 200),
		math.RotateX(float32(-s.roll)),
	)
}

// Render draws the floor then the sky.
func (s *Scenery) Render(d Drawer) {
	d.DrawMesh(s.FloorTransform(), mesh.Sphere(1), floorColor)
	d.DrawMesh(math.ScaleUniform(220), mesh.Sphere(2), skyColor)
}
