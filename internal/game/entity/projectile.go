package entity

import (
	"github.com/Faultbox/skirmish/internal/engine/mesh"
	"github.com/Faultbox/skirmish/internal/engine/scene"
	"github.com/Faultbox/skirmish/pkg/math"
)

const projectileScale = 0.2

// NewProjectile builds a glowing shot: an inner sphere inside a larger
// translucent one.
func NewProjectile(position, velocity math.Vec3, inner, outer mesh.Color, friendly bool) *Actor {
	a := newActor(KindProjectile)
	a.Position = position
	a.Velocity = velocity
	a.Friendly = friendly

	core := a.addPart(scene.Nil, math.Identity(), mesh.Sphere(1), inner)
	a.addPart(core, math.ScaleUniform(2), mesh.Sphere(1), outer)

	a.placeProjectile()
	return a
}

// NewShot builds a projectile with the palette of its side.
func NewShot(position, velocity math.Vec3, friendly bool) *Actor {
	if friendly {
		return NewProjectile(position, velocity, PlayerShotInner, PlayerShotOuter, true)
	}
	return NewProjectile(position, velocity, EnemyShotInner, EnemyShotOuter, false)
}

func (a *Actor) updateProjectile(dt float32) {
	a.Position = a.Position.Add(a.Velocity.Scale(dt))
	a.placeProjectile()
}

func (a *Actor) placeProjectile() {
	a.graph.SetTransform(a.root, math.TranslateVec(a.Position).Mul(math.ScaleUniform(projectileScale)))
}
