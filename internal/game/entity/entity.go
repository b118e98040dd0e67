// Package entity implements the actors of the arena: the player ship, the
// two enemy fighters and projectiles.
//
// Every actor owns a scene graph whose shape is fixed at construction. The
// variant specific state lives behind Kind; callers switch on it.
package entity

import (
	"fmt"

	"github.com/Faultbox/skirmish/internal/engine/mesh"
	"github.com/Faultbox/skirmish/internal/engine/scene"
	"github.com/Faultbox/skirmish/pkg/math"
)

// Kind identifies the variant of an actor.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindFighter1
	KindFighter2
	KindProjectile
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindFighter1:
		return "fighter1"
	case KindFighter2:
		return "fighter2"
	case KindProjectile:
		return "projectile"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// IsFighter reports whether the kind is an enemy ship.
func (k Kind) IsFighter() bool {
	return k == KindFighter1 || k == KindFighter2
}

// Drawer receives one primitive at a time.
type Drawer interface {
	DrawMesh(world math.Mat4, shape mesh.Shape, color mesh.Color)
}

// Part is the renderable payload of a node.
type Part struct {
	Shape mesh.Shape
	Color mesh.Color
}

// Actor is a composite object moving through the arena.
type Actor struct {
	Kind     Kind
	Position math.Vec3
	Velocity math.Vec3

	// Firing, in clock seconds. Fighters fire every RateOfFire seconds,
	// the player is limited by its shot delay.
	LastShot     float64
	RateOfFire   float64
	ShotVelocity math.Vec3

	// Reward is the score granted when a fighter is destroyed.
	Reward int
	// Friendly projectiles come from the player and hurt fighters.
	Friendly bool

	graph *scene.Graph
	root  scene.NodeID
	parts []Part // indexed by NodeID-1

	player  *playerState
	fighter *fighterState
}

func newActor(kind Kind) *Actor {
	return &Actor{Kind: kind, graph: scene.NewGraph()}
}

// addPart creates a node holding a primitive. The first part becomes the
// root; later ones must name a parent.
func (a *Actor) addPart(parent scene.NodeID, local math.Mat4, shape mesh.Shape, color mesh.Color) scene.NodeID {
	id := a.graph.Add(local)
	a.parts = append(a.parts, Part{Shape: shape, Color: color})
	if parent == scene.Nil {
		if a.root != scene.Nil {
			panic("entity: actor already has a root")
		}
		a.root = id
		return id
	}
	a.graph.AddChild(parent, id)
	return id
}

// Graph exposes the actor's scene graph.
func (a *Actor) Graph() *scene.Graph { return a.graph }

// Root returns the root node of the actor.
func (a *Actor) Root() scene.NodeID { return a.root }

// Parts returns the number of primitives the actor is built from.
func (a *Actor) Parts() int { return len(a.parts) }

// Update advances the actor by dt seconds.
func (a *Actor) Update(dt float64) {
	switch a.Kind {
	case KindPlayer:
		a.updatePlayer(float32(dt))
	case KindFighter1:
		a.updateFighter1(dt)
	case KindFighter2:
		a.updateFighter2(dt)
	case KindProjectile:
		a.updateProjectile(float32(dt))
	default:
		panic(fmt.Sprintf("entity: update of unknown %s", a.Kind))
	}
}

// Render draws every primitive in pre-order.
func (a *Actor) Render(d Drawer) {
	a.graph.Walk(a.root, func(id scene.NodeID, world math.Mat4) {
		p := a.parts[id-1]
		d.DrawMesh(world, p.Shape, p.Color)
	})
}

// BoundingBox returns the box enclosing the whole actor.
func (a *Actor) BoundingBox() scene.AABB {
	return a.graph.EnclosingBoundingBox(a.root)
}

// BoundingBoxes returns the box of every primitive in pre-order.
func (a *Actor) BoundingBoxes() []scene.AABB {
	return a.graph.AllBoundingBoxes(a.root)
}

// Contains reports whether p hits the actor.
func (a *Actor) Contains(p math.Vec3) bool {
	return a.graph.Contains(a.root, p)
}

// SpawnPoints returns where the actor's projectiles appear.
func (a *Actor) SpawnPoints() []math.Vec3 {
	switch a.Kind {
	case KindPlayer:
		return offsets(a.Position, playerMuzzles[:])
	case KindFighter1:
		return offsets(a.Position, fighter1Muzzles[:])
	case KindFighter2:
		return offsets(a.Position, fighter2Muzzles[:])
	default:
		return nil
	}
}

// CanFire reports whether enough time passed since the last shot.
func (a *Actor) CanFire(now float64) bool {
	return now-a.LastShot > a.RateOfFire
}

func offsets(origin math.Vec3, deltas []math.Vec3) []math.Vec3 {
	out := make([]math.Vec3, len(deltas))
	for i, d := range deltas {
		out[i] = origin.Add(d)
	}
	return out
}
