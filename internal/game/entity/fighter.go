package entity

import (
	gomath "math"

	"github.com/Faultbox/skirmish/internal/engine/mesh"
	"github.com/Faultbox/skirmish/internal/engine/scene"
	"github.com/Faultbox/skirmish/pkg/math"
)

// Enemy palette.
var (
	forestGreen = mesh.RGB(34, 139, 34)
	crimson     = mesh.RGB(220, 20, 60)
	steel       = mesh.RGB(70, 130, 180)
	gunmetal    = mesh.RGB(42, 52, 57)

	// EnemyShotInner and EnemyShotOuter color hostile projectiles.
	EnemyShotInner = mesh.Color{B: 0.7, A: 1}
	EnemyShotOuter = mesh.Color{B: 0.7, A: 0.8}
)

// Fighter presets.
const (
	Fighter1Reward     = 1000
	Fighter1Speed      = 2.5
	Fighter1RateOfFire = 2.0
	Fighter1ShotSpeed  = 5

	Fighter2Reward     = 2000
	Fighter2Speed      = 5
	Fighter2RateOfFire = 4.0
	Fighter2ShotSpeed  = 10
)

const (
	fighter1Spin = 2 // rad/s

	fighter2PulseMin   = 0.85
	fighter2PulseMax   = 1.15
	fighter2PulseSpeed = 0.6 // scale units per second
)

var (
	fighter1Muzzles = [1]math.Vec3{{Z: 0.5}}
	fighter2Muzzles = [2]math.Vec3{{X: -1, Z: 0.5}, {X: 1, Z: 0.5}}
)

type fighterState struct {
	// Fighter1 spin
	animation float64

	// Fighter2 pulse
	pulse   float32
	growing bool
}

// NewFighter1 builds a spinning cross-shaped fighter.
//
//	center pyramid
//	├── horizontal box ── left, right pyramids
//	└── vertical box ──── up, down pyramids
func NewFighter1(position math.Vec3) *Actor {
	a := newActor(KindFighter1)
	a.Position = position
	a.Velocity = math.Vec3{Z: Fighter1Speed}
	a.RateOfFire = Fighter1RateOfFire
	a.ShotVelocity = math.Vec3{Z: Fighter1ShotSpeed}
	a.Reward = Fighter1Reward
	a.fighter = &fighterState{}

	center := a.addPart(scene.Nil, math.Identity(), mesh.Pyramid(), forestGreen)
	horizontal := a.addPart(center, math.Scale(2, 1, 1), mesh.Box(), forestGreen)
	vertical := a.addPart(center, math.Scale(1, 1, 2), mesh.Box(), forestGreen)

	a.addPart(horizontal, math.Chain(math.Scale(0.5, 1, 1), math.Translate(-1.5, 0, 0), math.RotateZ(gomath.Pi/2)), mesh.Pyramid(), forestGreen)
	a.addPart(horizontal, math.Chain(math.Scale(0.5, 1, 1), math.Translate(1.5, 0, 0), math.RotateZ(-gomath.Pi/2)), mesh.Pyramid(), forestGreen)
	a.addPart(vertical, math.Chain(math.Scale(1, 1, 0.5), math.Translate(0, 0, -1.5), math.RotateX(-gomath.Pi/2)), mesh.Pyramid(), forestGreen)
	a.addPart(vertical, math.Chain(math.Scale(1, 1, 0.5), math.Translate(0, 0, 1.5), math.RotateX(gomath.Pi/2)), mesh.Pyramid(), forestGreen)

	a.placeFighter1()
	return a
}

// NewFighter2 builds a pulsing gunship.
//
//	center box
//	├── top pyramid
//	├── left cylinder ─── back-left sphere
//	└── right cylinder ── back-right sphere
func NewFighter2(position math.Vec3) *Actor {
	a := newActor(KindFighter2)
	a.Position = position
	a.Velocity = math.Vec3{Z: Fighter2Speed}
	a.RateOfFire = Fighter2RateOfFire
	a.ShotVelocity = math.Vec3{Z: Fighter2ShotSpeed}
	a.Reward = Fighter2Reward
	a.fighter = &fighterState{pulse: 1, growing: true}

	center := a.addPart(scene.Nil, math.Identity(), mesh.Box(), crimson)
	a.addPart(center, math.Chain(math.Translate(0, 0.75, 0), math.Scale(0.6, 0.5, 0.6)), mesh.Pyramid(), gunmetal)

	for _, side := range []float32{-1, 1} {
		gun := a.addPart(center, math.Chain(
			math.Translate(side, 0, 0),
			math.RotateX(gomath.Pi/2),
			math.Scale(0.4, 1, 0.4),
		), mesh.Cylinder(12, 1), steel)
		// The cylinder axis runs along z after the rotation; the sphere
		// caps its rear end.
		a.addPart(gun, math.Chain(math.Translate(0, -0.5, 0), math.Scale(1.5, 0.6, 1.5)), mesh.Sphere(1), steel)
	}

	a.placeFighter2()
	return a
}

// NewFighter builds a fighter of the given kind.
func NewFighter(kind Kind, position math.Vec3) *Actor {
	switch kind {
	case KindFighter1:
		return NewFighter1(position)
	case KindFighter2:
		return NewFighter2(position)
	default:
		panic("entity: " + kind.String() + " is not a fighter")
	}
}

func (a *Actor) updateFighter1(dt float64) {
	a.Position = a.Position.Add(a.Velocity.Scale(float32(dt)))
	a.fighter.animation += dt
	a.placeFighter1()
}

func (a *Actor) placeFighter1() {
	a.graph.SetTransform(a.root, math.Chain(
		math.TranslateVec(a.Position),
		math.RotateX(gomath.Pi/2),
		math.RotateY(float32(a.fighter.animation*fighter1Spin)),
	))
}

func (a *Actor) updateFighter2(dt float64) {
	a.Position = a.Position.Add(a.Velocity.Scale(float32(dt)))

	f := a.fighter
	step := float32(dt) * fighter2PulseSpeed
	if f.growing {
		f.pulse += step
		if f.pulse >= fighter2PulseMax {
			f.pulse = fighter2PulseMax
			f.growing = false
		}
	} else {
		f.pulse -= step
		if f.pulse <= fighter2PulseMin {
			f.pulse = fighter2PulseMin
			f.growing = true
		}
	}
	a.placeFighter2()
}

func (a *Actor) placeFighter2() {
	a.graph.SetTransform(a.root, math.TranslateVec(a.Position).Mul(math.ScaleUniform(a.fighter.pulse)))
}

// Pulse returns the current scale of a Fighter2.
func (a *Actor) Pulse() float32 {
	a.mustBe(KindFighter2)
	return a.fighter.pulse
}
