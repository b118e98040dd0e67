package entity

import (
	gomath "math"
	"math/rand"

	"github.com/Faultbox/skirmish/internal/engine/mesh"
	"github.com/Faultbox/skirmish/internal/engine/scene"
	"github.com/Faultbox/skirmish/pkg/math"
)

// Player palette.
var (
	oxBlood   = mesh.RGB(128, 0, 32)
	celeste   = mesh.RGB(178, 255, 255)
	silver    = mesh.RGB(192, 192, 192)
	oldSilver = mesh.RGB(132, 132, 130)
	flame     = mesh.RGB(226, 88, 34)

	// PlayerShotInner and PlayerShotOuter color friendly projectiles.
	PlayerShotInner = mesh.Color{R: 0.7, A: 1}
	PlayerShotOuter = mesh.Color{R: 0.7, A: 0.8}
)

var playerMuzzles = [4]math.Vec3{
	{X: -1, Z: -0.5},
	{X: 1, Z: -0.5},
	{Y: 0.5, Z: -0.5},
	{Y: -0.5, Z: -0.5},
}

// PlayerParams tune the ship's handling.
type PlayerParams struct {
	AccelValue    float32
	Friction      float32
	MaxSpeed      float32
	MaxPitch      float32 // degrees, vertical tilt
	MaxRoll       float32 // degrees, bank
	RotationCoeff float32
	ArenaX        float32
	ArenaY        float32

	ShotDelay       float64 // seconds
	ProjectileSpeed float32
}

// DefaultPlayerParams returns the stock handling.
func DefaultPlayerParams() PlayerParams {
	return PlayerParams{
		AccelValue:      30,
		Friction:        10,
		MaxSpeed:        20,
		MaxPitch:        35,
		MaxRoll:         15,
		RotationCoeff:   2.5,
		ArenaX:          8,
		ArenaY:          7,
		ShotDelay:       0.25,
		ProjectileSpeed: 50,
	}
}

// Input is the set of held controls.
type Input struct {
	Up, Down, Left, Right bool
	Fire                  bool
}

type playerState struct {
	params PlayerParams
	rng    *rand.Rand
	Input  Input

	speed    math.Vec2
	rotation math.Vec2 // x banks, y tilts

	coreTransform math.Mat4
	fires         [4]scene.NodeID
	fireTransform math.Mat4
}

// NewPlayer builds the player ship at the origin. rng drives the cosmetic
// flame flicker.
func NewPlayer(params PlayerParams, rng *rand.Rand) *Actor {
	if rng == nil {
		panic("entity: NewPlayer needs a random source")
	}
	a := newActor(KindPlayer)
	a.RateOfFire = params.ShotDelay
	a.ShotVelocity = math.Vec3{Z: -params.ProjectileSpeed}
	a.Friendly = true
	a.LastShot = gomath.Inf(-1)

	p := &playerState{
		params:        params,
		rng:           rng,
		coreTransform: math.Scale(1, 1, 0.25).Mul(math.RotateX(-gomath.Pi / 2)),
		fireTransform: math.Scale(0.5, 2, 0.5).Mul(math.Translate(0, -0.25, 0)),
	}
	a.player = p

	core := a.addPart(scene.Nil, p.coreTransform, mesh.Pyramid(), oxBlood)

	backCore := a.addPart(core,
		math.Translate(0, -0.5, 0).Mul(math.Scale(1.25, 0.5, 1.25)),
		mesh.Cylinder(16, 1), celeste)
	a.addPart(backCore, math.Chain(
		math.Scale(1, 0.5, 0.25),
		math.RotateX(gomath.Pi/2),
		math.Translate(-0.75, 1, -1.5),
		math.ShearY(-1, 0.25),
	), mesh.Box(), silver)
	a.addPart(backCore, math.Chain(
		math.Scale(1, 0.5, 0.25),
		math.RotateX(gomath.Pi/2),
		math.Translate(0.75, 1, -1.5),
		math.ShearY(1, 0.25),
	), mesh.Box(), silver)

	leftWingShape := math.Chain(math.RotateX(gomath.Pi/2), math.ShearY(1, 0.25), math.ShearZ(-1, 0.25))
	rightWingShape := math.Chain(math.RotateX(gomath.Pi/2), math.ShearY(-1, 0.25), math.ShearZ(1, 0.25))

	wings := []struct {
		shape   math.Mat4
		offset  math.Vec3
		rockets [2]math.Vec3
	}{
		{leftWingShape, math.Vec3{X: -0.75, Y: -2, Z: 1.75}, [2]math.Vec3{{X: 1, Z: -0.75}, {X: -1, Z: -1.25}}},
		{rightWingShape, math.Vec3{X: 0.75, Y: -2, Z: 1.75}, [2]math.Vec3{{X: -1, Z: -0.75}, {X: 1, Z: -1.25}}},
	}
	n := 0
	for _, w := range wings {
		wing := a.addPart(core,
			math.Chain(math.Scale(1.25, 0.25, 0.25), w.shape, math.TranslateVec(w.offset)),
			mesh.Box(), silver)
		// Rockets cancel the wing shear so they stay round.
		unshear := w.shape.Inverse()
		for _, r := range w.rockets {
			rocket := a.addPart(wing,
				math.Chain(unshear, math.Scale(0.25, 2, 1), math.TranslateVec(r)),
				mesh.Cylinder(8, 0.5), oldSilver)
			p.fires[n] = a.addPart(rocket, p.fireTransform, mesh.Cylinder(8, 0.25), flame)
			n++
		}
	}

	a.placePlayer()
	return a
}

// SetInput replaces the held controls.
func (a *Actor) SetInput(in Input) {
	a.mustBe(KindPlayer)
	a.player.Input = in
}

// Input returns the held controls of the player.
func (a *Actor) Input() Input {
	a.mustBe(KindPlayer)
	return a.player.Input
}

// Speed returns the planar speed of the player.
func (a *Actor) Speed() math.Vec2 {
	a.mustBe(KindPlayer)
	return a.player.speed
}

// Tilt returns the accumulated bank (x) and pitch (y) of the player in degrees.
func (a *Actor) Tilt() math.Vec2 {
	a.mustBe(KindPlayer)
	return a.player.rotation
}

// ResetPosition puts the player back at the origin and stops it.
func (a *Actor) ResetPosition() {
	a.mustBe(KindPlayer)
	a.Position = math.Vec3{}
	a.player.speed = math.Vec2{}
	a.player.rotation = math.Vec2{}
	a.placePlayer()
}

func (a *Actor) updatePlayer(dt float32) {
	p := a.player
	in := p.Input

	var dir math.Vec2
	if in.Right {
		dir.X++
	}
	if in.Left {
		dir.X--
	}
	if in.Up {
		dir.Y++
	}
	if in.Down {
		dir.Y--
	}
	accel := dir.Normalize().Scale(p.params.AccelValue)

	maxSpeed := math.Vec2{X: p.params.MaxSpeed, Y: p.params.MaxSpeed}
	p.speed = decay(p.speed.Add(accel.Scale(dt)), p.params.Friction*dt).
		Clamp(maxSpeed.Scale(-1), maxSpeed)

	a.Position.X = math.Clamp(a.Position.X+p.speed.X*dt, -p.params.ArenaX, p.params.ArenaX)
	a.Position.Y = math.Clamp(a.Position.Y+p.speed.Y*dt, -p.params.ArenaY, p.params.ArenaY)

	maxTilt := math.Vec2{X: p.params.MaxRoll, Y: p.params.MaxPitch}
	p.rotation = decay(p.rotation.Add(accel.Scale(dt)), p.params.Friction*dt).
		Clamp(maxTilt.Scale(-1), maxTilt)

	a.placePlayer()

	// Flames stretch with speed, with some flicker.
	fireLen := 0.5*maxSpeedRatio(p.speed, p.params.MaxSpeed) - 0.5
	for _, id := range p.fires {
		jitter := -fireLen * p.rng.Float32()
		a.graph.SetTransform(id, p.fireTransform.Mul(math.Translate(0, jitter, 0)))
	}
}

func (a *Actor) placePlayer() {
	p := a.player
	toRad := float32(gomath.Pi/180) * p.params.RotationCoeff
	pitch := math.QuatFromAxisAngle(math.AxisX, p.rotation.Y*toRad)
	bank := math.QuatFromAxisAngle(math.AxisZ, -p.rotation.X*toRad)
	a.graph.SetTransform(a.root, math.Chain(
		math.TranslateVec(a.Position),
		p.coreTransform,
		pitch.Mul(bank).ToMat4(),
	))
}

// decay pulls each component toward zero by amount without crossing it.
func decay(v math.Vec2, amount float32) math.Vec2 {
	s := v.Sign()
	out := v.Sub(s.Scale(amount))
	if out.Sign().X != s.X {
		out.X = 0
	}
	if out.Sign().Y != s.Y {
		out.Y = 0
	}
	return out
}

func maxSpeedRatio(speed math.Vec2, maxSpeed float32) float32 {
	return speed.Length() / math.Vec2{X: maxSpeed, Y: maxSpeed}.Length()
}

func (a *Actor) mustBe(kind Kind) {
	if a.Kind != kind {
		panic("entity: " + a.Kind.String() + " used as " + kind.String())
	}
}
