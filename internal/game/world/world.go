// Package world runs the arena: it spawns fighters, moves every actor,
// resolves hits and keeps the score.
//
// A Controller is driven by its host once per frame through Render and
// receives key state through the On* setters. It never blocks and is not
// safe for concurrent use.
package world

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Faultbox/skirmish/internal/config"
	"github.com/Faultbox/skirmish/internal/engine/mesh"
	"github.com/Faultbox/skirmish/internal/game/entity"
	"github.com/Faultbox/skirmish/pkg/math"
)

// Clock is a monotonic source of seconds.
type Clock interface {
	Now() float64
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() float64

// Now implements Clock.
func (f ClockFunc) Now() float64 { return f() }

// SystemClock counts seconds since its creation.
func SystemClock() Clock {
	start := time.Now()
	return ClockFunc(func() float64 { return time.Since(start).Seconds() })
}

// Align positions text relative to its anchor.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Drawer is everything a frame needs from the renderer.
type Drawer interface {
	entity.Drawer
	// DrawText draws a string at a position normalized to the viewport,
	// (0, 0) being the top-left corner.
	DrawText(text string, pos math.Vec2, color mesh.Color, size float32, align Align)
	// DrawLines draws xyz line-list vertices in world space.
	DrawLines(vertices []float32, color mesh.Color)
}

// Cue names a sound effect.
type Cue uint8

const (
	CuePlayerShot Cue = iota
	CueEnemyShot
	CueFighterDestroyed
	CuePlayerHit
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CuePlayerShot:
		return "player_shot"
	case CueEnemyShot:
		return "enemy_shot"
	case CueFighterDestroyed:
		return "fighter_destroyed"
	case CuePlayerHit:
		return "player_hit"
	case CueGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("cue(%d)", c)
	}
}

// SoundPlayer plays cues without blocking.
type SoundPlayer interface {
	PlaySound(cue Cue)
}

type silence struct{}

func (silence) PlaySound(Cue) {}

// State is the phase of a game.
type State uint8

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "playing"
}

// Option configures a Controller.
type Option func(*Controller)

// WithSounds routes sound cues to p.
func WithSounds(p SoundPlayer) Option {
	return func(c *Controller) { c.sounds = p }
}

// WithLogger sets the logger used for game events.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithPrinter sets the printer used to format HUD text.
func WithPrinter(p *message.Printer) Option {
	return func(c *Controller) { c.printer = p }
}

// WithBoundingBoxes starts the game with bounding boxes shown.
func WithBoundingBoxes(show bool) Option {
	return func(c *Controller) { c.showBoxes = show }
}

// Controller owns every actor of a game and the session bookkeeping.
type Controller struct {
	cfg          config.GameplayConfig
	playerParams entity.PlayerParams
	grace        float64
	interval     float64

	clock   Clock
	rng     *rand.Rand
	log     *zap.Logger
	sounds  SoundPlayer
	printer *message.Printer

	state       State
	player      *entity.Actor
	fighters    []*entity.Actor
	projectiles []*entity.Actor
	scenery     *entity.Scenery

	score int
	lives int
	god   bool

	roundStart float64
	lastSpawn  float64

	input     entity.Input
	showBoxes bool
	debugHeld bool
	godHeld   bool
}

// New creates a controller and starts the first game. It panics on a nil
// clock or random source and on gameplay settings that fail validation.
func New(cfg config.GameplayConfig, clock Clock, rng *rand.Rand, opts ...Option) *Controller {
	if clock == nil || rng == nil {
		panic("world: New needs a clock and a random source")
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("world: %v", err))
	}

	c := &Controller{
		cfg: cfg,
		playerParams: entity.PlayerParams{
			AccelValue:      cfg.AccelValue,
			Friction:        cfg.Friction,
			MaxSpeed:        cfg.MaxSpeed,
			MaxPitch:        cfg.MaxPitch,
			MaxRoll:         cfg.MaxRoll,
			RotationCoeff:   cfg.RotationCoeff,
			ArenaX:          cfg.ArenaX,
			ArenaY:          cfg.ArenaY,
			ShotDelay:       cfg.ShotDelay.Seconds(),
			ProjectileSpeed: cfg.PlayerProjectileSpeed,
		},
		grace:    cfg.SpawnGracePeriod.Seconds(),
		interval: cfg.SpawnInterval.Seconds(),
		clock:    clock,
		rng:      rng,
		log:      zap.NewNop(),
		sounds:   silence{},
		printer:  message.NewPrinter(language.English),
		scenery:  entity.NewScenery(),
		god:      cfg.GodMode,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.restart()
	return c
}

// restart begins a new game.
func (c *Controller) restart() {
	c.state = StatePlaying
	c.player = entity.NewPlayer(c.playerParams, c.rng)
	c.fighters = nil
	c.projectiles = nil
	c.score = 0
	c.lives = c.cfg.Lives
	c.input = entity.Input{}
	c.god = c.cfg.GodMode
	c.startRound(c.clock.Now())
	c.log.Info("game started", zap.Int("lives", c.lives), zap.Bool("god_mode", c.god))
}

// startRound opens a grace period. The spawn clock is primed so the first
// fighter appears as soon as the grace period ends.
func (c *Controller) startRound(now float64) {
	c.roundStart = now
	c.lastSpawn = now - c.interval
}

// Score returns the current score. It may be negative.
func (c *Controller) Score() int { return c.score }

// Lives returns the remaining lives.
func (c *Controller) Lives() int { return c.lives }

// GameOver reports whether the game has ended.
func (c *Controller) GameOver() bool { return c.state == StateGameOver }

// State returns the current phase.
func (c *Controller) State() State { return c.state }

// Invulnerable reports whether hits on the player are ignored.
func (c *Controller) Invulnerable() bool { return c.god }

// ShowBoundingBoxes reports whether bounding boxes are drawn.
func (c *Controller) ShowBoundingBoxes() bool { return c.showBoxes }

// Player returns the player ship.
func (c *Controller) Player() *entity.Actor { return c.player }

// Fighters returns the live fighters in spawn order. The slice must not
// be modified.
func (c *Controller) Fighters() []*entity.Actor { return c.fighters }

// Projectiles returns the live projectiles in firing order. The slice must
// not be modified.
func (c *Controller) Projectiles() []*entity.Actor { return c.projectiles }

// Fire launches a projectile.
func (c *Controller) Fire(origin, velocity math.Vec3, friendly bool) *entity.Actor {
	p := entity.NewShot(origin, velocity, friendly)
	c.projectiles = append(c.projectiles, p)
	return p
}

// OnMoveUp sets the up key state.
func (c *Controller) OnMoveUp(down bool) {
	if c.state == StatePlaying {
		c.input.Up = down
	}
}

// OnMoveDown sets the down key state.
func (c *Controller) OnMoveDown(down bool) {
	if c.state == StatePlaying {
		c.input.Down = down
	}
}

// OnMoveLeft sets the left key state.
func (c *Controller) OnMoveLeft(down bool) {
	if c.state == StatePlaying {
		c.input.Left = down
	}
}

// OnMoveRight sets the right key state.
func (c *Controller) OnMoveRight(down bool) {
	if c.state == StatePlaying {
		c.input.Right = down
	}
}

// OnFire sets the fire key state. After a game over, pressing fire starts
// a new game.
func (c *Controller) OnFire(down bool) {
	if c.state == StatePlaying {
		c.input.Fire = down
		return
	}
	c.OnConfirm(down)
}

// OnConfirm starts a new game when pressed after a game over.
func (c *Controller) OnConfirm(down bool) {
	if down && c.state == StateGameOver {
		c.restart()
	}
}

// OnToggleDebug flips bounding box display on each press.
func (c *Controller) OnToggleDebug(down bool) {
	if down && !c.debugHeld && c.state == StatePlaying {
		c.showBoxes = !c.showBoxes
	}
	c.debugHeld = down
}

// OnToggleInvulnerable flips invulnerability on each press.
func (c *Controller) OnToggleInvulnerable(down bool) {
	if down && !c.godHeld && c.state == StatePlaying {
		c.god = !c.god
		c.log.Info("invulnerability toggled", zap.Bool("god_mode", c.god))
	}
	c.godHeld = down
}
