package world

import (
	gomath "math"
	"math/rand"
	"slices"

	"go.uber.org/zap"

	"github.com/Faultbox/skirmish/internal/config"
	"github.com/Faultbox/skirmish/internal/engine/debug"
	"github.com/Faultbox/skirmish/internal/engine/mesh"
	"github.com/Faultbox/skirmish/internal/game/entity"
	"github.com/Faultbox/skirmish/pkg/math"
)

var boxColor = mesh.Color{R: 1, G: 1, B: 1, A: 1}

// Render advances the game by dt seconds and draws the frame.
func (c *Controller) Render(dt float64, d Drawer) {
	if c.state == StateGameOver {
		c.drawGameOver(d)
		return
	}
	now := c.clock.Now()

	c.cleanup()
	c.spawn(now)
	c.fireEnemies(now)
	c.updatePlayer(dt, now)

	c.scenery.Update(dt)
	c.scenery.Render(d)
	if c.playerVisible(now) {
		c.player.Render(d)
	}

	if c.resolveProjectiles(dt, d) {
		c.playerHit(now)
	}

	for _, f := range c.fighters {
		f.Update(dt)
		f.Render(d)
	}

	if c.showBoxes {
		c.drawBoundingBoxes(d)
	}
	c.drawHUD(d)
}

// cleanup drops projectiles that left the arena and fighters that got past
// the player. Escaped fighters cost their reward.
func (c *Controller) cleanup() {
	c.projectiles = slices.DeleteFunc(c.projectiles, func(p *entity.Actor) bool {
		return p.Position.Z > c.cfg.ProjectileNearZ || p.Position.Z < c.cfg.ProjectileFarZ
	})
	c.fighters = slices.DeleteFunc(c.fighters, func(f *entity.Actor) bool {
		if f.Position.Z <= c.cfg.EscapeZ {
			return false
		}
		c.addScore(-f.Reward)
		c.log.Debug("fighter escaped", zap.Stringer("kind", f.Kind), zap.Int("score", c.score))
		return true
	})
}

func (c *Controller) spawn(now float64) {
	if now-c.roundStart <= c.grace || now-c.lastSpawn <= c.interval {
		return
	}
	c.lastSpawn = now

	ax, ay := int(c.cfg.ArenaX), int(c.cfg.ArenaY)
	pos := math.Vec3{
		X: float32(c.rng.Intn(2*ax+1) - ax),
		Y: float32(c.rng.Intn(2*ay+1) - ay),
		Z: c.cfg.SpawnZ,
	}
	kind := pickFighter(c.rng, c.cfg.FighterWeights)
	c.fighters = append(c.fighters, entity.NewFighter(kind, pos))
	c.log.Debug("fighter spawned", zap.Stringer("kind", kind),
		zap.Float32("x", pos.X), zap.Float32("y", pos.Y), zap.Int("fighters", len(c.fighters)))
}

// pickFighter draws an enemy kind with odds proportional to w.
func pickFighter(rng *rand.Rand, w config.FighterWeights) entity.Kind {
	if rng.Intn(w.Fighter1+w.Fighter2) < w.Fighter1 {
		return entity.KindFighter1
	}
	return entity.KindFighter2
}

func (c *Controller) fireEnemies(now float64) {
	for _, f := range c.fighters {
		if !f.CanFire(now) {
			continue
		}
		f.LastShot = now
		for _, p := range f.SpawnPoints() {
			c.Fire(p, f.ShotVelocity, false)
		}
		c.sounds.PlaySound(CueEnemyShot)
	}
}

func (c *Controller) updatePlayer(dt, now float64) {
	c.player.SetInput(c.input)
	c.player.Update(dt)

	if !c.input.Fire || !c.player.CanFire(now) {
		return
	}
	c.player.LastShot = now
	for _, p := range c.player.SpawnPoints() {
		c.Fire(p, c.player.ShotVelocity, true)
	}
	c.sounds.PlaySound(CuePlayerShot)
}

// playerVisible makes the ship blink during the grace period: it shows
// for the first second, then every other half second.
func (c *Controller) playerVisible(now float64) bool {
	elapsed := now - c.roundStart
	if elapsed > c.grace || elapsed < 1 {
		return true
	}
	return int(gomath.Floor(elapsed*2))%2 == 1
}

// resolveProjectiles moves every projectile and applies hits in a single
// pass. It reports whether a hostile projectile reached the player.
func (c *Controller) resolveProjectiles(dt float64, d Drawer) bool {
	playerShot := false
	kept := c.projectiles[:0]
	for _, p := range c.projectiles {
		p.Update(dt)

		hit := false
		if !p.Friendly {
			hit = c.player.Contains(p.Position)
			playerShot = playerShot || hit
		} else {
			c.fighters = slices.DeleteFunc(c.fighters, func(f *entity.Actor) bool {
				if !f.Contains(p.Position) {
					return false
				}
				hit = true
				c.addScore(f.Reward)
				c.sounds.PlaySound(CueFighterDestroyed)
				c.log.Debug("fighter destroyed", zap.Stringer("kind", f.Kind), zap.Int("score", c.score))
				return true
			})
		}

		if hit {
			continue
		}
		p.Render(d)
		kept = append(kept, p)
	}
	clear(c.projectiles[len(kept):])
	c.projectiles = kept
	return playerShot
}

func (c *Controller) playerHit(now float64) {
	if c.god {
		return
	}
	c.startRound(now)
	c.fighters = nil
	c.projectiles = nil
	c.player.ResetPosition()
	c.lives--
	c.sounds.PlaySound(CuePlayerHit)
	c.log.Info("player hit", zap.Int("lives", c.lives), zap.Int("score", c.score))

	if c.lives <= 0 {
		c.lives = 0
		c.state = StateGameOver
		c.input = entity.Input{}
		c.sounds.PlaySound(CueGameOver)
		c.log.Info("game over", zap.Int("score", c.score))
	}
}

func (c *Controller) addScore(delta int) {
	c.score += delta
	if c.cfg.ClampScoreAtZero && c.score < 0 {
		c.score = 0
	}
}

func (c *Controller) drawBoundingBoxes(d Drawer) {
	var vertices []float32
	actors := append([]*entity.Actor{c.player}, c.fighters...)
	for _, a := range actors {
		vertices = debug.AppendBBoxWireframes(vertices, a.BoundingBox())
		vertices = debug.AppendBBoxWireframes(vertices, a.BoundingBoxes()...)
	}
	d.DrawLines(vertices, boxColor)
}
