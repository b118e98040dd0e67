package config

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate reports every setting that would leave the game unplayable.
func (c *Config) Validate() error {
	var err error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("graphics: invalid resolution %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.FOV <= 0 || c.Graphics.FOV >= 180 {
		err = multierr.Append(err, fmt.Errorf("graphics: fov %g out of (0, 180)", c.Graphics.FOV))
	}
	return multierr.Append(err, c.Gameplay.Validate())
}

// Validate checks the gameplay tunables.
func (g GameplayConfig) Validate() error {
	var err error
	positive := []struct {
		name  string
		value float32
	}{
		{"accel_value", g.AccelValue},
		{"max_speed", g.MaxSpeed},
		{"player_projectile_speed", g.PlayerProjectileSpeed},
		{"arena_x", g.ArenaX},
		{"arena_y", g.ArenaY},
	}
	for _, p := range positive {
		if p.value <= 0 {
			err = multierr.Append(err, fmt.Errorf("gameplay: %s must be positive, got %g", p.name, p.value))
		}
	}
	if g.Friction < 0 {
		err = multierr.Append(err, fmt.Errorf("gameplay: friction must not be negative, got %g", g.Friction))
	}
	if g.MaxPitch < 0 || g.MaxRoll < 0 {
		err = multierr.Append(err, fmt.Errorf("gameplay: max_pitch and max_roll must not be negative"))
	}
	if g.Lives <= 0 {
		err = multierr.Append(err, fmt.Errorf("gameplay: lives must be positive, got %d", g.Lives))
	}
	if g.ShotDelay < 0 {
		err = multierr.Append(err, fmt.Errorf("gameplay: shot_delay must not be negative, got %v", g.ShotDelay))
	}
	if g.SpawnInterval <= 0 {
		err = multierr.Append(err, fmt.Errorf("gameplay: spawn_interval must be positive, got %v", g.SpawnInterval))
	}
	if g.SpawnGracePeriod < 0 {
		err = multierr.Append(err, fmt.Errorf("gameplay: spawn_grace_period must not be negative, got %v", g.SpawnGracePeriod))
	}
	if g.ProjectileFarZ >= g.ProjectileNearZ {
		err = multierr.Append(err, fmt.Errorf("gameplay: projectile_far_z %g must be below projectile_near_z %g", g.ProjectileFarZ, g.ProjectileNearZ))
	}
	w := g.FighterWeights
	if w.Fighter1 < 0 || w.Fighter2 < 0 || w.Fighter1+w.Fighter2 == 0 {
		err = multierr.Append(err, fmt.Errorf("gameplay: fighter_weights must be non-negative with a positive sum, got %d/%d", w.Fighter1, w.Fighter2))
	}
	return err
}
