// Package config handles game configuration loading and management.
package config

import "time"

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Audio    AudioConfig    `yaml:"audio"`
	Game     GameConfig     `yaml:"game"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FPSLimit   int     `yaml:"fps_limit"`
	FOV        float32 `yaml:"fov"` // Vertical field of view in degrees
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	MasterVolume float32 `yaml:"master_volume"`
	SFXVolume    float32 `yaml:"sfx_volume"`
	Muted        bool    `yaml:"muted"`
}

// GameConfig holds presentation settings.
type GameConfig struct {
	Language string `yaml:"language"` // BCP 47 tag used for HUD number formatting
	ShowFPS  bool   `yaml:"show_fps"`
}

// GameplayConfig holds the tunables of the arena and its actors.
type GameplayConfig struct {
	Seed    int64 `yaml:"seed"` // 0 picks a time-based seed
	GodMode bool  `yaml:"god_mode"`
	Lives   int   `yaml:"lives"`

	// Player ship
	AccelValue            float32       `yaml:"accel_value"`
	Friction              float32       `yaml:"friction"`
	MaxSpeed              float32       `yaml:"max_speed"`
	MaxPitch              float32       `yaml:"max_pitch"` // degrees
	MaxRoll               float32       `yaml:"max_roll"`  // degrees
	RotationCoeff         float32       `yaml:"rotation_coeff"`
	ShotDelay             time.Duration `yaml:"shot_delay"`
	PlayerProjectileSpeed float32       `yaml:"player_projectile_speed"`

	// Arena
	ArenaX          float32 `yaml:"arena_x"`
	ArenaY          float32 `yaml:"arena_y"`
	SpawnZ          float32 `yaml:"spawn_z"`
	EscapeZ         float32 `yaml:"escape_z"`
	ProjectileNearZ float32 `yaml:"projectile_near_z"`
	ProjectileFarZ  float32 `yaml:"projectile_far_z"`

	// Spawning
	SpawnGracePeriod time.Duration  `yaml:"spawn_grace_period"`
	SpawnInterval    time.Duration  `yaml:"spawn_interval"`
	FighterWeights   FighterWeights `yaml:"fighter_weights"`

	ClampScoreAtZero bool `yaml:"clamp_score_at_zero"`
}

// FighterWeights are the relative odds of each enemy type at spawn time.
type FighterWeights struct {
	Fighter1 int `yaml:"fighter1"`
	Fighter2 int `yaml:"fighter2"`
}

// DebugConfig holds developer toggles.
type DebugConfig struct {
	ShowBoundingBoxes bool   `yaml:"show_bounding_boxes"`
	ScreenshotDir     string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			FOV:        45,
		},
		Audio: AudioConfig{
			MasterVolume: 0.8,
			SFXVolume:    0.8,
			Muted:        false,
		},
		Game: GameConfig{
			Language: "en",
			ShowFPS:  false,
		},
		Gameplay: DefaultGameplay(),
		Debug: DebugConfig{
			ShowBoundingBoxes: false,
			ScreenshotDir:     "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// DefaultGameplay returns the stock arena tuning.
func DefaultGameplay() GameplayConfig {
	return GameplayConfig{
		Lives: 5,

		AccelValue:            30,
		Friction:              10,
		MaxSpeed:              20,
		MaxPitch:              35,
		MaxRoll:               15,
		RotationCoeff:         2.5,
		ShotDelay:             250 * time.Millisecond,
		PlayerProjectileSpeed: 50,

		ArenaX:          8,
		ArenaY:          7,
		SpawnZ:          -100,
		EscapeZ:         5,
		ProjectileNearZ: 10,
		ProjectileFarZ:  -100,

		SpawnGracePeriod: 5 * time.Second,
		SpawnInterval:    3 * time.Second,
		FighterWeights:   FighterWeights{Fighter1: 3, Fighter2: 1},
	}
}
