// Package game wires the platform layer to the arena controller and runs
// the main loop.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/skirmish/internal/config"
	"github.com/Faultbox/skirmish/internal/engine/audio"
	"github.com/Faultbox/skirmish/internal/engine/debug"
	"github.com/Faultbox/skirmish/internal/engine/input"
	"github.com/Faultbox/skirmish/internal/engine/renderer"
	"github.com/Faultbox/skirmish/internal/engine/ui2d"
	"github.com/Faultbox/skirmish/internal/engine/window"
	"github.com/Faultbox/skirmish/internal/game/world"
	"github.com/Faultbox/skirmish/internal/logger"
)

// Title is the window title.
const Title = "Skirmish"

// Game is the main game instance.
type Game struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window      *window.Window
	renderer    *renderer.Renderer
	hud         *ui2d.Renderer
	input       *input.Input
	bindings    input.Bindings
	handlers    input.Handlers
	audio       *audio.Manager
	screenshots *debug.ScreenshotCapture

	clock      world.Clock
	controller *world.Controller

	screenshotPending bool
	fps               int
}

// New creates the window, renderer, HUD, audio and the arena controller.
func New(cfg *config.Config, rng *rand.Rand) (*Game, error) {
	g := &Game{
		cfg:         cfg,
		log:         logger.Named("game"),
		input:       input.New(),
		bindings:    input.DefaultBindings(),
		screenshots: debug.NewScreenshotCapture(cfg.Debug.ScreenshotDir, "skirmish"),
		clock:       world.SystemClock(),
	}

	g.log.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
	)

	// Window first: it owns the OpenGL context.
	var err error
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:  width,
		Height: height,
		FOV:    cfg.Graphics.FOV,
	})
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.hud, err = ui2d.New(width, height)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create HUD: %w", err)
	}

	opts := []world.Option{
		world.WithLogger(logger.Named("world")),
		world.WithPrinter(world.NewPrinter(cfg.Game.Language)),
		world.WithBoundingBoxes(cfg.Debug.ShowBoundingBoxes),
	}
	if sounds := g.initAudio(); sounds != nil {
		opts = append(opts, world.WithSounds(sounds))
	}

	g.controller = world.New(cfg.Gameplay, g.clock, rng, opts...)
	g.handlers = g.keyHandlers()

	g.log.Info("game initialized")
	return g, nil
}

// initAudio opens the speaker. A game without sound is still playable, so
// failures are logged and the controller keeps its silent default.
func (g *Game) initAudio() world.SoundPlayer {
	if g.cfg.Audio.Muted {
		g.log.Info("audio muted")
		return nil
	}

	m := audio.New()
	if err := m.Init(); err != nil {
		g.log.Warn("audio unavailable", zap.Error(err))
		return nil
	}
	m.SetMasterVolume(float64(g.cfg.Audio.MasterVolume))
	m.SetSFXVolume(float64(g.cfg.Audio.SFXVolume))
	g.audio = m
	return &cueSounds{manager: m, log: g.log}
}

func (g *Game) keyHandlers() input.Handlers {
	c := g.controller
	return input.Handlers{
		input.ActionUp:                 c.OnMoveUp,
		input.ActionDown:               c.OnMoveDown,
		input.ActionLeft:               c.OnMoveLeft,
		input.ActionRight:              c.OnMoveRight,
		input.ActionFire:               c.OnFire,
		input.ActionConfirm:            c.OnConfirm,
		input.ActionToggleDebug:        c.OnToggleDebug,
		input.ActionToggleInvulnerable: c.OnToggleInvulnerable,
		input.ActionScreenshot: func(down bool) {
			if down {
				g.screenshotPending = true
			}
		},
		input.ActionQuit: func(down bool) {
			if down {
				g.running = false
			}
		},
	}
}

// Run starts the main game loop.
func (g *Game) Run() error {
	g.running = true

	last := g.clock.Now()
	frameCount := 0
	fpsTimer := time.Now()
	var frameBudget time.Duration
	if !g.cfg.Graphics.VSync && g.cfg.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(g.cfg.Graphics.FPSLimit)
	}

	g.log.Info("starting game loop")

	for g.running {
		frameStart := time.Now()
		now := g.clock.Now()
		dt := now - last
		last = now

		if g.input.Update() {
			g.running = false
			break
		}
		for _, event := range g.input.Events() {
			if event.Type == input.EventWindowResize {
				g.resize()
			}
		}
		input.Dispatch(g.input.Events(), g.bindings, g.handlers)
		if !g.running {
			break
		}

		g.render(dt)
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.fps = frameCount
			g.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float64("dt_ms", dt*1000),
				zap.Int("score", g.controller.Score()),
				zap.Int("fighters", len(g.controller.Fighters())),
				zap.Int("projectiles", len(g.controller.Projectiles())),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if rest := frameBudget - time.Since(frameStart); rest > 0 {
				time.Sleep(rest)
			}
		}
	}

	g.log.Info("game loop stopped", zap.Int("score", g.controller.Score()))
	return nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	g.log.Info("closing game")

	if g.audio != nil {
		g.audio.Close()
	}
	if g.hud != nil {
		g.hud.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

func (g *Game) resize() {
	width, height := g.window.DrawableSize()
	g.renderer.Resize(width, height)
	g.hud.Resize(width, height)
}

// render draws one frame and takes a pending screenshot.
func (g *Game) render(dt float64) {
	g.renderer.Begin()
	g.hud.Begin()

	g.controller.Render(dt, &frameDrawer{renderer: g.renderer, hud: g.hud})
	g.renderer.End()

	if g.cfg.Game.ShowFPS {
		_, height := g.hud.GetScreenSize()
		label := fmt.Sprintf("%d FPS", g.fps)
		w, h := g.hud.MeasureText(label, 18)
		y := float32(height) - h - 8
		g.hud.DrawRect(4, y-4, w+8, h+8, ui2d.ColorPanelBg)
		g.hud.DrawText(8, y, label, 18, ui2d.ColorWhite, ui2d.AlignLeft)
	}
	g.hud.End()

	if g.screenshotPending {
		g.screenshotPending = false
		pixels, width, height := g.renderer.ReadPixels()
		path, err := g.screenshots.CaptureFromPixels(pixels, width, height)
		if err != nil {
			g.log.Error("screenshot failed", zap.Error(err))
		} else {
			g.log.Info("screenshot saved", zap.String("path", path))
		}
	}
}
