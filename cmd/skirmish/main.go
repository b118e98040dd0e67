// Package main is the entry point for Skirmish.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/skirmish/internal/config"
	"github.com/Faultbox/skirmish/internal/game"
	"github.com/Faultbox/skirmish/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== Skirmish ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	seed := cfg.Gameplay.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("random seed", zap.Int64("seed", seed))

	g, err := game.New(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		return 1
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("game error", zap.Error(err))
		return 1
	}

	logger.Info("game closed normally")
	return 0
}
