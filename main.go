package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"ebiten-raycaster/config"
	"ebiten-raycaster/engine"
)

const defaultConfigPath = "config/raycaster.toml"

func main() {
	cpuProfile := flag.Bool("profile", false, "write a CPU profile to the working directory")
	flag.Parse()

	// os.Exit skips deferred calls, so it only happens once run has returned
	if err := run(*cpuProfile); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run(cpuProfile bool) error {
	if cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	path := os.Getenv("RAYCASTER_CONFIG")
	if path == "" {
		path = defaultConfigPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	eng, err := engine.New(cfg, logger)
	if err != nil {
		logger.Error("engine construction failed", zap.Error(err))
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	game := NewGame(eng, cfg.Simulation, logger)
	g.Go(func() error {
		return game.runSimulation(ctx)
	})

	width, height := config.GetScreenDimensions()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Ebiten Raycaster")
	runErr := ebiten.RunGame(game)

	cancel()
	if err := g.Wait(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		return fmt.Errorf("game loop: %w", runErr)
	}
	return nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
