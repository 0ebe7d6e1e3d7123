package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/milk9111/topdown/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "topdown.toml", "path to the TOML config file")
	startRoom := flag.String("room", "", "override the starting room")
	seed := flag.Uint64("seed", 0, "fix the run seed (0 uses the config, then the clock)")
	dev := flag.Bool("dev", false, "watch prefabs/ for edits and enable the debug overlay")
	mute := flag.Bool("mute", false, "start with audio muted")
	flag.Parse()

	configSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			configSet = true
		}
	})

	cfg, err := config.Load(*configPath)
	if err != nil {
		// a missing default config is fine; a missing explicit one is not
		if !errors.Is(err, fs.ErrNotExist) || configSet {
			return err
		}
		cfg = config.Default()
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if *startRoom != "" {
		cfg.Game.StartRoom = *startRoom
	}
	if *mute {
		cfg.Audio.Muted = true
	}
	runSeed := *seed
	if runSeed == 0 && cfg.Game.Seed != 0 {
		runSeed = uint64(cfg.Game.Seed)
	}

	game, err := NewGame(cfg, logger, runSeed, *dev)
	if err != nil {
		return err
	}
	defer game.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	logger.Info("starting",
		zap.String("room", cfg.Game.StartRoom),
		zap.Bool("dev", *dev))

	return ebiten.RunGame(game)
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zcfg zap.Config
	if cfg.JSON {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zcfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zcfg.EncoderConfig.ConsoleSeparator = "  "
		zcfg.DisableCaller = true
		zcfg.DisableStacktrace = true
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
