package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is everything read from the TOML config file. Zero values are
// filled from Default before parsing, so a partial file only overrides
// what it names.
type Config struct {
	Window WindowConfig `toml:"window"`
	Game   GameConfig   `toml:"game"`
	Log    LogConfig    `toml:"log"`
	Audio  AudioConfig  `toml:"audio"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type GameConfig struct {
	// Seed fixes room layouts for the whole run. Zero draws a fresh seed
	// every launch.
	Seed      int64  `toml:"seed"`
	StartRoom string `toml:"start_room"`
}

type LogConfig struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
}

type AudioConfig struct {
	Muted  bool    `toml:"muted"`
	Volume float64 `toml:"volume"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  960,
			Height: 540,
			Title:  "topdown",
		},
		Game: GameConfig{
			StartRoom: "threshold",
		},
		Log: LogConfig{
			Level: "info",
		},
		Audio: AudioConfig{
			Volume: 0.8,
		},
	}
}

// Load reads a TOML config file into the defaults. Callers decide whether
// a missing file matters; Load passes the os.ErrNotExist through.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the game cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d is not positive", c.Window.Width, c.Window.Height)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %v outside [0, 1]", c.Audio.Volume)
	}
	if c.Game.StartRoom == "" {
		return fmt.Errorf("start_room is empty")
	}
	return nil
}
