package bough

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// RunConfig configures the window and game loop opened by Run.
//
// A RunConfig can be written by hand or loaded from a TOML file:
//
//	title = "My Game"
//	width = 1280
//	height = 720
//	design_width = 640
//	design_height = 360
//
//	[logging]
//	level = "debug"
type RunConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`

	// DesignWidth and DesignHeight are the resolution the scene is authored
	// at. When both are set, window resizes update DefaultScale so world
	// units map onto the actual window. Zero disables scaling.
	DesignWidth  int `toml:"design_width"`
	DesignHeight int `toml:"design_height"`

	TPS       int  `toml:"tps"`
	Resizable bool `toml:"resizable"`
	ShowFPS   bool `toml:"show_fps"`
	Debug     bool `toml:"debug"`

	Logging LoggingConfig `toml:"logging"`
}

// LoggingConfig selects the zap logger built by NewLogger.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// DefaultRunConfig returns the values Run uses for anything a config file
// leaves unset.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:  "bough",
		Width:  640,
		Height: 480,
		TPS:    60,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadRunConfig reads a TOML run configuration from path on top of
// DefaultRunConfig.
func LoadRunConfig(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseRunConfig(data)
	if err != nil {
		return RunConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseRunConfig decodes TOML data on top of DefaultRunConfig.
func ParseRunConfig(data []byte) (RunConfig, error) {
	cfg := DefaultRunConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, err
	}
	if err := cfg.validate(); err != nil {
		return RunConfig{}, err
	}
	return cfg, nil
}

func (c RunConfig) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.DesignWidth < 0 || c.DesignHeight < 0 {
		return fmt.Errorf("design size %dx%d must not be negative", c.DesignWidth, c.DesignHeight)
	}
	if (c.DesignWidth == 0) != (c.DesignHeight == 0) {
		return fmt.Errorf("design size %dx%d must set both dimensions or neither", c.DesignWidth, c.DesignHeight)
	}
	if c.TPS < 0 {
		return fmt.Errorf("tps %d must not be negative", c.TPS)
	}
	return nil
}
