// Package config provides YAML-based configuration of the window, the frame
// loop, the backend and logging.
package config

import (
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blank/internal/core"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Backends are the backend names a config may select.
var Backends = []string{"sdl", "ebiten", "terminal"}

// LogLevels are the accepted log.level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config is the complete runtime configuration.
type Config struct {
	Window  WindowConfig `yaml:"window"`
	Loop    LoopConfig   `yaml:"loop"`
	Backend string       `yaml:"backend"` // empty selects the platform default
	Log     LogConfig    `yaml:"log"`
}

// WindowConfig describes the game window.
type WindowConfig struct {
	Width      int         `yaml:"width"`
	Height     int         `yaml:"height"`
	Title      string      `yaml:"title"`
	ClearColor ColorConfig `yaml:"clear_color"`
}

// ColorConfig is an RGBA color.
type ColorConfig struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// Color converts to core.Color.
func (c ColorConfig) Color() core.Color {
	return core.NewColor(c.R, c.G, c.B, c.A)
}

// LoopConfig tunes the native frame loop.
type LoopConfig struct {
	TargetFPS   float64 `yaml:"target_fps"`   // <= 0 runs unregulated
	DrainEvents bool    `yaml:"drain_events"` // consume all pending events per frame
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate checks that the configuration can be run.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Backend != "" && !slices.Contains(Backends, c.Backend) {
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Backend)
	}
	if c.Log.Level != "" && !slices.Contains(LogLevels, c.Log.Level) {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
