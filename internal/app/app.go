// Package app is the process entry point: it brings the platform up, runs
// the game loop and tears everything down in order, failing fast on setup errors.
package app

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blank/internal/core"
	"github.com/vovakirdan/blank/internal/game"
	"github.com/vovakirdan/blank/internal/platform"
)

// Process exit codes.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Window defaults.
const (
	DefaultWidth  = 1024
	DefaultHeight = 768
	DefaultTitle  = "SDL2 game blank"
)

// Config describes the window the game runs in.
type Config struct {
	Width      int
	Height     int
	Title      string
	ClearColor core.Color
	Logger     *log.Logger
}

// DefaultConfig returns the standard window configuration.
func DefaultConfig() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Title:      DefaultTitle,
		ClearColor: core.ColorBackground,
		Logger:     log.Default(),
	}
}

// Run initializes sub, opens the window, runs the game until its loop
// terminates and returns the process exit code. Every resource acquired is
// released on every return path, the game state before the renderer, the
// renderer before the window, and the window before the subsystem.
func Run(ctx context.Context, sub platform.Subsystem, cfg Config) int {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	if err := sub.Init(); err != nil {
		logger.Error("Failed to initialize subsystem", "err", err)
		return ExitFailure
	}
	defer sub.Quit()

	display, err := sub.OpenWindow(cfg.Width, cfg.Height)
	if err != nil {
		logger.Error("Failed to create window and renderer", "err", err)
		return ExitFailure
	}
	defer display.DestroyWindow()
	defer display.DestroyRenderer()

	display.SetTitle(cfg.Title)
	display.SetClearColor(cfg.ClearColor)

	play(ctx, display, logger)

	return ExitSuccess
}

// play owns the game state; it is closed before Run destroys the renderer.
func play(ctx context.Context, display platform.Display, logger *log.Logger) {
	state := game.New(display.Renderer(), display.Keyboard(), display.Clock())
	defer func() {
		if err := state.Close(); err != nil {
			logger.Warn("game state cleanup failed", "err", err)
		}
	}()

	driver := display.Driver()
	logger.Debug("main loop starting", "driver", driver.State())
	if err := driver.Run(ctx, state); err != nil {
		logger.Warn("main loop stopped", "err", err)
	}
	logger.Debug("main loop finished", "driver", driver.State())
}
