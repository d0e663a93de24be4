package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blank/internal/app"
	"github.com/vovakirdan/blank/internal/config"
	"github.com/vovakirdan/blank/internal/platform"
	"github.com/vovakirdan/blank/internal/registry"
)

var flagBackend string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the game",
	Long: `Open the game window and run until it is closed.

Controls:
  Left/Right   - Walk
  Up/Space     - Jump
  Esc          - Quit (also closing the window, or q in the terminal)

Examples:
  blank run
  blank run --backend ebiten
  blank run --backend terminal --fps 30`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Backend to run with (see 'blank backends')")
}

func runRun(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(app.ExitFailure)
	}

	name := backendName(cfg)
	if err := checkBackend(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'blank backends' to see available backends.")
		os.Exit(app.ExitFailure)
	}

	logger := newLogger(cfg.Log.Level)
	sub, err := registry.Create(name, platform.Options{
		TargetFPS:   cfg.Loop.TargetFPS,
		DrainEvents: cfg.Loop.DrainEvents,
		Logger:      logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(app.ExitFailure)
	}
	logger.Debug("starting", "backend", name, "fps", cfg.Loop.TargetFPS)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := app.Run(ctx, sub, app.Config{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Title:      cfg.Window.Title,
		ClearColor: cfg.Window.ClearColor.Color(),
		Logger:     logger,
	})
	stop()

	if code != app.ExitSuccess {
		os.Exit(code)
	}
}

// checkBackend reports an error if the named backend is not compiled in.
func checkBackend(name string) error {
	if !registry.Exists(name) {
		return fmt.Errorf("backend %q is not available in this build", name)
	}
	return nil
}

// backendName returns the configured backend, or the platform default.
func backendName(cfg config.Config) string {
	if cfg.Backend != "" {
		return cfg.Backend
	}
	return defaultBackend
}
