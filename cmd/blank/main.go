// blank is a minimal 2D platformer skeleton: a window, a tile map, a player
// with gravity and an FPS readout, driven by a frame-regulated game loop.
//
// Usage:
//
//	blank                   - Run the game with the configured backend
//	blank run               - Same as above
//	blank backends          - List the backends compiled into this binary
//	blank config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.blank/config.yaml, ./configs/blank.yaml)
//	--log-level <level> - debug, info, warn or error
//	--fps <rate>        - Target frame rate of the native loop (<= 0 disables regulation)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blank/internal/config"

	// Import backends to register them
	_ "github.com/vovakirdan/blank/internal/platform/ebitenhost"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagFPS      float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blank",
	Short: "blank - a 2D platformer game skeleton",
	Long: `blank opens a 1024x768 window with a tile map and a player you can
walk and jump with the arrow keys. Escape or closing the window quits.

Available commands:
  run       - Run the game (default)
  backends  - Show the available backends
  config    - Print the effective configuration

Examples:
  blank
  blank run --backend terminal
  blank --fps 30
  blank config --config ./my-blank.yaml`,
	Run: runRun,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Float64Var(&flagFPS, "fps", 60, "Target frame rate (<= 0 = unregulated)")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies the command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if changed(cmd, "log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if changed(cmd, "fps") {
		cfg.Loop.TargetFPS = flagFPS
	}
	if changed(cmd, "backend") {
		cfg.Backend = flagBackend
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// changed reports whether the named flag, local or inherited, was set.
func changed(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}

// newLogger creates the process logger writing to stderr.
func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "blank",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}
