// Package platform defines what a windowing backend provides to the entry
// point: a process-wide subsystem, and a display owning the window, the
// renderer, keyboard polling and the loop driver suited to the platform.
package platform

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blank/internal/core"
	"github.com/vovakirdan/blank/internal/loop"
)

// Options configure a backend when it is created.
type Options struct {
	// TargetFPS is the frame rate the native loop regulates to,
	// and the tick rate of hosts that need one.
	TargetFPS float64
	// DrainEvents makes the native loop consume every pending event per iteration.
	DrainEvents bool
	Logger      *log.Logger
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		TargetFPS: loop.DefaultTargetFPS,
		Logger:    log.Default(),
	}
}

// NativeDriver returns the native loop reading src, configured by o.
// TargetFPS is passed through as is, so a value <= 0 runs unregulated.
func (o Options) NativeDriver(src loop.EventSource) *loop.Native {
	n := loop.NewNative(src, o.Logger)
	n.TargetFPS = o.TargetFPS
	n.DrainEvents = o.DrainEvents
	return n
}

// Subsystem is the backend's process-wide state (the multimedia library context).
type Subsystem interface {
	// Init brings the subsystem up. Nothing else may be called if it fails.
	Init() error
	// OpenWindow creates the window and its accelerated renderer in one step.
	OpenWindow(width, height int) (Display, error)
	// Quit shuts the subsystem down.
	Quit()
}

// Display is an open window with its renderer.
type Display interface {
	SetTitle(title string)
	// SetClearColor sets the color the renderer clears to.
	SetClearColor(c core.Color)

	Renderer() core.Renderer
	Keyboard() core.Keyboard
	Clock() core.Clock
	// Driver returns the loop driver this platform runs the game with.
	Driver() loop.Driver

	DestroyRenderer()
	DestroyWindow()
}
