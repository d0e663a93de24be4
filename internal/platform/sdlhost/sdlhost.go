//go:build !js

// Package sdlhost is the desktop backend built on SDL2. It drives the game
// with the native loop: the main goroutine owns the window and polls the
// SDL event queue between frames.
package sdlhost

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/vovakirdan/blank/internal/platform"
	"github.com/vovakirdan/blank/internal/registry"
)

// Name is the registry name of the backend.
const Name = "sdl"

func init() {
	// SDL must be driven from the thread that initialized it.
	runtime.LockOSThread()

	registry.Register(Name, "SDL2 window with the native frame-regulated loop",
		func(opts platform.Options) platform.Subsystem { return New(opts) })
}

// Subsystem owns the SDL library context.
type Subsystem struct {
	opts   platform.Options
	logger *log.Logger
}

// New creates an uninitialized SDL subsystem.
func New(opts platform.Options) *Subsystem {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	opts.Logger = logger
	return &Subsystem{opts: opts, logger: logger}
}

// Init initializes the SDL video subsystem.
func (s *Subsystem) Init() error {
	if err := sdl.Init(uint32(sdl.INIT_VIDEO)); err != nil {
		return fmt.Errorf("sdlhost: init video: %w", err)
	}
	s.logger.Debug("SDL initialized", "platform", sdl.GetPlatform())
	return nil
}

// OpenWindow creates a shown, focused window together with its renderer.
func (s *Subsystem) OpenWindow(width, height int) (platform.Display, error) {
	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_INPUT_FOCUS)
	window, renderer, err := sdl.CreateWindowAndRenderer(int32(width), int32(height), flags)
	if err != nil {
		return nil, fmt.Errorf("sdlhost: create window and renderer: %w", err)
	}
	return newDisplay(window, renderer, s.opts, s.logger), nil
}

// Quit shuts SDL down.
func (s *Subsystem) Quit() {
	sdl.Quit()
	s.logger.Debug("SDL shut down")
}
