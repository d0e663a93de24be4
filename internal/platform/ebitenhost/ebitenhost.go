// Package ebitenhost is the backend for hosts that own the frame loop. Ebiten
// schedules the frames, on the desktop and in the browser alike, and the game
// runs as its per-tick callback.
package ebitenhost

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/blank/internal/core"
	"github.com/vovakirdan/blank/internal/loop"
	"github.com/vovakirdan/blank/internal/platform"
	"github.com/vovakirdan/blank/internal/registry"
)

// Name is the registry name of the backend.
const Name = "ebiten"

func init() {
	registry.Register(Name, "Ebiten window; the host schedules every frame (desktop and wasm)",
		func(opts platform.Options) platform.Subsystem { return New(opts) })
}

// errWindowClosed is returned by SetMainLoop once the renderer is destroyed.
var errWindowClosed = errors.New("ebitenhost: window already destroyed")

// Subsystem has no global state to set up: ebiten initializes itself in RunGame.
type Subsystem struct {
	logger *log.Logger
}

// New creates the ebiten subsystem.
func New(opts platform.Options) *Subsystem {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Subsystem{logger: logger}
}

func (s *Subsystem) Init() error { return nil }
func (s *Subsystem) Quit()       {}

// OpenWindow sizes the window and allocates the offscreen frame.
func (s *Subsystem) OpenWindow(width, height int) (platform.Display, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("ebitenhost: window size must be positive")
	}
	ebiten.SetWindowSize(width, height)
	return &Display{
		width:    width,
		height:   height,
		renderer: newRenderer(width, height),
		logger:   s.logger,
	}, nil
}

// Display is the ebiten window. The game draws into an offscreen image that
// ebiten copies to the screen on its own schedule.
type Display struct {
	width, height int
	renderer      *Renderer
	logger        *log.Logger
}

func (d *Display) SetTitle(title string)      { ebiten.SetWindowTitle(title) }
func (d *Display) SetClearColor(c core.Color) { d.renderer.clear = c }
func (d *Display) Renderer() core.Renderer    { return d.renderer }
func (d *Display) Keyboard() core.Keyboard    { return Keyboard{} }
func (d *Display) Clock() core.Clock          { return core.SystemClock }

// Driver returns a hosted loop scheduled by ebiten.RunGame.
func (d *Display) Driver() loop.Driver {
	return loop.NewHosted(d, d.logger)
}

// SetMainLoop runs ebiten with callback as the per-tick update and returns
// once the window is closed, Escape is pressed or ctx is done.
func (d *Display) SetMainLoop(ctx context.Context, callback func()) error {
	if d.renderer.canvas == nil {
		return errWindowClosed
	}
	ebiten.SetTPS(ebiten.SyncWithFPS)
	return ebiten.RunGame(&host{ctx: ctx, display: d, callback: callback})
}

// DestroyRenderer frees the frame images.
func (d *Display) DestroyRenderer() {
	d.renderer.release()
}

// DestroyWindow is a no-op: ebiten closes its window when RunGame returns.
func (d *Display) DestroyWindow() {}

// host adapts the callback to ebiten.Game.
type host struct {
	ctx      context.Context
	display  *Display
	callback func()
}

func (h *host) Update() error {
	if h.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	h.callback()
	return nil
}

func (h *host) Draw(screen *ebiten.Image) {
	if frame := h.display.renderer.frame; frame != nil {
		screen.DrawImage(frame, nil)
	}
}

func (h *host) Layout(_, _ int) (int, int) {
	return h.display.width, h.display.height
}
