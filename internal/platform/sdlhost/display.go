//go:build !js

package sdlhost

import (
	"github.com/charmbracelet/log"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/vovakirdan/blank/internal/core"
	"github.com/vovakirdan/blank/internal/loop"
	"github.com/vovakirdan/blank/internal/platform"
)

// Display is an SDL window and its accelerated renderer.
type Display struct {
	window   *sdl.Window
	renderer *Renderer
	opts     platform.Options
	logger   *log.Logger
}

func newDisplay(w *sdl.Window, r *sdl.Renderer, opts platform.Options, logger *log.Logger) *Display {
	return &Display{
		window:   w,
		renderer: &Renderer{r: r, logger: logger, clear: core.ColorBlack},
		opts:     opts,
		logger:   logger,
	}
}

// SetTitle sets the window title.
func (d *Display) SetTitle(title string) {
	d.window.SetTitle(title)
}

// SetClearColor sets the color Clear paints the frame with.
func (d *Display) SetClearColor(c core.Color) {
	d.renderer.clear = c
}

func (d *Display) Renderer() core.Renderer { return d.renderer }
func (d *Display) Keyboard() core.Keyboard { return Keyboard{} }
func (d *Display) Clock() core.Clock       { return core.SystemClock }

// Driver returns the native loop polling the SDL event queue.
func (d *Display) Driver() loop.Driver {
	return d.opts.NativeDriver(Events{})
}

// DestroyRenderer releases the renderer. Drawing afterwards is an error.
func (d *Display) DestroyRenderer() {
	if d.renderer.r == nil {
		return
	}
	if err := d.renderer.r.Destroy(); err != nil {
		d.logger.Warn("destroy renderer", "err", err)
	}
	d.renderer.r = nil
}

// DestroyWindow closes the window.
func (d *Display) DestroyWindow() {
	if d.window == nil {
		return
	}
	if err := d.window.Destroy(); err != nil {
		d.logger.Warn("destroy window", "err", err)
	}
	d.window = nil
}

// Renderer draws filled rectangles with an SDL renderer.
type Renderer struct {
	r      *sdl.Renderer
	logger *log.Logger
	clear  core.Color
}

// Clear paints the whole frame with the clear color.
func (r *Renderer) Clear() {
	r.setColor(r.clear)
	if err := r.r.Clear(); err != nil {
		r.logger.Debug("clear", "err", err)
	}
}

// FillRect fills rect with c.
func (r *Renderer) FillRect(rect core.Rect, c core.Color) {
	r.setColor(c)
	sr := sdl.Rect{X: int32(rect.X), Y: int32(rect.Y), W: int32(rect.W), H: int32(rect.H)}
	if err := r.r.FillRect(&sr); err != nil {
		r.logger.Debug("fill rect", "err", err)
	}
}

// Present shows the frame.
func (r *Renderer) Present() {
	r.r.Present()
}

func (r *Renderer) setColor(c core.Color) {
	if err := r.r.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		r.logger.Debug("set draw color", "err", err)
	}
}
