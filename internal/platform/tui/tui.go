//go:build !js

package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/blank/internal/core"
	"github.com/vovakirdan/blank/internal/loop"
	"github.com/vovakirdan/blank/internal/platform"
	"github.com/vovakirdan/blank/internal/registry"
)

// Name is the registry name of the backend.
const Name = "terminal"

// Fallback terminal size when the real one cannot be read.
const (
	fallbackCols = 80
	fallbackRows = 24
)

// ErrNotTerminal is returned by Init when stdout is not a terminal.
var ErrNotTerminal = errors.New("tui: stdout is not a terminal")

func init() {
	registry.Register(Name, "Bubble Tea program in the terminal; ticks schedule every frame",
		func(opts platform.Options) platform.Subsystem { return New(opts) })
}

// Subsystem is the controlling terminal.
type Subsystem struct {
	opts   platform.Options
	logger *log.Logger
	fd     int
}

// New creates the terminal subsystem for the process's stdout.
func New(opts platform.Options) *Subsystem {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.TargetFPS <= 0 {
		opts.TargetFPS = loop.DefaultTargetFPS
	}
	return &Subsystem{opts: opts, logger: logger, fd: int(os.Stdout.Fd())}
}

// Init checks that there is a terminal to draw on.
func (s *Subsystem) Init() error {
	if !term.IsTerminal(s.fd) {
		return ErrNotTerminal
	}
	return nil
}

// OpenWindow maps a width x height pixel window onto the terminal. The last
// row is kept for the help footer.
func (s *Subsystem) OpenWindow(width, height int) (platform.Display, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("tui: invalid window size %dx%d", width, height)
	}
	cols, rows, err := term.GetSize(s.fd)
	if err != nil {
		s.logger.Debug("terminal size unavailable, using fallback", "err", err)
		cols, rows = fallbackCols, fallbackRows
	}
	return newDisplay(width, height, cols, rows, s.opts.TargetFPS, s.logger), nil
}

// Quit is a no-op: Bubble Tea restores the terminal when its program exits.
func (s *Subsystem) Quit() {}

// LogFileName is the file in the temp directory the logger writes to while
// the program owns the terminal.
const LogFileName = "blank-terminal.log"

// Display is the terminal viewed as a window.
type Display struct {
	title    string
	fps      float64
	renderer *Renderer
	keyboard *Keyboard
	logger   *log.Logger
	logPath  string
	logFile  *os.File
}

func newDisplay(width, height, cols, rows int, fps float64, logger *log.Logger) *Display {
	if logger == nil {
		logger = log.Default()
	}
	return &Display{
		fps:      fps,
		renderer: NewRenderer(width, height, cols, max(rows-footerRows, 1)),
		keyboard: NewKeyboard(HoldFrames),
		logger:   logger,
		logPath:  filepath.Join(os.TempDir(), LogFileName),
	}
}

func (d *Display) SetTitle(title string)      { d.title = title }
func (d *Display) SetClearColor(c core.Color) { d.renderer.SetClearColor(c) }
func (d *Display) Renderer() core.Renderer    { return d.renderer }
func (d *Display) Keyboard() core.Keyboard    { return d.keyboard }
func (d *Display) Clock() core.Clock          { return core.SystemClock }

// Driver returns a hosted loop run by the Bubble Tea program.
func (d *Display) Driver() loop.Driver {
	return loop.NewHosted(d, d.logger)
}

// SetMainLoop runs the Bubble Tea program with callback as the per-tick
// frame and returns when the user quits or ctx is done.
func (d *Display) SetMainLoop(ctx context.Context, callback func()) error {
	d.redirectLog()
	p := NewProgram(ctx, newModel(d, callback))
	_, err := p.Run()
	return err
}

// redirectLog sends log lines to the log file; on stderr they would tear the
// frame drawn on the alternate screen.
func (d *Display) redirectLog() {
	f, err := tea.LogToFileWith(d.logPath, "blank", d.logger)
	if err != nil {
		d.logger.SetOutput(io.Discard)
		return
	}
	d.logFile = f
}

func (d *Display) DestroyRenderer() { d.renderer.release() }

// DestroyWindow hands the logger back to stderr once the terminal is released.
func (d *Display) DestroyWindow() {
	if d.logFile == nil {
		return
	}
	d.logger.SetOutput(os.Stderr)
	if err := d.logFile.Close(); err != nil {
		d.logger.Warn("close log file", "path", d.logPath, "err", err)
	}
	d.logFile = nil
}
