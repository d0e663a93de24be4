//go:build !js

package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blank/internal/core"
)

func TestKeyboardHold(t *testing.T) {
	kb := NewKeyboard(3)
	kb.Press(core.KeyLeft)

	for tick := 0; tick < 3; tick++ {
		if !kb.Snapshot().Pressed(core.KeyLeft) {
			t.Fatalf("tick %d: key should still be held", tick)
		}
		kb.Advance()
	}
	if kb.Snapshot().Pressed(core.KeyLeft) {
		t.Error("key should be released after the hold time")
	}
}

func TestKeyboardRepeatRestartsHold(t *testing.T) {
	kb := NewKeyboard(2)
	kb.Press(core.KeyRight)
	kb.Advance()
	kb.Press(core.KeyRight)
	kb.Advance()

	if !kb.Snapshot().Pressed(core.KeyRight) {
		t.Error("auto-repeat should keep the key held")
	}
}

func TestRendererScalesPixelsToCells(t *testing.T) {
	// 16x16 pixels per cell
	r := NewRenderer(1024, 768, 64, 48)
	r.Clear()

	green := core.NewColor(0, 200, 0, 255)
	r.FillRect(core.NewRect(64, 32, 64, 64), green)

	tests := []struct {
		x, y int
		want core.Color
	}{
		{4, 2, green},
		{7, 5, green},
		{3, 2, core.ColorBlack},
		{8, 2, core.ColorBlack},
		{4, 6, core.ColorBlack},
	}
	for _, tt := range tests {
		if got := r.Screen().GetCell(tt.x, tt.y).Color; got != tt.want {
			t.Errorf("cell (%d,%d) = %+v, expected %+v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRendererSmallRectCoversOneCell(t *testing.T) {
	r := NewRenderer(1024, 768, 64, 48)
	r.Clear()

	white := core.ColorWhite
	r.FillRect(core.NewRect(20, 20, 4, 4), white)

	if got := r.Screen().GetCell(1, 1).Color; got != white {
		t.Errorf("cell (1,1) = %+v, expected the rect color", got)
	}
	if got := r.Screen().GetCell(2, 1).Color; got == white {
		t.Error("the rect should not spill into the next cell")
	}
}

func TestRendererClearColor(t *testing.T) {
	r := NewRenderer(100, 100, 10, 10)
	r.SetClearColor(core.ColorBackground)
	r.Clear()

	cell := r.Screen().GetCell(9, 9)
	if cell.Color != core.ColorBackground || cell.Rune != pixelRune {
		t.Errorf("cell = %+v, expected a clear-colored block", cell)
	}
}

func TestRendererPresentPublishesFrame(t *testing.T) {
	r := NewRenderer(100, 100, 10, 3)
	r.Clear()
	if r.Frame() != "" {
		t.Error("nothing should be shown before Present")
	}

	r.Present()

	if got := strings.Count(r.Frame(), "\n"); got != 2 {
		t.Errorf("frame has %d line breaks, expected 2", got)
	}
	if !strings.ContainsRune(r.Frame(), pixelRune) {
		t.Error("frame should contain the drawn cells")
	}
}

func newTestModel(calls *int) Model {
	d := newDisplay(1024, 768, 80, 25, 60, nil)
	return newModel(d, func() { *calls++ })
}

func TestModelTickRunsFrame(t *testing.T) {
	calls := 0
	m := newTestModel(&calls)
	m.display.keyboard.Press(core.KeySpace)

	next, cmd := m.Update(TickMsg{})

	if calls != 1 {
		t.Errorf("callback ran %d times, expected 1", calls)
	}
	if cmd == nil {
		t.Error("a tick should schedule the next one")
	}
	if next.(Model).frames != 1 {
		t.Errorf("frames = %d, expected 1", next.(Model).frames)
	}
}

func TestModelQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		calls := 0
		m := newTestModel(&calls)

		next, cmd := m.Update(msg)

		if cmd == nil {
			t.Fatalf("%q: expected a quit command", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q: command should quit the program", msg.String())
		}
		if next.(Model).View() != "" {
			t.Errorf("%q: view should be empty after quitting", msg.String())
		}
	}
}

func TestModelGameKeys(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want core.Key
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.KeyRight},
		{tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeySpace},
		{tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown},
	}
	for _, tt := range tests {
		calls := 0
		m := newTestModel(&calls)

		m.Update(tt.msg)

		if !m.display.keyboard.Snapshot().Pressed(tt.want) {
			t.Errorf("%q should hold %v", tt.msg.String(), tt.want)
		}
	}
}

func TestModelResizeKeepsFooterRow(t *testing.T) {
	calls := 0
	m := newTestModel(&calls)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	s := m.display.renderer.Screen()
	if s.Width() != 120 || s.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", s.Width(), s.Height())
	}
}

func TestLogRedirectedWhileProgramRuns(t *testing.T) {
	logger := log.New(io.Discard)
	logger.SetLevel(log.DebugLevel)
	d := newDisplay(1024, 768, 80, 25, 60, logger)
	d.logPath = filepath.Join(t.TempDir(), LogFileName)

	d.redirectLog()
	logger.Debug("frame drawn")
	d.DestroyWindow()

	data, err := os.ReadFile(d.logPath)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "frame drawn") {
		t.Errorf("log file = %q, expected the debug line", data)
	}
	if d.logFile != nil {
		t.Error("DestroyWindow should close the log file")
	}
}

func TestLogRedirectFallsBackToDiscard(t *testing.T) {
	d := newDisplay(1024, 768, 80, 25, 60, log.New(io.Discard))
	d.logPath = filepath.Join(t.TempDir(), "missing", "dir", LogFileName)

	d.redirectLog()

	if d.logFile != nil {
		t.Error("no log file should be open when it cannot be created")
	}
	d.DestroyWindow()
}
