//go:build !js

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// footerRows is the number of terminal rows used by the help line.
const footerRows = 1

// Model is the Bubble Tea model hosting the frame callback.
type Model struct {
	display  *Display
	callback func()
	keys     keyMap
	help     help.Model
	frames   int
	quitting bool
}

func newModel(d *Display, callback func()) Model {
	return Model{
		display:  d,
		callback: callback,
		keys:     newKeyMap(),
		help:     help.New(),
	}
}

// NewProgram creates the program for m on the alternate screen. The program
// is killed when ctx is done.
func NewProgram(ctx context.Context, m Model) *tea.Program {
	return tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.display.fps)}
	if m.display.title != "" {
		cmds = append(cmds, tea.SetWindowTitle(m.display.title))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records game keys and stops the program on quit keys.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if k, ok := m.keys.gameKey(msg); ok {
		m.display.keyboard.Press(k)
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.display.renderer.Resize(msg.Width, max(msg.Height-footerRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame, then ages the held keys.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.callback()
	m.frames++
	m.display.keyboard.Advance()
	return m, tickCmd(m.display.fps)
}

// View shows the last presented frame with the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.display.renderer.Frame() + "\n" + m.help.View(m.keys)
}
