//go:build !js

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blank/internal/core"
)

// HoldFrames is how many ticks a key stays held after a press. Terminals
// report key presses and auto-repeat but never releases.
const HoldFrames = 6

// keyMap holds the key bindings shown in the help footer.
type keyMap struct {
	Left  key.Binding
	Right key.Binding
	Jump  key.Binding
	Down  key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "w", " "),
			key.WithHelp("↑/space", "jump"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Right}, {k.Jump, k.Down}, {k.Quit}}
}

// gameKey maps a key message to the game key it drives.
func (k keyMap) gameKey(msg tea.KeyMsg) (core.Key, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return core.KeyLeft, true
	case key.Matches(msg, k.Right):
		return core.KeyRight, true
	case msg.String() == " ":
		return core.KeySpace, true
	case key.Matches(msg, k.Jump):
		return core.KeyUp, true
	case key.Matches(msg, k.Down):
		return core.KeyDown, true
	}
	return core.KeyNone, false
}

// Keyboard turns key presses into a held-key snapshot by keeping each key
// down for a fixed number of ticks after its last press.
type Keyboard struct {
	hold int
	held map[core.Key]int
}

// NewKeyboard creates a keyboard holding keys for hold ticks.
func NewKeyboard(hold int) *Keyboard {
	return &Keyboard{hold: max(hold, 1), held: make(map[core.Key]int)}
}

// Press marks k as held, restarting its hold time.
func (kb *Keyboard) Press(k core.Key) {
	kb.held[k] = kb.hold
}

// Advance ages every held key by one tick.
func (kb *Keyboard) Advance() {
	for k, n := range kb.held {
		if n <= 1 {
			delete(kb.held, k)
			continue
		}
		kb.held[k] = n - 1
	}
}

// Snapshot returns the keys currently held.
func (kb *Keyboard) Snapshot() core.KeyState {
	state := core.NewKeyState()
	for k := range kb.held {
		state.Set(k)
	}
	return state
}
