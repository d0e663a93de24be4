//go:build !js

package sdlhost

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/vovakirdan/blank/internal/core"
)

// scancodes are the physical keys the game reads, by core key.
var scancodes = map[core.Key]sdl.Scancode{
	core.KeyLeft:   sdl.SCANCODE_LEFT,
	core.KeyRight:  sdl.SCANCODE_RIGHT,
	core.KeyUp:     sdl.SCANCODE_UP,
	core.KeyDown:   sdl.SCANCODE_DOWN,
	core.KeySpace:  sdl.SCANCODE_SPACE,
	core.KeyEscape: sdl.SCANCODE_ESCAPE,
}

// Keyboard samples SDL's keyboard state array.
type Keyboard struct{}

// Snapshot returns the keys currently held down.
func (Keyboard) Snapshot() core.KeyState {
	state := sdl.GetKeyboardState()
	keys := core.NewKeyState()
	for k, sc := range scancodes {
		if int(sc) < len(state) && state[sc] != 0 {
			keys.Set(k)
		}
	}
	return keys
}

// Events reads the SDL event queue.
type Events struct{}

// PollEvent returns the next pending event without blocking.
func (Events) PollEvent() (core.Event, bool) {
	ev := sdl.PollEvent()
	if ev == nil {
		return core.Event{}, false
	}
	return translate(ev), true
}

func translate(ev sdl.Event) core.Event {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return core.Event{Type: core.EventQuit}
	case *sdl.KeyboardEvent:
		t := core.EventKeyUp
		if e.Type == sdl.KEYDOWN {
			t = core.EventKeyDown
		}
		return core.Event{Type: t, Key: keyFromSym(e.Keysym.Sym)}
	default:
		return core.Event{Type: core.EventOther}
	}
}

func keyFromSym(sym sdl.Keycode) core.Key {
	switch sym {
	case sdl.K_LEFT:
		return core.KeyLeft
	case sdl.K_RIGHT:
		return core.KeyRight
	case sdl.K_UP:
		return core.KeyUp
	case sdl.K_DOWN:
		return core.KeyDown
	case sdl.K_SPACE:
		return core.KeySpace
	case sdl.K_ESCAPE:
		return core.KeyEscape
	default:
		return core.KeyNone
	}
}
