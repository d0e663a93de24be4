package core

import "testing"

func TestKeyStateSnapshot(t *testing.T) {
	s := NewKeyState(KeyLeft, KeySpace, KeyNone)

	if !s.Pressed(KeyLeft) || !s.Pressed(KeySpace) {
		t.Error("keys passed to NewKeyState should be pressed")
	}
	if s.Pressed(KeyRight) {
		t.Error("KeyRight should not be pressed")
	}
	if s.Pressed(KeyNone) {
		t.Error("KeyNone should never be pressed")
	}
}

func TestKeyStateZeroValue(t *testing.T) {
	var s KeyState
	if s.Pressed(KeyUp) {
		t.Error("zero KeyState should have nothing pressed")
	}
	s.Set(KeyUp)
	if !s.Pressed(KeyUp) {
		t.Error("Set on zero KeyState should work")
	}
}

func TestEventIsQuit(t *testing.T) {
	tests := []struct {
		name     string
		ev       Event
		expected bool
	}{
		{"quit request", Event{Type: EventQuit}, true},
		{"escape down", Event{Type: EventKeyDown, Key: KeyEscape}, true},
		{"escape up", Event{Type: EventKeyUp, Key: KeyEscape}, false},
		{"other key down", Event{Type: EventKeyDown, Key: KeySpace}, false},
		{"other event", Event{Type: EventOther}, false},
		{"no event", Event{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ev.IsQuit(); got != tc.expected {
				t.Errorf("IsQuit() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestKeyString(t *testing.T) {
	if KeyEscape.String() != "Escape" {
		t.Errorf("KeyEscape.String() = %q", KeyEscape.String())
	}
	if Key(99).String() != "Unknown" {
		t.Errorf("Key(99).String() = %q", Key(99).String())
	}
}

func TestColorHexAndRGBA(t *testing.T) {
	if got := ColorBackground.Hex(); got != "#d2ffb3" {
		t.Errorf("ColorBackground.Hex() = %q, expected #d2ffb3", got)
	}
	r, g, b, a := ColorBackground.RGBA()
	if r>>8 != 210 || g>>8 != 255 || b>>8 != 179 || a>>8 != 255 {
		t.Errorf("RGBA() = %d %d %d %d", r>>8, g>>8, b>>8, a>>8)
	}
}
