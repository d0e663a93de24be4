package core

// Key is a physical key the game cares about, abstracted from backend scancodes.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySpace
	KeyEscape
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeySpace:
		return "Space"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// KeyState is a snapshot of which keys are held at the moment it was taken.
// It is polled once per frame and is independent of the event queue.
type KeyState struct {
	held map[Key]bool
}

// NewKeyState creates a snapshot with the given keys held.
func NewKeyState(keys ...Key) KeyState {
	s := KeyState{held: make(map[Key]bool, len(keys))}
	for _, k := range keys {
		s.Set(k)
	}
	return s
}

// Set marks a key as held.
func (s *KeyState) Set(k Key) {
	if k == KeyNone {
		return
	}
	if s.held == nil {
		s.held = make(map[Key]bool)
	}
	s.held[k] = true
}

// Pressed returns true if the key is held in this snapshot.
func (s KeyState) Pressed(k Key) bool {
	return s.held[k]
}

// Keyboard provides direct keyboard state polling.
type Keyboard interface {
	Snapshot() KeyState
}

// EventType classifies an OS event delivered through the event queue.
type EventType int

const (
	EventNone EventType = iota
	EventQuit           // window close request
	EventKeyDown
	EventKeyUp
	EventOther // anything the game does not interpret
)

// Event is a single queued OS event.
type Event struct {
	Type EventType
	Key  Key // set for EventKeyDown and EventKeyUp
}

// IsQuit reports whether the event should end the native loop:
// a window close request or an Escape key press.
func (e Event) IsQuit() bool {
	return e.Type == EventQuit || (e.Type == EventKeyDown && e.Key == KeyEscape)
}
