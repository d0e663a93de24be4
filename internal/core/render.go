package core

// Renderer is the drawable surface provided by the windowing backend.
// Collaborators borrow it; the backend owns and destroys it.
type Renderer interface {
	// Clear fills the whole target with the clear color.
	Clear()
	// FillRect fills r (in window pixels) with c.
	FillRect(r Rect, c Color)
	// Present shows everything drawn since the last Clear.
	Present()
}
