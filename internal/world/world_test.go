package world

import (
	"time"

	"github.com/vovakirdan/blank/internal/core"
)

// recordingRenderer remembers every filled rect.
type recordingRenderer struct {
	fills    []core.Rect
	colors   []core.Color
	clears   int
	presents int
}

func (r *recordingRenderer) Clear()   { r.clears++ }
func (r *recordingRenderer) Present() { r.presents++ }
func (r *recordingRenderer) FillRect(rect core.Rect, c core.Color) {
	r.fills = append(r.fills, rect)
	r.colors = append(r.colors, c)
}

// manualClock only moves when told to.
type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time        { return c.now }
func (c *manualClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }
func (c *manualClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// openLevel is a level with a floor at y = 500 and walls at x = 0 and x = 1000.
type openLevel struct{}

func (openLevel) Blocked(r core.Rect) bool {
	return r.Bottom() > 500 || r.X < 0 || r.Right() > 1000
}
