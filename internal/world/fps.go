package world

import (
	"strconv"
	"time"

	"github.com/vovakirdan/blank/internal/core"
)

// FPSRefresh is how often the displayed frame rate is recomputed.
const FPSRefresh = 300 * time.Millisecond

// Digit geometry in pixels.
const (
	digitW     = 14
	digitH     = 24
	segment    = 3
	digitGap   = 6
	fpsOriginX = 8
	fpsOriginY = 8
)

var digitColor = core.Color{R: 30, G: 30, B: 30, A: 255}

// Segments a..g of a seven-segment display: top, upper right, lower right,
// bottom, lower left, upper left, middle.
var digitSegments = [10]uint8{
	0b0111111, // 0
	0b0000110, // 1
	0b1011011, // 2
	0b1001111, // 3
	0b1100110, // 4
	0b1101101, // 5
	0b1111101, // 6
	0b0000111, // 7
	0b1111111, // 8
	0b1101111, // 9
}

// FPSCounter measures how many frames are drawn per second and displays the value.
type FPSCounter struct {
	renderer core.Renderer
	clock    core.Clock
	start    time.Time
	frames   int
	fps      int
}

// NewFPSCounter creates a counter drawing to r and timing with clk.
func NewFPSCounter(r core.Renderer, clk core.Clock) *FPSCounter {
	return &FPSCounter{
		renderer: r,
		clock:    clk,
		start:    clk.Now(),
	}
}

// FPS returns the last measured frame rate.
func (c *FPSCounter) FPS() int {
	return c.fps
}

// Draw counts a frame and draws the current frame rate in the top-left corner.
func (c *FPSCounter) Draw() {
	c.frames++
	now := c.clock.Now()
	if elapsed := now.Sub(c.start); elapsed >= FPSRefresh {
		c.fps = int(float64(c.frames)/elapsed.Seconds() + 0.5)
		c.frames = 0
		c.start = now
	}

	x := fpsOriginX
	for _, ch := range strconv.Itoa(c.fps) {
		c.drawDigit(x, fpsOriginY, int(ch-'0'))
		x += digitW + digitGap
	}
}

func (c *FPSCounter) drawDigit(x, y, d int) {
	half := digitH / 2
	// In segment order a..g.
	rects := [7]core.Rect{
		core.NewRect(x, y, digitW, segment),
		core.NewRect(x+digitW-segment, y, segment, half),
		core.NewRect(x+digitW-segment, y+half, segment, half),
		core.NewRect(x, y+digitH-segment, digitW, segment),
		core.NewRect(x, y+half, segment, half),
		core.NewRect(x, y, segment, half),
		core.NewRect(x, y+half-segment/2, digitW, segment),
	}
	mask := digitSegments[d]
	for i, r := range rects {
		if mask&(1<<i) != 0 {
			c.renderer.FillRect(r, digitColor)
		}
	}
}
