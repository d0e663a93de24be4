package core

import (
	"fmt"
	"image/color"
)

// Color is a straight (non-premultiplied) 8-bit RGBA color.
// It satisfies image/color.Color so backends can hand it to their drawing APIs directly.
type Color struct {
	R, G, B, A uint8
}

// NewColor creates a color from its components.
func NewColor(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Hex returns the color as "#rrggbb", the form lipgloss accepts.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Predefined colors.
var (
	// ColorBackground is the window clear color.
	ColorBackground = Color{R: 210, G: 255, B: 179, A: 255}
	ColorBlack      = Color{A: 255}
	ColorWhite      = Color{R: 255, G: 255, B: 255, A: 255}
)
