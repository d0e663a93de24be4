//go:build !js

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blank/internal/core"
)

// pixelRune is drawn in every cell covered by a rectangle.
const pixelRune = '█'

// Renderer rasterizes the pixel window onto a cell Screen. Each cell stands
// for a block of width/cols by height/rows pixels.
type Renderer struct {
	width, height int
	screen        *core.Screen
	clear         core.Color
	frame         string
	styles        map[core.Color]lipgloss.Style
}

// NewRenderer maps a width x height pixel window onto cols x rows cells.
func NewRenderer(width, height, cols, rows int) *Renderer {
	return &Renderer{
		width:  width,
		height: height,
		screen: core.NewScreen(cols, rows),
		clear:  core.ColorBlack,
		styles: make(map[core.Color]lipgloss.Style),
	}
}

// SetClearColor sets the color Clear fills the screen with.
func (r *Renderer) SetClearColor(c core.Color) {
	r.clear = c
}

// Resize changes the cell grid. The pixel window keeps its size.
func (r *Renderer) Resize(cols, rows int) {
	r.screen.Resize(cols, rows)
}

// Screen returns the cell buffer being drawn.
func (r *Renderer) Screen() *core.Screen {
	return r.screen
}

// Clear fills every cell with the clear color.
func (r *Renderer) Clear() {
	r.screen.Fill(core.Cell{Rune: pixelRune, Color: r.clear})
}

// FillRect fills every cell the pixel rectangle touches.
func (r *Renderer) FillRect(rect core.Rect, c core.Color) {
	if rect.Empty() || r.width <= 0 || r.height <= 0 {
		return
	}
	cols, rows := r.screen.Width(), r.screen.Height()
	x0 := core.FloorDiv(rect.X*cols, r.width)
	x1 := ceilDiv(rect.Right()*cols, r.width)
	y0 := core.FloorDiv(rect.Y*rows, r.height)
	y1 := ceilDiv(rect.Bottom()*rows, r.height)
	r.screen.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), core.Cell{Rune: pixelRune, Color: c})
}

// Present renders the screen into the frame returned by Frame.
func (r *Renderer) Present() {
	r.frame = r.render()
}

// Frame returns the last presented frame as styled text.
func (r *Renderer) Frame() string {
	return r.frame
}

func (r *Renderer) release() {
	r.screen = core.NewScreen(0, 0)
	r.frame = ""
}

// render converts the screen to styled text, grouping adjacent cells with the
// same color to minimize ANSI escape sequences.
func (r *Renderer) render() string {
	s := r.screen
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(r.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

func (r *Renderer) style(c core.Color) lipgloss.Style {
	st, ok := r.styles[c]
	if !ok {
		st = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
		r.styles[c] = st
	}
	return st
}

func ceilDiv(a, b int) int {
	return -core.FloorDiv(-a, b)
}
