package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/blank/internal/core"
)

// Renderer draws into a back canvas; Present copies it to the frame that is
// shown, so a frame skipped by the game keeps the last presented image.
type Renderer struct {
	canvas *ebiten.Image
	frame  *ebiten.Image
	clear  core.Color
}

func newRenderer(width, height int) *Renderer {
	return &Renderer{
		canvas: ebiten.NewImage(width, height),
		frame:  ebiten.NewImage(width, height),
		clear:  core.ColorBlack,
	}
}

// Clear fills the canvas with the clear color.
func (r *Renderer) Clear() {
	r.canvas.Fill(r.clear)
}

// FillRect fills rect with c.
func (r *Renderer) FillRect(rect core.Rect, c core.Color) {
	vector.DrawFilledRect(r.canvas, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), c, false)
}

// Present publishes the canvas as the shown frame.
func (r *Renderer) Present() {
	r.frame.Clear()
	r.frame.DrawImage(r.canvas, nil)
}

func (r *Renderer) release() {
	if r.canvas != nil {
		r.canvas.Deallocate()
		r.canvas = nil
	}
	if r.frame != nil {
		r.frame.Deallocate()
		r.frame = nil
	}
}
