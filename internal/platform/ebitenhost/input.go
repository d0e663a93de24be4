package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/blank/internal/core"
)

var keys = map[core.Key][]ebiten.Key{
	core.KeyLeft:   {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.KeyRight:  {ebiten.KeyArrowRight, ebiten.KeyD},
	core.KeyUp:     {ebiten.KeyArrowUp, ebiten.KeyW},
	core.KeyDown:   {ebiten.KeyArrowDown, ebiten.KeyS},
	core.KeySpace:  {ebiten.KeySpace},
	core.KeyEscape: {ebiten.KeyEscape},
}

// Keyboard reads ebiten's key state for the current tick.
type Keyboard struct{}

// Snapshot returns the keys held down this tick.
func (Keyboard) Snapshot() core.KeyState {
	state := core.NewKeyState()
	for k, bound := range keys {
		for _, ek := range bound {
			if ebiten.IsKeyPressed(ek) {
				state.Set(k)
				break
			}
		}
	}
	return state
}
