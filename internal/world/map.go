// Package world implements the game's collaborators: the level map, the
// player with its physics, and the frame-rate counter. They draw only through
// core.Renderer and never outlive it.
package world

import (
	"fmt"

	"github.com/vovakirdan/blank/internal/core"
)

// TileSize is the edge length of a map tile in window pixels.
const TileSize = 64

// layout is the level: digits are solid tiles (the digit picks the texture), spaces are empty.
var layout = [...]string{
	"0000000000000000",
	"0              0",
	"0              0",
	"0       111    0",
	"0              0",
	"0   22         0",
	"0          3   0",
	"0      44      0",
	"0 5            0",
	"0         55   0",
	"0              0",
	"0000000000000000",
}

// textures are the fill colors of tile kinds '0'..'5'.
var textures = [...]core.Color{
	{R: 92, G: 64, B: 51, A: 255},
	{R: 156, G: 102, B: 31, A: 255},
	{R: 110, G: 110, B: 110, A: 255},
	{R: 60, G: 130, B: 60, A: 255},
	{R: 70, G: 90, B: 160, A: 255},
	{R: 170, G: 60, B: 50, A: 255},
}

// Map is the tile grid of the level.
type Map struct {
	renderer core.Renderer
	cols     int
	rows     int
	tiles    []int8 // -1 empty, otherwise texture index
}

// NewMap creates the level map drawing to r.
func NewMap(r core.Renderer) *Map {
	m, err := parseLayout(r, layout[:])
	if err != nil {
		panic(err)
	}
	return m
}

// parseLayout builds a map from rows of equal length.
func parseLayout(r core.Renderer, rows []string) (*Map, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("world: empty map layout")
	}
	m := &Map{
		renderer: r,
		cols:     len(rows[0]),
		rows:     len(rows),
		tiles:    make([]int8, 0, len(rows)*len(rows[0])),
	}
	for j, row := range rows {
		if len(row) != m.cols {
			return nil, fmt.Errorf("world: map row %d has %d columns, expected %d", j, len(row), m.cols)
		}
		for i := 0; i < len(row); i++ {
			switch ch := row[i]; {
			case ch == ' ':
				m.tiles = append(m.tiles, -1)
			case ch >= '0' && int(ch-'0') < len(textures):
				m.tiles = append(m.tiles, int8(ch-'0'))
			default:
				return nil, fmt.Errorf("world: invalid map tile %q at (%d, %d)", ch, i, j)
			}
		}
	}
	return m, nil
}

// Size returns the map dimensions in tiles.
func (m *Map) Size() (cols, rows int) {
	return m.cols, m.rows
}

// TileSize returns the tile edge length in pixels.
func (m *Map) TileSize() int {
	return TileSize
}

// IsEmpty reports whether the tile at (col, row) is free. Tiles outside the map are solid.
func (m *Map) IsEmpty(col, row int) bool {
	if col < 0 || row < 0 || col >= m.cols || row >= m.rows {
		return false
	}
	return m.tiles[row*m.cols+col] < 0
}

// Blocked reports whether any tile overlapped by the pixel rectangle r is solid.
func (m *Map) Blocked(r core.Rect) bool {
	if r.Empty() {
		return false
	}
	c0, c1 := core.FloorDiv(r.X, TileSize), core.FloorDiv(r.Right()-1, TileSize)
	r0, r1 := core.FloorDiv(r.Y, TileSize), core.FloorDiv(r.Bottom()-1, TileSize)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !m.IsEmpty(col, row) {
				return true
			}
		}
	}
	return false
}

// Draw fills every solid tile with its texture color.
func (m *Map) Draw() {
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			t := m.tiles[row*m.cols+col]
			if t < 0 {
				continue
			}
			m.renderer.FillRect(core.NewRect(col*TileSize, row*TileSize, TileSize, TileSize), textures[t])
		}
	}
}
