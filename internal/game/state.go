// Package game holds GameState, the per-frame orchestrator that polls the
// keyboard, regulates the frame rate, advances the player and draws the frame.
package game

import (
	"io"
	"time"

	"github.com/vovakirdan/blank/internal/core"
	"github.com/vovakirdan/blank/internal/world"
)

// Counter draws the frame-rate readout.
type Counter interface {
	Draw()
}

// Level owns the level geometry, draws it and answers collision queries.
type Level interface {
	core.Level
	Draw()
}

// Player owns the player's physics state.
type Player interface {
	HandleKeyboard(keys core.KeyState)
	UpdateState(dt float64, level core.Level)
	Draw()
}

// Parts are the collaborators a GameState is composed of.
type Parts struct {
	Counter Counter
	Level   Level
	Player  Player
}

// GameState composes the collaborators and drives them once per frame.
type GameState struct {
	renderer core.Renderer
	keyboard core.Keyboard
	clock    core.Clock

	counter Counter
	level   Level
	player  Player
	closers []io.Closer

	// timestamp is the instant of the most recently advanced frame.
	timestamp time.Time
}

// New creates a GameState with the default world collaborators.
// The renderer is borrowed and must outlive the returned state.
func New(r core.Renderer, kb core.Keyboard, clk core.Clock) *GameState {
	if clk == nil {
		clk = core.SystemClock
	}
	return Compose(r, kb, clk, Parts{
		Counter: world.NewFPSCounter(r, clk),
		Level:   world.NewMap(r),
		Player:  world.NewPlayer(r),
	})
}

// Compose creates a GameState from explicit collaborators.
// Parts implementing io.Closer are closed by Close, in counter, player, level order.
func Compose(r core.Renderer, kb core.Keyboard, clk core.Clock, parts Parts) *GameState {
	s := &GameState{
		renderer:  r,
		keyboard:  kb,
		clock:     clk,
		counter:   parts.Counter,
		level:     parts.Level,
		player:    parts.Player,
		timestamp: clk.Now(),
	}
	if c, ok := parts.Counter.(io.Closer); ok {
		s.closers = append(s.closers, c)
	}
	if c, ok := parts.Player.(io.Closer); ok {
		s.closers = append(s.closers, c)
	}
	if c, ok := parts.Level.(io.Closer); ok {
		s.closers = append(s.closers, c)
	}
	return s
}

// Timestamp returns the instant of the last advanced frame.
func (s *GameState) Timestamp() time.Time {
	return s.timestamp
}

// Update polls input and, if at least 1/targetFPS seconds passed since the
// last advanced frame, advances the simulation and renders a new frame.
// Otherwise it sleeps for the remaining time and returns without touching
// the simulation. targetFPS <= 0 disables regulation.
func (s *GameState) Update(targetFPS float64) {
	if s.renderer == nil {
		panic("game: Update called without a renderer")
	}

	s.player.HandleKeyboard(s.keyboard.Snapshot())

	now := s.clock.Now()
	dt := now.Sub(s.timestamp).Seconds()

	if targetFPS > 0 {
		if target := 1.0 / targetFPS; dt < target {
			s.clock.Sleep(time.Duration((target - dt) * float64(time.Second)))
			return
		}
	}

	// Committed before simulating so a slow step is not credited to the next frame.
	s.timestamp = now

	s.player.UpdateState(dt, s.level)

	s.renderer.Clear()
	s.counter.Draw()
	s.player.Draw()
	s.level.Draw()
	s.renderer.Present()
}

// Close closes the composed parts that implement io.Closer and returns the
// first error. It must be called before the renderer is destroyed. The world
// parts used by New hold no resources, so for such a state Close is a no-op.
func (s *GameState) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
