package world

import (
	"math"
	"testing"

	"github.com/vovakirdan/blank/internal/core"
)

const frame = 1.0 / 60

func runFrames(p *Player, level core.Level, keys core.KeyState, n int) {
	for i := 0; i < n; i++ {
		p.HandleKeyboard(keys)
		p.UpdateState(frame, level)
	}
}

func TestPlayerFallsAndLands(t *testing.T) {
	p := NewPlayer(&recordingRenderer{})

	if p.OnGround() {
		t.Fatal("player should spawn in the air")
	}

	runFrames(p, openLevel{}, core.NewKeyState(), 120)

	if !p.OnGround() {
		t.Fatal("player should land on the floor")
	}
	if got := p.Rect().Bottom(); got != 500 {
		t.Errorf("player should rest on the floor at y=500, bottom = %d", got)
	}
	if _, vy := p.Velocity(); vy != 0 {
		t.Errorf("vertical velocity should be zero on the ground, got %f", vy)
	}
	if p.State() != StateRest {
		t.Errorf("State() = %v, expected Rest", p.State())
	}
}

func TestPlayerLandsOnMapPlatform(t *testing.T) {
	m := NewMap(&recordingRenderer{})
	p := NewPlayer(&recordingRenderer{})

	runFrames(p, m, core.NewKeyState(), 120)

	if !p.OnGround() {
		t.Fatal("player should land on the platform below the spawn")
	}
	if got := p.Rect().Y; got != 8*TileSize-PlayerHeight {
		t.Errorf("player top = %d, expected %d", got, 8*TileSize-PlayerHeight)
	}
}

func TestPlayerWalks(t *testing.T) {
	p := NewPlayer(&recordingRenderer{})
	runFrames(p, openLevel{}, core.NewKeyState(), 120)

	x0, _ := p.Position()
	runFrames(p, openLevel{}, core.NewKeyState(core.KeyRight), 30)
	x1, _ := p.Position()

	if want := x0 + WalkSpeed*0.5; math.Abs(x1-want) > 1 {
		t.Errorf("after 0.5s walking right x = %f, expected about %f", x1, want)
	}
	if p.State() != StateWalk {
		t.Errorf("State() = %v, expected Walk", p.State())
	}

	// Opposite keys cancel out.
	p.HandleKeyboard(core.NewKeyState(core.KeyLeft, core.KeyRight))
	if vx, _ := p.Velocity(); vx != 0 {
		t.Errorf("left+right should stop the player, vx = %f", vx)
	}
}

func TestPlayerStopsAtWall(t *testing.T) {
	p := NewPlayer(&recordingRenderer{})
	runFrames(p, openLevel{}, core.NewKeyState(), 120)

	// Walking left for two seconds reaches the wall at x = 0.
	runFrames(p, openLevel{}, core.NewKeyState(core.KeyLeft), 120)

	if got := p.Rect().X; got != 0 {
		t.Errorf("player should stop flush against the wall, x = %d", got)
	}
}

func TestPlayerJump(t *testing.T) {
	p := NewPlayer(&recordingRenderer{})
	runFrames(p, openLevel{}, core.NewKeyState(), 120)
	_, groundY := p.Position()

	p.HandleKeyboard(core.NewKeyState(core.KeySpace))
	if _, vy := p.Velocity(); vy != -JumpSpeed {
		t.Fatalf("jump should set vy = %f, got %f", -JumpSpeed, vy)
	}
	p.UpdateState(frame, openLevel{})

	if _, y := p.Position(); y >= groundY {
		t.Errorf("player should rise after a jump, y = %f ground = %f", y, groundY)
	}
	if p.State() != StateJump {
		t.Errorf("State() = %v, expected Jump", p.State())
	}

	// No double jump in mid air.
	p.HandleKeyboard(core.NewKeyState(core.KeyUp))
	if _, vy := p.Velocity(); vy == -JumpSpeed {
		t.Error("jumping in mid air should be ignored")
	}

	runFrames(p, openLevel{}, core.NewKeyState(), 120)
	if !p.OnGround() {
		t.Error("player should come back down")
	}
}

func TestPlayerLongFrameIsTruncated(t *testing.T) {
	p := NewPlayer(&recordingRenderer{})

	p.UpdateState(10, openLevel{})
	_, y := p.Position()

	// Falling for MaxFrame seconds from rest, integrated in MaxStep sub-steps.
	if y > SpawnY+Gravity*MaxFrame*MaxFrame {
		t.Errorf("a 10s frame should be truncated to %v, fell to y = %f", MaxFrame, y)
	}

	p.UpdateState(-1, openLevel{})
	if _, y2 := p.Position(); y2 != y {
		t.Error("a negative dt should not move the player")
	}
}

func TestPlayerDrawUsesStateColor(t *testing.T) {
	r := &recordingRenderer{}
	p := NewPlayer(r)
	p.Draw()

	if len(r.fills) != 2 {
		t.Fatalf("Draw should fill body and eye, got %d rects", len(r.fills))
	}
	if r.fills[0] != p.Rect() {
		t.Errorf("body rect = %+v, expected %+v", r.fills[0], p.Rect())
	}
	if r.colors[0] != stateColors[StateFall] {
		t.Errorf("airborne player should use the fall color")
	}
}
