package world

import (
	"math"

	"github.com/vovakirdan/blank/internal/core"
)

// Physics constants, in pixels and seconds.
const (
	Gravity      = 2000.0 // downward acceleration, px/s²
	WalkSpeed    = 256.0  // horizontal speed while a direction key is held, px/s
	JumpSpeed    = 900.0  // initial upward speed of a jump, px/s
	MaxFallSpeed = 1500.0 // terminal velocity, px/s

	// MaxStep keeps a single sub-step shorter than a tile at terminal velocity.
	MaxStep  = 0.02
	MaxFrame = 0.25 // frames longer than this are truncated, s
)

// Sprite size and spawn point, in pixels.
const (
	PlayerWidth  = 48
	PlayerHeight = 64
	SpawnX       = 96
	SpawnY       = 64
)

// State is the player's animation state.
type State int

const (
	StateRest State = iota
	StateWalk
	StateJump
	StateFall
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRest:
		return "Rest"
	case StateWalk:
		return "Walk"
	case StateJump:
		return "Jump"
	case StateFall:
		return "Fall"
	default:
		return "Unknown"
	}
}

var stateColors = map[State]core.Color{
	StateRest: {R: 40, G: 40, B: 160, A: 255},
	StateWalk: {R: 40, G: 120, B: 200, A: 255},
	StateJump: {R: 200, G: 120, B: 40, A: 255},
	StateFall: {R: 160, G: 40, B: 120, A: 255},
}

// Player is the controllable character. Position is the top-left corner of its hitbox.
type Player struct {
	renderer   core.Renderer
	x, y       float64
	vx, vy     float64
	onGround   bool
	facingLeft bool
}

// NewPlayer creates a player at the spawn point drawing to r.
func NewPlayer(r core.Renderer) *Player {
	return &Player{
		renderer: r,
		x:        SpawnX,
		y:        SpawnY,
	}
}

// HandleKeyboard turns the keyboard snapshot into intended motion.
func (p *Player) HandleKeyboard(keys core.KeyState) {
	left, right := keys.Pressed(core.KeyLeft), keys.Pressed(core.KeyRight)
	switch {
	case left && !right:
		p.vx = -WalkSpeed
		p.facingLeft = true
	case right && !left:
		p.vx = WalkSpeed
		p.facingLeft = false
	default:
		p.vx = 0
	}

	if p.onGround && (keys.Pressed(core.KeyUp) || keys.Pressed(core.KeySpace)) {
		p.vy = -JumpSpeed
		p.onGround = false
	}
}

// UpdateState advances movement, gravity and collisions by dt seconds.
func (p *Player) UpdateState(dt float64, level core.Level) {
	dt = core.ClampF(dt, 0, MaxFrame)
	for dt > 0 {
		h := math.Min(dt, MaxStep)
		p.step(h, level)
		dt -= h
	}
}

func (p *Player) step(h float64, level core.Level) {
	p.x, _ = p.move(p.x, p.vx*h, func(x float64) core.Rect { return hitbox(x, p.y) }, level)

	p.vy = math.Min(p.vy+Gravity*h, MaxFallSpeed)
	var hit bool
	p.y, hit = p.move(p.y, p.vy*h, func(y float64) core.Rect { return hitbox(p.x, y) }, level)
	if hit {
		p.vy = 0
	}

	p.onGround = p.vy >= 0 && level.Blocked(p.Rect().Translate(0, 1))
	if p.onGround {
		p.vy = 0
	}
}

// move displaces pos by d along one axis. When the full move collides it
// advances pixel by pixel up to the obstacle and reports the hit.
func (p *Player) move(pos, d float64, box func(float64) core.Rect, level core.Level) (float64, bool) {
	if d == 0 {
		return pos, false
	}
	if !level.Blocked(box(pos + d)) {
		return pos + d, false
	}
	unit := math.Copysign(1, d)
	for remaining := math.Abs(d); remaining >= 1; remaining-- {
		if level.Blocked(box(pos + unit)) {
			break
		}
		pos += unit
	}
	return pos, true
}

func hitbox(x, y float64) core.Rect {
	return core.NewRect(int(math.Floor(x)), int(math.Floor(y)), PlayerWidth, PlayerHeight)
}

// Rect returns the player's hitbox in window pixels.
func (p *Player) Rect() core.Rect {
	return hitbox(p.x, p.y)
}

// Position returns the top-left corner of the hitbox.
func (p *Player) Position() (x, y float64) {
	return p.x, p.y
}

// Velocity returns the current velocity in px/s.
func (p *Player) Velocity() (vx, vy float64) {
	return p.vx, p.vy
}

// OnGround reports whether the player stands on solid ground.
func (p *Player) OnGround() bool {
	return p.onGround
}

// State returns the animation state derived from the motion.
func (p *Player) State() State {
	switch {
	case !p.onGround && p.vy < 0:
		return StateJump
	case !p.onGround:
		return StateFall
	case p.vx != 0:
		return StateWalk
	default:
		return StateRest
	}
}

// Draw renders the player sprite with an eye on the facing side.
func (p *Player) Draw() {
	r := p.Rect()
	p.renderer.FillRect(r, stateColors[p.State()])

	eye := core.NewRect(r.Right()-16, r.Y+12, 8, 8)
	if p.facingLeft {
		eye.X = r.X + 8
	}
	p.renderer.FillRect(eye, core.ColorWhite)
}
