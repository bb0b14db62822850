package trashpanda

import "github.com/vovakirdan/trashpanda/internal/core"

// Direction is a horizontal movement command.
type Direction int

const (
	Left Direction = iota
	Right
)

// String returns "left" or "right".
func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Viewport is the playfield size in world units.
type Viewport struct {
	W, H float64
}

// Player is the raccoon at the bottom of the viewport. X and Y are the centre.
type Player struct {
	X, Y   float64
	Width  float64
	Height float64
	Step   float64
	margin float64 // Gap below the player
}

// NewPlayer creates a player centred horizontally in the viewport.
func NewPlayer(t Tuning, vp Viewport) *Player {
	p := &Player{
		Width:  t.PlayerWidth,
		Height: t.PlayerHeight,
		Step:   t.PlayerStep,
		margin: t.BottomMargin,
	}
	p.Place(vp)
	return p
}

// Place centres the player horizontally and seats it at the bottom.
func (p *Player) Place(vp Viewport) {
	p.X = vp.W / 2
	p.Fit(vp)
}

// Fit re-clamps the player into a (possibly resized) viewport and re-seats
// it at the bottom edge.
func (p *Player) Fit(vp Viewport) {
	p.Y = vp.H - p.margin - p.Height/2
	p.clamp(vp.W)
}

// Move shifts the player one step and clamps it to the viewport.
func (p *Player) Move(dir Direction, viewportW float64) {
	switch dir {
	case Left:
		p.X -= p.Step
	case Right:
		p.X += p.Step
	}
	p.clamp(viewportW)
}

// clamp keeps X within [halfW, w-halfW]. A viewport narrower than the player
// pins it to the centre so X still stays inside [0, w].
func (p *Player) clamp(w float64) {
	if w < 0 {
		w = 0
	}
	lo, hi := p.Width/2, w-p.Width/2
	if hi < lo {
		lo, hi = w/2, w/2
	}
	p.X = core.ClampF(p.X, lo, hi)
}

// Hitbox returns the player's collision box.
func (p *Player) Hitbox() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}
