package fallingup

import (
	"github.com/vovakirdan/falling-up/internal/config"
	"github.com/vovakirdan/falling-up/internal/core"
)

// Side names the player edge box involved in a collision.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideBottom
	SideTop
)

// String returns the side name used in logs.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideTop:
		return "top"
	default:
		return "none"
	}
}

// Player is the falling circle. (x, y) is the bottom-left corner of its
// bounding box; every edge box is derived from it.
type Player struct {
	x, y     float64
	vy       float64
	airborne bool

	w, h  float64
	inset float64

	gravity     float64
	jumpImpulse float64
	hSpeed      float64

	sounds Sounds
}

// NewPlayer creates a grounded player at the configured start position.
func NewPlayer(pc config.PlayerConfig, phys config.PhysicsConfig, sounds Sounds) *Player {
	if sounds == nil {
		sounds = NopSounds{}
	}
	p := &Player{
		w:           pc.Width,
		h:           pc.Height,
		inset:       pc.EdgeInset,
		gravity:     phys.Gravity,
		jumpImpulse: phys.JumpImpulse,
		hSpeed:      phys.HorizontalSpeed,
		sounds:      sounds,
	}
	p.SetPosition(pc.StartX, pc.StartY)
	return p
}

// X returns the left edge.
func (p *Player) X() float64 { return p.x }

// Y returns the bottom edge.
func (p *Player) Y() float64 { return p.y }

// VY returns the vertical velocity in world units per tick.
func (p *Player) VY() float64 { return p.vy }

// Airborne reports whether the player has jumped and not landed since.
func (p *Player) Airborne() bool { return p.airborne }

// Width returns the bounding box width.
func (p *Player) Width() float64 { return p.w }

// Height returns the bounding box height.
func (p *Player) Height() float64 { return p.h }

// Bounds returns the full bounding box.
func (p *Player) Bounds() core.Box {
	return core.NewBox(p.x, p.y, p.w, p.h)
}

// Bottom returns the edge box along the lower edge.
func (p *Player) Bottom() core.Box {
	return core.NewBox(p.x, p.y, p.w, p.inset)
}

// Top returns the edge box along the upper edge.
func (p *Player) Top() core.Box {
	return core.NewBox(p.x, p.y+p.h-p.inset, p.w, p.inset)
}

// Left returns the edge box along the left edge, between the bottom and top edge boxes.
func (p *Player) Left() core.Box {
	return core.NewBox(p.x, p.y+p.inset, p.inset, p.h-2*p.inset)
}

// Right returns the edge box along the right edge, between the bottom and top edge boxes.
func (p *Player) Right() core.Box {
	return core.NewBox(p.x+p.w-p.inset, p.y+p.inset, p.inset, p.h-2*p.inset)
}

// SetPosition relocates the player; all edge boxes follow.
func (p *Player) SetPosition(x, y float64) {
	p.x = x
	p.y = y
}

// Update applies gravity and moves the player vertically by its velocity.
func (p *Player) Update(dt float64) {
	p.vy -= p.gravity * dt
	p.SetPosition(p.x, p.y+p.vy)
}

// MoveLeft shifts the player left. Collisions are resolved by the caller
// on the next tick.
func (p *Player) MoveLeft(dt float64) {
	p.SetPosition(p.x-p.hSpeed*dt, p.y)
}

// MoveRight shifts the player right.
func (p *Player) MoveRight(dt float64) {
	p.SetPosition(p.x+p.hSpeed*dt, p.y)
}

// Jump launches a grounded player and reports whether it fired.
func (p *Player) Jump() bool {
	if p.airborne {
		return false
	}
	p.vy = p.jumpImpulse
	p.airborne = true
	p.sounds.Jump()
	return true
}

// TestCollision returns the first edge box overlapping box, checked
// left, right, bottom, top.
func (p *Player) TestCollision(box core.Box) Side {
	switch {
	case box.Overlaps(p.Left()):
		return SideLeft
	case box.Overlaps(p.Right()):
		return SideRight
	case box.Overlaps(p.Bottom()):
		return SideBottom
	case box.Overlaps(p.Top()):
		return SideTop
	default:
		return SideNone
	}
}

// ResolveCollision snaps the player after a hit on side.
// Vertical hits stop the player at y and keep x; a bottom hit also lands
// it. Horizontal hits snap to x, keep y and leave vy alone.
func (p *Player) ResolveCollision(side Side, x, y float64) {
	switch side {
	case SideBottom:
		p.vy = 0
		p.airborne = false
		p.SetPosition(p.x, y)
	case SideTop:
		p.vy = 0
		p.SetPosition(p.x, y)
	case SideLeft, SideRight:
		p.SetPosition(x, p.y)
	}
}
