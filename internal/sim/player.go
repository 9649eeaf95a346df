package sim

import (
	"math"

	"github.com/Garsondee/void-magi/internal/geom"
)

// Player is the magi the user walks through the level.
type Player struct {
	Body
	Hearts    int
	MaxHearts int
	JumpCount int

	// Invincibility counts down after a hit; no damage is taken while it is
	// positive.
	Invincibility float64

	ShowWand bool
	Running  bool
	Facing   Direction
}

// NewPlayer creates a player at (x, y) with full hearts.
func NewPlayer(x, y float64) *Player {
	return &Player{
		Body:      Body{Rect: geom.Rect{X: x, Y: y, W: PlayerWidth, H: PlayerHeight}},
		Hearts:    PlayerHearts,
		MaxHearts: PlayerHearts,
		Facing:    DirRight,
	}
}

func (p *Player) Invincible() bool { return p.Invincibility > 0 }

func (p *Player) Dead() bool { return p.Hearts <= 0 }

// LoseHeart removes a heart and starts the invincibility window. It is a
// no-op while invincible or already dead.
func (p *Player) LoseHeart() bool {
	if p.Invincible() || p.Dead() {
		return false
	}
	p.Hearts--
	p.Invincibility = InvincibleSeconds
	return true
}

// Jump starts a jump if any remain.
func (p *Player) Jump() bool {
	if p.JumpCount >= PlayerMaxJumps {
		return false
	}
	p.Vel.Y = -PlayerJumpPower
	p.JumpCount++
	return true
}

func (p *Player) tickTimers(delta float64) {
	if p.Invincibility > 0 {
		p.Invincibility = math.Max(0, p.Invincibility-delta)
	}
}

// Update moves the player one axis at a time, resolving obstacle contacts
// after each, then lands it on the floor and clamps it to the world.
func (p *Player) Update(delta, floor, worldWidth float64, broad *Broadphase) {
	p.ApplyGravity(delta)

	p.X += p.Vel.X * delta
	p.resolveHorizontal(broad.Query(p.Rect))

	p.Y += p.Vel.Y * delta
	p.resolveVertical(broad.Query(p.Rect))

	if p.LandOnFloor(floor, GroundFriction) {
		p.JumpCount = 0
	}
	p.X = math.Max(0, math.Min(p.X, worldWidth-p.W))
}

// blocking reports whether o stops the player. Boxes held by the attractor
// are passed through.
func (p *Player) blocking(o *Obstacle) bool {
	return o.Caps.Has(CapCollidable) && !o.UnderInfluence && geom.AABBOverlap(p.Rect, o.Rect)
}

func (p *Player) resolveHorizontal(solids []*Obstacle) {
	for _, o := range solids {
		if !p.blocking(o) {
			continue
		}
		// Standing on top of the box: leave it to the vertical pass.
		if p.Bottom() <= o.Y+landingTolerance {
			continue
		}
		switch {
		case p.Vel.X > 0:
			p.X = o.X - p.W - playerObstacleGap
		case p.Vel.X < 0:
			p.X = o.Right() + playerObstacleGap
		default:
			continue
		}
		p.Vel.X = 0
	}
}

func (p *Player) resolveVertical(solids []*Obstacle) {
	for _, o := range solids {
		if !p.blocking(o) {
			continue
		}
		switch {
		case p.Vel.Y > 0 && p.Bottom() >= o.Y:
			p.Y = o.Y - p.H
			p.Vel.Y = 0
			p.JumpCount = 0
		case p.Vel.Y < 0 && p.Y <= o.Bottom():
			p.Y = o.Bottom() + 1
			p.Vel.Y = 0
		}
	}
}
