package sim

import "github.com/Garsondee/void-magi/internal/geom"

// View is the scroll-relative window the attractor is kept inside.
type View struct {
	Left  float64
	Width float64
	Floor float64
}

// Body is a rectangular entity with a velocity.
type Body struct {
	geom.Rect
	Vel geom.Vec2
}

// ApplyGravity accelerates the body downward for one tick.
func (b *Body) ApplyGravity(delta float64) {
	b.Vel.Y += Gravity * delta
}

// Integrate moves the body by its velocity.
func (b *Body) Integrate(delta float64) {
	b.X += b.Vel.X * delta
	b.Y += b.Vel.Y * delta
}

// LandOnFloor snaps the body onto the floor when it has reached it, stopping
// vertical motion and damping horizontal motion by friction.
func (b *Body) LandOnFloor(floor, friction float64) bool {
	if b.Bottom() < floor {
		return false
	}
	b.Y = floor - b.H
	b.Vel.Y = 0
	b.Vel.X *= friction
	return true
}

// landOn settles a falling body on the first collidable surface it came down
// onto this tick. prevBottom is the body's bottom edge before integration.
func (b *Body) landOn(prevBottom float64, solids []*Obstacle, self *Obstacle) bool {
	if b.Vel.Y < 0 {
		return false
	}
	for _, o := range solids {
		if o == self || !o.Caps.Has(CapCollidable) || o.UnderInfluence {
			continue
		}
		if !geom.AABBOverlap(b.Rect, o.Rect) || prevBottom > o.Y+landingTolerance {
			continue
		}
		b.Y = o.Y - b.H
		b.Vel.Y = 0
		return true
	}
	return false
}

// clampToView keeps an extent inside v. lo and hi are the distances from
// (x, y) to the extent's top-left and bottom-right edges. Contact with a bound
// zeroes the velocity on that axis and applies friction to the other.
func clampToView(x, y *float64, vel *geom.Vec2, lo, hi geom.Vec2, v View) {
	if *y+hi.Y >= v.Floor {
		*y = v.Floor - hi.Y
		vel.Y = 0
		vel.X *= GroundFriction
	}
	if *y-lo.Y <= 0 {
		*y = lo.Y
		vel.Y = 0
		vel.X *= GroundFriction
	}
	if *x-lo.X <= v.Left {
		*x = v.Left + lo.X
		vel.X = 0
		vel.Y *= GroundFriction
	}
	if *x+hi.X >= v.Left+v.Width {
		*x = v.Left + v.Width - hi.X
		vel.X = 0
		vel.Y *= GroundFriction
	}
}
