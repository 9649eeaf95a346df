package sim

import (
	"math"

	"github.com/Garsondee/void-magi/internal/geom"
)

// Magnetizable is anything the attractor can pull and shrink. The footprint
// is mutated in place.
type Magnetizable interface {
	Footprint() *geom.Rect
}

// checkpointLetter is implemented by narrative letters; checkpoint letters
// never complete a magnetize batch.
type checkpointLetter interface {
	IsCheckpoint() bool
}

// Pointer is the directional indicator shown while aiming a launch.
type Pointer struct {
	Angle   float64
	Visible bool
}

// Attractor is the player-controlled void. It grows toward TargetRadius and
// shrinks toward BaseRadius after touching a shrink zone. The two approaches
// run side by side.
type Attractor struct {
	Pos, Vel       geom.Vec2
	Radius         float64
	TargetRadius   float64
	BaseRadius     float64
	Growing        bool
	Shrinking      bool
	GravityEnabled bool
	Pointer        Pointer

	// Pulse advances with time and drives the rim animation.
	Pulse float64
}

// NewAttractor creates an idle attractor.
func NewAttractor(pos geom.Vec2, radius float64) *Attractor {
	return &Attractor{
		Pos:          pos,
		Radius:       radius,
		TargetRadius: radius,
		BaseRadius:   AttractorBaseRadius,
	}
}

// Circle returns the attractor's disc.
func (a *Attractor) Circle() geom.Circle {
	return geom.Circle{Center: a.Pos, R: a.Radius}
}

// Bounds returns the square enclosing the disc.
func (a *Attractor) Bounds() geom.Rect {
	return geom.Rect{X: a.Pos.X - a.Radius, Y: a.Pos.Y - a.Radius, W: 2 * a.Radius, H: 2 * a.Radius}
}

// Grow raises the target radius by amount. The radius catches up over the
// following ticks.
func (a *Attractor) Grow(amount float64) {
	a.TargetRadius += amount
	a.Growing = true
}

// CanEngulf reports whether the attractor is larger than half the smaller
// side of r.
func (a *Attractor) CanEngulf(r geom.Rect) bool {
	return a.Radius > r.MinSide()/2
}

// Aim points the launch indicator along angle.
func (a *Attractor) Aim(angle float64) {
	a.Pointer.Angle = angle
	a.Pointer.Visible = true
}

// PointerTip is where the indicator points, just outside the rim, opposite
// to the drag direction.
func (a *Attractor) PointerTip() geom.Vec2 {
	d := a.Radius + PointerMargin
	return a.Pos.Sub(geom.Vec2{X: math.Cos(a.Pointer.Angle) * d, Y: math.Sin(a.Pointer.Angle) * d})
}

// Launch releases a drag: the attractor flies opposite to the drag vector,
// as fast as the drag was long.
func (a *Attractor) Launch(drag geom.Vec2) {
	power := drag.Len()
	if power > 0 {
		angle := math.Atan2(drag.Y, drag.X)
		a.Vel = geom.Vec2{X: -math.Cos(angle), Y: -math.Sin(angle)}.Scale(power * LaunchReduction)
	}
	a.Pointer.Visible = false
}

// Update advances the attractor by one tick: motion, bounds, obstacle
// collision, shrink zones, then the radius.
func (a *Attractor) Update(delta float64, view View, solids []*Obstacle, zones []*ShrinkZone) geom.Side {
	a.Pulse += 1.2 * delta
	if a.GravityEnabled {
		a.Vel.Y += Gravity * delta
	}
	a.Pos = a.Pos.Add(a.Vel.Scale(delta))
	ext := geom.Vec2{X: a.Radius, Y: a.Radius}
	clampToView(&a.Pos.X, &a.Pos.Y, &a.Vel, ext, ext, view)

	side := a.collide(solids)
	a.checkZones(zones)
	a.updateRadius()
	return side
}

// collide resolves the first colliding obstacle. Magnetizable obstacles the
// attractor is large enough to swallow are passed through.
func (a *Attractor) collide(solids []*Obstacle) geom.Side {
	c := a.Circle()
	for _, o := range solids {
		if !o.Caps.Has(CapCollidable) {
			continue
		}
		if o.Caps.Has(CapMagnetizable) && o.W/2 < a.Radius {
			continue
		}
		side := geom.CircleRectCollisionResponse(&c, o.Rect)
		if side == geom.SideNone {
			continue
		}
		a.Pos = c.Center
		if side.Horizontal() {
			a.Vel.X *= AttractorBounce
			a.Vel.Y *= GroundFriction
		} else {
			a.Vel.Y *= AttractorBounce
			a.Vel.X *= GroundFriction
		}
		return side
	}
	return geom.SideNone
}

func (a *Attractor) checkZones(zones []*ShrinkZone) {
	if a.Radius <= a.BaseRadius {
		return
	}
	c := a.Circle()
	for _, z := range zones {
		if geom.CircleRectOverlap(c, z.Rect) {
			a.Shrinking = true
			return
		}
	}
}

// updateRadius applies the growth and shrink approaches independently, both
// measured from the radius at the start of the frame, and adds them. With
// both pending the radius holds still.
func (a *Attractor) updateRadius() {
	var grow, shrink float64
	growSnap, shrinkSnap := false, false
	if a.Growing {
		grow = AttractorGrowthRate
		if gap := a.TargetRadius - a.Radius; gap <= AttractorGrowthRate+growthSnapTolerance {
			grow = math.Max(gap, 0)
			growSnap = true
			a.Growing = false
		}
	}
	if a.Shrinking {
		shrink = AttractorShrinkRate
		if gap := a.Radius - a.BaseRadius; gap <= AttractorShrinkRate+growthSnapTolerance {
			shrink = math.Max(gap, 0)
			shrinkSnap = true
			a.Shrinking = false
		}
	}

	switch {
	case growSnap && shrink == 0:
		a.Radius = math.Max(a.Radius, a.TargetRadius)
	case shrinkSnap && grow == 0:
		a.Radius = math.Min(a.Radius, a.BaseRadius)
	case grow != shrink:
		a.Radius += grow - shrink
	}
}

// Magnetize pulls every entity of batch within reach toward the attractor's
// centre and shrinks those already inside the disc. It reports whether the
// batch is non-empty and fully consumed; a batch holding checkpoint letters
// never completes.
func (a *Attractor) Magnetize(batch []Magnetizable) bool {
	if a.Radius < MagnetizeMinRadius {
		return false
	}
	limit := a.Radius / MagnetizeStepDivisor
	for _, m := range batch {
		r := m.Footprint()
		if a.Radius <= r.MinSide()/2 {
			continue
		}
		step, dist := geom.PullStep(r.Center(), a.Pos, MagnetizeStrength, limit)
		if dist > MagnetizeReach*a.Radius {
			continue
		}
		r.X += step.X
		r.Y += step.Y
		if dist < a.Radius {
			r.W *= MagnetizeShrinkFactor
			r.H *= MagnetizeShrinkFactor
		}
	}
	return batchConsumed(batch)
}

func batchConsumed(batch []Magnetizable) bool {
	if len(batch) == 0 {
		return false
	}
	for _, m := range batch {
		if cl, ok := m.(checkpointLetter); ok && cl.IsCheckpoint() {
			return false
		}
		if !m.Footprint().Consumed() {
			return false
		}
	}
	return true
}
