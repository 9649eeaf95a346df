package geom

import "math"

// Side names the face of a rectangle a circle was pushed out of.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideNone:
		return "none"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Horizontal reports whether the side is the left or right face.
func (s Side) Horizontal() bool { return s == SideLeft || s == SideRight }

// AABBOverlap reports whether two rectangles overlap. Touching edges count.
func AABBOverlap(a, b Rect) bool {
	return a.X+a.W >= b.X &&
		a.X <= b.X+b.W &&
		a.Y+a.H >= b.Y &&
		a.Y <= b.Y+b.H
}

// nearestDelta returns the offset from the point of r closest to the circle
// centre, to the circle centre.
func nearestDelta(c Circle, r Rect) (dx, dy float64) {
	nx := math.Max(r.X, math.Min(c.Center.X, r.X+r.W))
	ny := math.Max(r.Y, math.Min(c.Center.Y, r.Y+r.H))
	return c.Center.X - nx, c.Center.Y - ny
}

// CircleRectOverlap reports whether the circle touches or intersects r.
func CircleRectOverlap(c Circle, r Rect) bool {
	dx, dy := nearestDelta(c, r)
	return dx*dx+dy*dy <= c.R*c.R
}

// Correction is the displacement that separates a circle from a rectangle,
// along with the rectangle face it was pushed out of.
type Correction struct {
	Delta Vec2
	Side  Side
}

// Apply moves the circle by the correction.
func (c Correction) Apply(circle *Circle) {
	circle.Center = circle.Center.Add(c.Delta)
}

// CircleRectCorrection computes the push-out for a circle overlapping r. The
// push is the penetration depth (radius minus centre distance) along the axis
// of greater absolute delta; equal deltas resolve along X. It returns false
// and a zero correction when the shapes do not overlap.
func CircleRectCorrection(c Circle, r Rect) (Correction, bool) {
	dx, dy := nearestDelta(c, r)
	distSq := dx*dx + dy*dy
	if distSq > c.R*c.R {
		return Correction{}, false
	}
	overlap := c.R - math.Sqrt(distSq)

	// >= is deliberate: a dead-on corner hit is pushed out sideways.
	if math.Abs(dx) >= math.Abs(dy) {
		if dx > 0 {
			return Correction{Delta: Vec2{X: overlap}, Side: SideRight}, true
		}
		return Correction{Delta: Vec2{X: -overlap}, Side: SideLeft}, true
	}
	if dy > 0 {
		return Correction{Delta: Vec2{Y: overlap}, Side: SideBottom}, true
	}
	return Correction{Delta: Vec2{Y: -overlap}, Side: SideTop}, true
}

// CircleRectCollisionResponse resolves a circle against r in place.
//
// It MUTATES circle: on overlap the centre is moved out of the rectangle and
// the face is returned. Without overlap the circle is untouched and SideNone
// is returned.
func CircleRectCollisionResponse(circle *Circle, r Rect) Side {
	corr, ok := CircleRectCorrection(*circle, r)
	if !ok {
		return SideNone
	}
	corr.Apply(circle)
	return corr.Side
}
