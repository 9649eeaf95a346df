package geom

import "math"

// ConsumedEpsilon is the footprint size at or below which an entity counts as
// fully absorbed.
const ConsumedEpsilon = 5.0

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// MinSide returns the smaller of the two dimensions.
func (r Rect) MinSide() float64 { return math.Min(r.W, r.H) }

// Consumed reports whether both dimensions have shrunk to ConsumedEpsilon or below.
func (r Rect) Consumed() bool {
	return r.W <= ConsumedEpsilon && r.H <= ConsumedEpsilon
}

// Inflate grows the rectangle by m on every side.
func (r Rect) Inflate(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// Circle is a disc given by its centre and radius.
type Circle struct {
	Center Vec2
	R      float64
}
