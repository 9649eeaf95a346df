// Package geom holds the stateless 2D primitives shared by the simulation:
// vectors, axis-aligned rectangles, circles, and the overlap and collision
// response functions between them.
package geom

import "math"

// Vec2 is a 2D vector used for positions, velocities and directions.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the distance between a and b.
func Dist(a, b Vec2) float64 { return b.Sub(a).Len() }

// PullStep returns the displacement that moves a point at from a bounded
// step toward to, and the distance between them. The step magnitude is
// min(limit, strength/dist). A zero distance yields a zero step: the point is
// already at its target.
func PullStep(from, to Vec2, strength, limit float64) (Vec2, float64) {
	dir := to.Sub(from)
	dist := dir.Len()
	if dist == 0 {
		return Vec2{}, 0
	}
	step := math.Min(limit, strength/dist)
	return dir.Scale(step / dist), dist
}
