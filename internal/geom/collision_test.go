package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAABBOverlapSymmetric(t *testing.T) {
	rects := []Rect{
		{X: 0, Y: 0, W: 10, H: 10},
		{X: 10, Y: 0, W: 5, H: 5},     // touching right edge
		{X: 10.01, Y: 0, W: 5, H: 5},  // just past the edge
		{X: -20, Y: -20, W: 100, H: 100},
		{X: 3, Y: 12, W: 2, H: 2},
		{X: 3, Y: 10, W: 0, H: 0},
	}
	for i, a := range rects {
		for j, b := range rects {
			assert.Equalf(t, AABBOverlap(a, b), AABBOverlap(b, a), "rects %d,%d", i, j)
		}
	}
}

func TestAABBOverlapEdges(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, AABBOverlap(a, Rect{X: 10, Y: 10, W: 1, H: 1}), "corner contact counts")
	assert.False(t, AABBOverlap(a, Rect{X: 10.5, Y: 0, W: 1, H: 1}))
	assert.False(t, AABBOverlap(a, Rect{X: 0, Y: -2, W: 1, H: 1.5}))
}

func TestCircleRectOverlap(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, CircleRectOverlap(Circle{Center: Vec2{5, 5}, R: 1}, r), "centre inside")
	assert.True(t, CircleRectOverlap(Circle{Center: Vec2{13, 5}, R: 3}, r), "tangent")
	assert.False(t, CircleRectOverlap(Circle{Center: Vec2{13.1, 5}, R: 3}, r))
	// Corner region uses the true distance, not the box around the circle.
	assert.False(t, CircleRectOverlap(Circle{Center: Vec2{12, 12}, R: 2.5}, r))
	assert.True(t, CircleRectOverlap(Circle{Center: Vec2{12, 12}, R: 3}, r))
}

func TestCircleRectResponseLeavesSeparatedCircle(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	c := Circle{Center: Vec2{30, 5}, R: 4}
	before := c

	require.False(t, CircleRectOverlap(c, r))
	side := CircleRectCollisionResponse(&c, r)

	assert.Equal(t, SideNone, side)
	assert.Equal(t, before, c)
}

func TestCircleRectResponseSides(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	cases := []struct {
		name   string
		center Vec2
		side   Side
		want   Vec2
	}{
		{"right face", Vec2{12, 5}, SideRight, Vec2{14, 5}},
		{"left face", Vec2{-2, 5}, SideLeft, Vec2{-4, 5}},
		{"top face", Vec2{5, -1}, SideTop, Vec2{5, -4}},
		{"bottom face", Vec2{5, 11}, SideBottom, Vec2{5, 14}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Circle{Center: tc.center, R: 4}
			side := CircleRectCollisionResponse(&c, r)
			assert.Equal(t, tc.side, side)
			assert.InDelta(t, tc.want.X, c.Center.X, 1e-9)
			assert.InDelta(t, tc.want.Y, c.Center.Y, 1e-9)
		})
	}
}

func TestCircleRectCorrectionTieResolvesAlongX(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	c := Circle{Center: Vec2{12, 12}, R: 4}

	corr, ok := CircleRectCorrection(c, r)
	require.True(t, ok)
	assert.Equal(t, SideRight, corr.Side)
	assert.InDelta(t, 4-2*math.Sqrt2, corr.Delta.X, 1e-9)
	assert.Zero(t, corr.Delta.Y)
	assert.Equal(t, Vec2{12, 12}, c.Center, "correction must not touch its input")
}

func TestPullStepZeroDistance(t *testing.T) {
	step, dist := PullStep(Vec2{3, 3}, Vec2{3, 3}, 100, 10)
	assert.Zero(t, dist)
	assert.Equal(t, Vec2{}, step)
}

func TestPullStepCapped(t *testing.T) {
	// Close to the target the strength term dominates and is capped by limit.
	step, dist := PullStep(Vec2{0, 0}, Vec2{5, 0}, 100, 10)
	assert.InDelta(t, 5, dist, 1e-9)
	assert.InDelta(t, 10, step.X, 1e-9)

	// Far away the strength/dist term is the smaller one.
	step, _ = PullStep(Vec2{0, 0}, Vec2{0, 200}, 100, 10)
	assert.InDelta(t, 0.5, step.Y, 1e-9)
	assert.Zero(t, step.X)
}

func TestRectConsumed(t *testing.T) {
	assert.True(t, Rect{W: 5, H: 5}.Consumed())
	assert.False(t, Rect{W: 5, H: 5.1}.Consumed())
	assert.Equal(t, 3.0, Rect{W: 3, H: 8}.MinSide())
}
