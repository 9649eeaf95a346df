package sim

import (
	"fmt"
	"strings"

	"github.com/Garsondee/void-magi/internal/geom"
	"github.com/solarlune/resolv"
)

// Capability is the set of behaviours an obstacle takes part in.
type Capability uint8

const (
	CapMagnetizable Capability = 1 << iota // pulled and shrunk by the attractor
	CapGravity                             // falls when outside the attractor's influence
	CapCollidable                          // blocks the player, soldiers and the attractor
)

// Has reports whether every capability in o is set.
func (c Capability) Has(o Capability) bool { return c&o == o }

func (c Capability) String() string {
	var parts []string
	if c.Has(CapMagnetizable) {
		parts = append(parts, "magnetizable")
	}
	if c.Has(CapGravity) {
		parts = append(parts, "gravity")
	}
	if c.Has(CapCollidable) {
		parts = append(parts, "collidable")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Obstacle is a box in the level.
type Obstacle struct {
	Body
	id    int
	label string
	Caps  Capability
	Mass  float64

	// UnderInfluence is set while the attractor is close enough to hold the
	// obstacle in place. The player passes through such obstacles.
	UnderInfluence bool

	proxy *resolv.Object
}

// NewObstacle creates an obstacle with the default mass.
func NewObstacle(x, y, w, h float64, caps Capability) *Obstacle {
	return &Obstacle{
		Body: Body{Rect: geom.Rect{X: x, Y: y, W: w, H: h}},
		Caps: caps,
		Mass: ObstacleMass,
	}
}

func (o *Obstacle) Label() string { return o.label }

// Footprint exposes the box to the attractor's magnetize pass.
func (o *Obstacle) Footprint() *geom.Rect { return &o.Rect }

// Update applies gravity to gravity-capable obstacles that are outside the
// attractor's influence, landing them on the floor or on other obstacles.
func (o *Obstacle) Update(delta float64, a *Attractor, floor float64, neighbours []*Obstacle) {
	if !o.Caps.Has(CapGravity) {
		return
	}
	o.UnderInfluence = geom.Dist(o.Center(), a.Pos) < ObstacleInfluenceRadius
	if o.UnderInfluence {
		return
	}
	prevBottom := o.Bottom()
	o.ApplyGravity(delta)
	o.Integrate(delta)
	if o.LandOnFloor(floor, 1) {
		return
	}
	o.landOn(prevBottom, neighbours, o)
}

// ShrinkZone is a barrier region that collapses the attractor to its base
// radius while they overlap.
type ShrinkZone struct {
	geom.Rect
	Elapsed float64 // drives the shimmer when rendered
}

// NewShrinkZone creates a shrink zone covering the given rectangle.
func NewShrinkZone(x, y, w, h float64) *ShrinkZone {
	return &ShrinkZone{Rect: geom.Rect{X: x, Y: y, W: w, H: h}}
}

func obstacleLabel(id int) string { return fmt.Sprintf("O%d", id) }
