package sim

import (
	"math"

	"github.com/Garsondee/void-magi/internal/geom"
)

// OrbState is the orb's lifecycle state.
type OrbState int

const (
	OrbStateIdle OrbState = iota
	OrbStateShrink
)

func (os OrbState) String() string {
	switch os {
	case OrbStateIdle:
		return "idle"
	case OrbStateShrink:
		return "shrink"
	default:
		return "unknown"
	}
}

// Orb is a small pickup that drifts toward the attractor and is absorbed
// for growth.
type Orb struct {
	Center geom.Vec2 // anchor the orb wobbles around
	Pos    geom.Vec2 // drawn position
	Radius float64
	State  OrbState
	phase  float64
}

// NewOrb creates an idle orb centred on (x, y).
func NewOrb(x, y, radius float64) *Orb {
	c := geom.Vec2{X: x, Y: y}
	return &Orb{Center: c, Pos: c, Radius: radius}
}

// Absorbed reports whether the orb has shrunk away.
func (o *Orb) Absorbed() bool { return o.Radius <= 0 }

// Update drifts the orb toward a when it is within reach, wobbles it around
// its centre, and shrinks it once it has been caught.
func (o *Orb) Update(delta float64, a *Attractor) {
	step, dist := geom.PullStep(o.Center, a.Pos, a.Radius*OrbPull, OrbStepCap)
	if dist < a.Radius*OrbReach {
		o.Center = o.Center.Add(step)
	}

	o.phase += OrbWobbleSpeed * delta
	o.Pos = o.Center.Add(geom.Vec2{X: math.Sin(o.phase) * OrbWobble, Y: math.Cos(o.phase) * OrbWobble})

	if o.State == OrbStateShrink {
		o.Radius -= OrbShrinkRate
		return
	}
	if geom.Dist(o.Center, a.Pos) < OrbShrinkDistance {
		o.State = OrbStateShrink
	}
}
