package main

import (
	"math"
	"math/rand/v2"

	"github.com/Garsondee/void-magi/internal/geom"
	"github.com/Garsondee/void-magi/internal/sim"
)

const (
	launchEvery   = 90  // ticks between launch gestures
	launchMaxPow  = 700 // px/s cap on a launch
	launchJitter  = 0.15
	stuckWindow   = 30 // ticks without progress before jumping
	stuckProgress = 4.0
	targetLead    = 900 // only aim at things this far ahead of the player
	dragAnchorY   = 300 // screen point the drag gesture starts from
)

// autopilot plays the level the way a hurried player would: hold right,
// jump when stuck, and fling the void at the nearest thing it can swallow.
type autopilot struct {
	rng *rand.Rand

	walk bool // false for the idle scenario

	dragStep int // 0 idle, 1 begun, 2 aimed
	dragEnd  geom.Vec2

	lastX     float64
	lastXTick int
}

func newAutopilot(seed int64, walk bool) *autopilot {
	return &autopilot{
		rng:  rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
		walk: walk,
	}
}

// Next builds the input for the coming tick.
func (ap *autopilot) Next(w *sim.World) sim.Input {
	var in sim.Input
	if ap.walk {
		in.Move = sim.MoveRight
		in.Jump = ap.stuck(w)
	}
	ap.launch(w, &in)
	return in
}

func (ap *autopilot) stuck(w *sim.World) bool {
	x := w.Player.X
	if x-ap.lastX > stuckProgress {
		ap.lastX = x
		ap.lastXTick = w.Tick
		return false
	}
	if w.Tick-ap.lastXTick < stuckWindow {
		return false
	}
	ap.lastXTick = w.Tick
	return true
}

// launch walks a three-tick drag gesture: press, aim, release.
func (ap *autopilot) launch(w *sim.World, in *sim.Input) {
	start := geom.Vec2{X: w.Cfg.CanvasWidth / 2, Y: dragAnchorY}
	switch ap.dragStep {
	case 0:
		if w.Tick%launchEvery != 0 || !w.Director.AllowPointer {
			return
		}
		target, ok := pickTarget(w)
		if !ok {
			return
		}
		drag := ap.dragFor(w.Attractor.Pos, target)
		ap.dragEnd = start.Add(drag)
		in.Drag, in.Point = sim.DragBegin, start
		ap.dragStep = 1
	case 1:
		in.Drag, in.Point = sim.DragMove, ap.dragEnd
		ap.dragStep = 2
	case 2:
		in.Drag, in.Point = sim.DragRelease, ap.dragEnd
		ap.dragStep = 0
	}
}

// dragFor returns the drag vector that launches the void from pos toward
// target. Launches fly opposite to the drag.
func (ap *autopilot) dragFor(pos, target geom.Vec2) geom.Vec2 {
	d := target.Sub(pos)
	dist := d.Len()
	if dist == 0 {
		return geom.Vec2{}
	}
	power := math.Min(dist*2, launchMaxPow)
	angle := math.Atan2(d.Y, d.X) + (ap.rng.Float64()*2-1)*launchJitter
	return geom.Vec2{X: -math.Cos(angle), Y: -math.Sin(angle)}.Scale(power)
}

// pickTarget chooses the nearest orb, or failing that the nearest knight or
// box the void could already engulf, within reach ahead of the player.
func pickTarget(w *sim.World) (geom.Vec2, bool) {
	a := w.Attractor
	lo, hi := w.Player.X-w.Cfg.CanvasWidth/2, w.Player.X+targetLead

	best, bestD := geom.Vec2{}, math.Inf(1)
	consider := func(p geom.Vec2) {
		if p.X < lo || p.X > hi {
			return
		}
		if d := p.Sub(a.Pos).Len(); d < bestD {
			best, bestD = p, d
		}
	}
	for _, o := range w.Orbs {
		consider(o.Center)
	}
	if !math.IsInf(bestD, 1) {
		return best, true
	}
	for _, s := range w.Soldiers {
		if a.CanEngulf(s.Rect) {
			consider(s.Center())
		}
	}
	for _, o := range w.Obstacles {
		if o.Caps.Has(sim.CapMagnetizable) && a.CanEngulf(o.Rect) {
			consider(o.Center())
		}
	}
	return best, !math.IsInf(bestD, 1)
}
