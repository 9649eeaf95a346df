package sim

import (
	"github.com/Garsondee/void-magi/internal/geom"
	"github.com/Garsondee/void-magi/internal/narrative"
)

// DefaultDelta is the fixed step used by the harness (60 TPS).
const DefaultDelta = 1.0 / 60.0

// TestSim is a headless simulation harness used by tests and the headless
// report. It steps a World with a fixed delta and a held Input.
type TestSim struct {
	Cfg    Config
	World  *World
	SimLog *SimLog

	// Input is handed to the world every tick until changed.
	Input Input
	Delta float64

	fontPending bool
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // applied before the world exists
	simOptEntity                      // applied to the built world
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithCanvas sets the visible area.
func WithCanvas(w, h float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Cfg.CanvasWidth = w
		ts.Cfg.CanvasHeight = h
	}}
}

// WithScript replaces the empty default story.
func WithScript(s narrative.Script) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Cfg.Script = s
	}}
}

// WithIntro runs the opening instead of starting in free play.
func WithIntro() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Cfg.SkipIntro = false
	}}
}

// WithUnlockSequence sets the story sequence that unlocks the keys and the
// knights. Skipping the intro starts the story there.
func WithUnlockSequence(n int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Cfg.KeysUnlockSequence = n
	}}
}

// WithFontPending leaves the narrative presenter unready.
func WithFontPending() SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.fontPending = true
	}}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithDelta sets the fixed step in seconds.
func WithDelta(d float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Delta = d
	}}
}

// WithAttractor places the attractor at (x, y) with the given radius.
func WithAttractor(x, y, radius float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		a := ts.World.Attractor
		a.Pos = geom.Vec2{X: x, Y: y}
		a.Radius = radius
		a.TargetRadius = radius
	}}
}

// WithPlayer places the player's top-left corner at (x, y).
func WithPlayer(x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.World.Player.X = x
		ts.World.Player.Y = y
	}}
}

// WithSoldier adds a knight.
func WithSoldier(x, y float64, dir Direction, travel, scale float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.World.AddSoldier(NewSoldier(x, y, dir, travel, scale))
	}}
}

// WithObstacle adds a box.
func WithObstacle(x, y, w, h float64, caps Capability) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.World.AddObstacle(NewObstacle(x, y, w, h, caps))
	}}
}

// WithOrb adds an orb of the default radius centred on (x, y).
func WithOrb(x, y float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.World.AddOrb(NewOrb(x, y, OrbRadius))
	}}
}

// WithShrinkZone adds a barrier.
func WithShrinkZone(x, y, w, h float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.World.AddZone(NewShrinkZone(x, y, w, h))
	}}
}

// WithLevel builds the shipped level into the world.
func WithLevel() SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		BuildLevel(ts.World)
	}}
}

// NewTestSim constructs a TestSim from the given options in two passes:
//  1. Infrastructure (canvas, script, intro, verbose, delta)
//  2. Build the world, then entities
func NewTestSim(opts ...SimOption) *TestSim {
	cfg := DefaultConfig()
	cfg.SkipIntro = true
	cfg.Script = narrative.Script{}
	ts := &TestSim{
		Cfg:    cfg,
		SimLog: NewSimLog(false),
		Delta:  DefaultDelta,
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	ts.World = NewWorld(ts.Cfg, ts.SimLog)
	if !ts.fontPending {
		ts.World.Narrative.MarkReady()
	}
	for _, o := range opts {
		if o.kind == simOptEntity {
			o.fn(ts)
		}
	}
	return ts
}

// RunTicks advances the simulation n ticks.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.World.Step(ts.Delta, ts.Input)
	}
}

// Step advances one tick with a one-off input.
func (ts *TestSim) Step(in Input) {
	ts.World.Step(ts.Delta, in)
}

// RunUntil advances the simulation up to maxTicks, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.World.Step(ts.Delta, ts.Input)
		if predicate(ts) {
			return ts.World.Tick
		}
	}
	return -1
}

// CurrentTick returns the current simulation tick.
func (ts *TestSim) CurrentTick() int {
	return ts.World.Tick
}

// SimSnapshot is a lightweight state summary.
type SimSnapshot struct {
	Tick         int
	Radius       float64
	TargetRadius float64
	Hearts       int
	Soldiers     []SoldierSnapshot
}

// SoldierSnapshot is a lightweight copy of a knight's state at a tick.
type SoldierSnapshot struct {
	Label     string
	X, Y      float64
	W, H      float64
	State     SoldierState
	Direction Direction
}

// Snapshot returns the current state of the attractor, player and knights.
func (ts *TestSim) Snapshot() SimSnapshot {
	w := ts.World
	snap := SimSnapshot{
		Tick:         w.Tick,
		Radius:       w.Attractor.Radius,
		TargetRadius: w.Attractor.TargetRadius,
		Hearts:       w.Player.Hearts,
	}
	for _, s := range w.Soldiers {
		snap.Soldiers = append(snap.Soldiers, SoldierSnapshot{
			Label:     s.label,
			X:         s.X,
			Y:         s.Y,
			W:         s.W,
			H:         s.H,
			State:     s.State,
			Direction: s.Direction,
		})
	}
	return snap
}
