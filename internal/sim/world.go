package sim

import (
	"fmt"
	"math"
	"slices"

	"github.com/Garsondee/void-magi/internal/geom"
	"github.com/Garsondee/void-magi/internal/narrative"
	"github.com/yohamta/donburi"
)

// World owns every entity of a session and steps them in a fixed order.
type World struct {
	Cfg    Config
	Tick   int
	Scroll float64

	Attractor *Attractor
	Player    *Player
	Obstacles []*Obstacle
	Soldiers  []*Soldier
	Orbs      []*Orb
	Zones     []*ShrinkZone

	Director  *Director
	Narrative *narrative.Presenter
	SimLog    *SimLog
	Stats     Stats

	bus    donburi.World
	broad  *Broadphase
	drag   dragState
	nextID int
}

// Stats counts what happened during a run.
type Stats struct {
	OrbsAbsorbed     int
	SoldiersAbsorbed int
	BoxesAbsorbed    int
	HeartsLost       int
	Launches         int
	Jumps            int
}

// NewWorld creates an empty world with the player and attractor at their
// starting positions. The narrative presenter is not ready until MarkReady
// is called on it.
func NewWorld(cfg Config, log *SimLog) *World {
	if log == nil {
		log = NewSimLog(false)
	}
	bus := donburi.NewWorld()
	w := &World{
		Cfg:       cfg,
		Attractor: NewAttractor(geom.Vec2{X: cfg.CanvasWidth * AttractorStartX, Y: AttractorStartY}, 0),
		Player: NewPlayer(cfg.CanvasWidth/2-PlayerWidth/2-5,
			cfg.CanvasHeight-PlayerHeight-playerStartLift),
		Director:  NewDirector(cfg),
		Narrative: narrative.NewPresenter(bus, cfg.Script, cfg.Font),
		SimLog:    log,
		bus:       bus,
		broad:     NewBroadphase(cfg.WorldWidth, cfg.CanvasHeight),
	}
	if cfg.SkipIntro {
		w.Narrative.SkipTo(cfg.KeysUnlockSequence)
		w.Attractor.Radius = IntroGrowth
		w.Attractor.TargetRadius = IntroGrowth
		w.Player.ShowWand = true
	}
	return w
}

// AddObstacle registers o with the world and its broadphase.
func (w *World) AddObstacle(o *Obstacle) {
	o.id = w.allocID()
	o.label = obstacleLabel(o.id)
	w.Obstacles = append(w.Obstacles, o)
	w.broad.Insert(o)
}

// AddSoldier registers s with the world.
func (w *World) AddSoldier(s *Soldier) {
	s.id = w.allocID()
	s.label = soldierLabel(s.id)
	w.Soldiers = append(w.Soldiers, s)
}

func (w *World) AddOrb(o *Orb) { w.Orbs = append(w.Orbs, o) }

func (w *World) AddZone(z *ShrinkZone) { w.Zones = append(w.Zones, z) }

func (w *World) allocID() int {
	id := w.nextID
	w.nextID++
	return id
}

// View is the visible window of the world.
func (w *World) View() View {
	return View{Left: w.Scroll, Width: w.Cfg.CanvasWidth, Floor: w.Cfg.Floor()}
}

// Dragging reports whether a launch gesture is in progress, and its vector.
func (w *World) Dragging() (bool, geom.Vec2) {
	return w.drag.active, w.drag.vector()
}

// Step advances the world by delta seconds. delta is clamped to
// [0, Cfg.MaxDelta].
func (w *World) Step(delta float64, in Input) {
	delta = clampDelta(delta, w.Cfg.MaxDelta)
	w.Tick++
	prev := w.snapshot()

	w.Player.tickTimers(delta)
	w.Director.Update(delta, w)
	for _, z := range w.Zones {
		z.Elapsed += delta
	}

	w.applyInput(delta, in)
	w.stepAttractor(delta)
	w.stepObstacles(delta)
	w.Player.Update(delta, w.Cfg.Floor(), w.Cfg.WorldWidth, w.broad)
	w.stepSoldiers(delta)
	w.stepOrbs(delta)

	w.Narrative.Track(w.Player.X)
	w.Narrative.Flush()
	for _, l := range w.Narrative.Letters() {
		l.Animate()
	}

	w.logChanges(prev)
}

func (w *World) applyInput(delta float64, in Input) {
	p := w.Player
	d := w.Director

	if d.AllowPointer {
		w.applyDrag(in)
	} else {
		w.drag = dragState{}
	}

	p.Vel.X *= PlayerDeceleration
	p.Running = false
	if !d.AllowKeys {
		return
	}
	half := w.Cfg.CanvasWidth / 2
	switch in.Move {
	case MoveRight:
		p.Running = true
		p.Facing = DirRight
		if p.X < half+ScrollBuffer+w.Scroll || w.Scroll > w.Cfg.MaxScroll {
			p.Vel.X = PlayerSpeed
		} else {
			w.Scroll += ScrollSpeed * delta
			p.X += ScrollSpeed * delta
		}
	case MoveLeft:
		p.Running = true
		p.Facing = DirLeft
		if p.X > half-ScrollBuffer+w.Scroll || (w.Scroll <= 0 && p.X > 0) {
			p.Vel.X = -PlayerSpeed
		} else if w.Scroll > 0 {
			w.Scroll = math.Max(0, w.Scroll-ScrollSpeed*delta)
			p.X -= ScrollSpeed * delta
		}
	}
	if in.Jump && p.Jump() {
		w.Stats.Jumps++
	}
	if in.Nudge {
		p.Vel.Y++
	}
}

func (w *World) applyDrag(in Input) {
	a := w.Attractor
	switch in.Drag {
	case DragBegin:
		w.drag = dragState{active: true, start: in.Point, cur: in.Point}
		a.Pointer.Visible = true
	case DragMove:
		if !w.drag.active {
			return
		}
		w.drag.cur = in.Point
		v := w.drag.vector()
		if v.Len() > 0 {
			a.Aim(math.Atan2(v.Y, v.X))
		}
	case DragRelease:
		if !w.drag.active {
			return
		}
		w.drag.cur = in.Point
		v := w.drag.vector()
		a.Launch(v)
		w.drag = dragState{}
		if v.Len() > 0 {
			w.Stats.Launches++
			w.SimLog.Add(w.Tick, "--", CatAttractor, "launch",
				fmt.Sprintf("v=(%.0f,%.0f)", a.Vel.X, a.Vel.Y), a.Vel.Len())
		}
	}
}

func (w *World) stepAttractor(delta float64) {
	a := w.Attractor
	side := a.Update(delta, w.View(), w.broad.Query(a.Bounds()), w.Zones)
	if side != geom.SideNone {
		w.SimLog.AddVerbose(w.Tick, "--", CatAttractor, "bounce", side.String(), 0)
	}

	if a.Magnetize(w.magnetizableLetters()) {
		narrative.RequestAdvance(w.bus, "letters consumed")
	}
	a.Magnetize(w.magnetizableBodies())

	w.Narrative.Flush()
	w.Narrative.DiscardConsumed()
}

func (w *World) magnetizableLetters() []Magnetizable {
	letters := w.Narrative.Letters()
	out := make([]Magnetizable, 0, len(letters))
	for _, l := range letters {
		if l.Magnetizable() {
			out = append(out, l)
		}
	}
	return out
}

func (w *World) magnetizableBodies() []Magnetizable {
	out := make([]Magnetizable, 0, len(w.Obstacles)+len(w.Soldiers))
	for _, o := range w.Obstacles {
		if o.Caps.Has(CapMagnetizable) {
			out = append(out, o)
		}
	}
	for _, s := range w.Soldiers {
		out = append(out, s)
	}
	return out
}

func (w *World) stepObstacles(delta float64) {
	floor := w.Cfg.Floor()
	for i := len(w.Obstacles) - 1; i >= 0; i-- {
		o := w.Obstacles[i]
		if o.Consumed() {
			w.broad.Remove(o)
			w.Obstacles = slices.Delete(w.Obstacles, i, i+1)
			w.Attractor.Grow(o.Mass)
			w.Stats.BoxesAbsorbed++
			w.SimLog.Add(w.Tick, o.label, CatObstacle, "absorbed",
				fmt.Sprintf("mass %.1f", o.Mass), o.Mass)
			continue
		}
		o.Update(delta, w.Attractor, floor, w.broad.Query(o.Rect))
		w.broad.Sync(o)
	}
}

func (w *World) stepSoldiers(delta float64) {
	env := soldierEnv{
		player:    w.Player,
		attractor: w.Attractor,
		floor:     w.Cfg.Floor(),
		broad:     w.broad,
		active:    w.Director.EnemiesActive,
	}
	for i := len(w.Soldiers) - 1; i >= 0; i-- {
		s := w.Soldiers[i]
		if s.Consumed() {
			w.Soldiers = slices.Delete(w.Soldiers, i, i+1)
			w.Attractor.Grow(s.Mass)
			w.Stats.SoldiersAbsorbed++
			w.SimLog.Add(w.Tick, s.label, CatSoldier, "absorbed",
				fmt.Sprintf("mass %.1f", s.Mass), s.Mass)
			continue
		}
		if s.Update(delta, env) {
			w.Stats.HeartsLost++
			w.SimLog.Add(w.Tick, s.label, CatPlayer, "heart_lost",
				fmt.Sprintf("%d left", w.Player.Hearts), float64(w.Player.Hearts))
		}
	}
}

func (w *World) stepOrbs(delta float64) {
	for i := len(w.Orbs) - 1; i >= 0; i-- {
		o := w.Orbs[i]
		o.Update(delta, w.Attractor)
		if !o.Absorbed() {
			continue
		}
		w.Orbs = slices.Delete(w.Orbs, i, i+1)
		w.Attractor.Grow(OrbGrowth)
		w.Stats.OrbsAbsorbed++
		w.SimLog.Add(w.Tick, "--", CatOrb, "absorbed",
			fmt.Sprintf("at (%.0f,%.0f)", o.Center.X, o.Center.Y), OrbGrowth)
	}
}

// The world is the director's stage.

func (w *World) advanceSequence(reason string) { narrative.RequestAdvance(w.bus, reason) }

func (w *World) growAttractor(amount float64) { w.Attractor.Grow(amount) }

func (w *World) revealWand() { w.Player.ShowWand = true }

func (w *World) sequence() int { return w.Narrative.CurrentSequence() }

func (w *World) playerDefeated() bool { return w.Player.Dead() }

// worldSnapshot is the state compared across a tick to log transitions.
type worldSnapshot struct {
	growing, shrinking bool
	phase              Phase
	sequence           int
	activated          int
	states             map[int]SoldierState
}

func (w *World) snapshot() worldSnapshot {
	s := worldSnapshot{
		growing:   w.Attractor.Growing,
		shrinking: w.Attractor.Shrinking,
		phase:     w.Director.Phase,
		sequence:  w.Narrative.CurrentSequence(),
		activated: activatedCount(w.Narrative.Checkpoints()),
		states:    make(map[int]SoldierState, len(w.Soldiers)),
	}
	for _, sd := range w.Soldiers {
		s.states[sd.id] = sd.State
	}
	return s
}

func activatedCount(cs narrative.Checkpoints) int {
	n := 0
	for _, cp := range cs {
		if cp.Activated {
			n++
		}
	}
	return n
}

func (w *World) logChanges(prev worldSnapshot) {
	tick := w.Tick
	a := w.Attractor

	if a.Growing && !prev.growing {
		w.SimLog.Add(tick, "--", CatAttractor, "grow_start",
			fmt.Sprintf("%.1f → %.1f", a.Radius, a.TargetRadius), a.TargetRadius)
	}
	if !a.Growing && prev.growing && !a.Shrinking {
		w.SimLog.Add(tick, "--", CatAttractor, "grow_end", fmt.Sprintf("r=%.1f", a.Radius), a.Radius)
	}
	if a.Shrinking && !prev.shrinking {
		w.SimLog.Add(tick, "--", CatAttractor, "shrink_start", fmt.Sprintf("r=%.1f", a.Radius), a.Radius)
	}
	if !a.Shrinking && prev.shrinking {
		w.SimLog.Add(tick, "--", CatAttractor, "shrink_end", fmt.Sprintf("r=%.1f", a.Radius), a.Radius)
	}
	w.SimLog.AddVerbose(tick, "--", CatAttractor, "radius", fmt.Sprintf("%.2f", a.Radius), a.Radius)

	if w.Director.Phase != prev.phase {
		w.SimLog.Add(tick, "--", CatDirector, "phase",
			fmt.Sprintf("%s → %s", prev.phase, w.Director.Phase), 0)
	}

	if seq := w.Narrative.CurrentSequence(); seq != prev.sequence {
		w.SimLog.Add(tick, "--", CatNarrative, "advance",
			fmt.Sprintf("%d → %d", prev.sequence, seq), float64(seq))
	}
	if n := activatedCount(w.Narrative.Checkpoints()); n > prev.activated {
		w.SimLog.Add(tick, "--", CatNarrative, "checkpoint",
			fmt.Sprintf("%d active at x=%.0f", n, w.Player.X), float64(n))
	}

	for _, s := range w.Soldiers {
		if was, ok := prev.states[s.id]; ok && was != s.State {
			w.SimLog.Add(tick, s.label, CatSoldier, "state_change",
				fmt.Sprintf("%s → %s", was, s.State), 0)
		}
		w.SimLog.AddVerbose(tick, s.label, CatSoldier, "position",
			fmt.Sprintf("(%.1f,%.1f)", s.X, s.Y), 0)
	}

	w.SimLog.AddVerbose(tick, "--", CatPlayer, "position",
		fmt.Sprintf("(%.1f,%.1f) scroll=%.0f", w.Player.X, w.Player.Y, w.Scroll), w.Player.X)
}
