package sim

import (
	"math"
	"testing"

	"github.com/Garsondee/void-magi/internal/geom"
	"github.com/Garsondee/void-magi/internal/narrative"
)

func TestOrbAbsorbedFeedsAttractor(t *testing.T) {
	ts := NewTestSim(
		WithAttractor(300, 300, 0),
		WithOrb(300, 300),
	)
	orb := ts.World.Orbs[0]

	ts.RunTicks(1)
	if orb.State != OrbStateShrink {
		t.Fatalf("orb state=%s, want shrink once caught", orb.State)
	}

	tick := ts.RunUntil(func(ts *TestSim) bool { return len(ts.World.Orbs) == 0 }, 100)
	if want := 1 + int(OrbRadius/OrbShrinkRate); tick != want {
		t.Fatalf("orb removed at tick %d, want %d", tick, want)
	}
	a := ts.World.Attractor
	if a.TargetRadius != OrbGrowth || !a.Growing {
		t.Fatalf("target=%.2f growing=%v, want %.2f and growing", a.TargetRadius, a.Growing, OrbGrowth)
	}
}

func TestOrbDriftsTowardAttractor(t *testing.T) {
	a := NewAttractor(geom.Vec2{X: 0, Y: 0}, 20)
	o := NewOrb(40, 0, OrbRadius)
	o.Update(DefaultDelta, a)

	step := math.Min(OrbStepCap, a.Radius*OrbPull/40)
	if math.Abs(o.Center.X-(40-step)) > 1e-9 {
		t.Fatalf("centre x=%.4f, want %.4f", o.Center.X, 40-step)
	}
	if geom.Dist(o.Pos, o.Center) > OrbWobble+1e-9 {
		t.Fatal("drawn position strays beyond the wobble amplitude")
	}

	far := NewOrb(500, 0, OrbRadius)
	far.Update(DefaultDelta, a)
	if far.Center.X != 500 {
		t.Fatalf("orb out of reach drifted to %.2f", far.Center.X)
	}
}

func TestAbsorbedBoxFeedsAttractor(t *testing.T) {
	ts := NewTestSim(
		WithAttractor(300, 300, 30),
		WithObstacle(280, 280, 40, 40, CapMagnetizable|CapCollidable),
	)
	tick := ts.RunUntil(func(ts *TestSim) bool { return len(ts.World.Obstacles) == 0 }, 100)
	if tick != 20 {
		t.Fatalf("box absorbed at tick %d, want 20", tick)
	}
	if got := ts.World.Attractor.TargetRadius; got != 30+ObstacleMass {
		t.Fatalf("target=%.2f, want %.2f", got, 30+ObstacleMass)
	}
	if len(ts.World.broad.Query(geom.Rect{X: 250, Y: 250, W: 100, H: 100})) != 0 {
		t.Fatal("absorbed box still indexed")
	}
}

func TestWallsAreNeverMagnetized(t *testing.T) {
	ts := NewTestSim(
		WithAttractor(300, 300, 30),
		WithObstacle(290, 290, 20, 20, CapCollidable),
	)
	ts.RunTicks(60)
	if len(ts.World.Obstacles) != 1 || ts.World.Obstacles[0].W != 20 {
		t.Fatal("a box without the magnetizable capability was consumed")
	}
}

func TestLooseBoxesFallAndStack(t *testing.T) {
	ts := NewTestSim(
		WithAttractor(624, 150, 0),
		WithPlayer(100, 490),
		WithObstacle(600, 100, 48, 48, capLooseBox), // within influence
		WithObstacle(1000, 300, 48, 48, capLooseBox),
		WithObstacle(1000, 200, 48, 48, capLooseBox),
	)
	ts.RunTicks(180)

	floor := ts.Cfg.Floor()
	held, lower, upper := ts.World.Obstacles[0], ts.World.Obstacles[1], ts.World.Obstacles[2]
	if held.Y != 100 || !held.UnderInfluence {
		t.Fatalf("box near the void should hang: y=%.2f influence=%v", held.Y, held.UnderInfluence)
	}
	if lower.Y != floor-48 {
		t.Fatalf("lower box y=%.2f, want %.2f", lower.Y, floor-48)
	}
	if upper.Y != floor-96 {
		t.Fatalf("upper box y=%.2f, want stacked at %.2f", upper.Y, floor-96)
	}
}

func TestPlayerLandsOnWall(t *testing.T) {
	floor := DefaultConfig().Floor()
	ts := NewTestSim(
		WithAttractor(900, 100, 0),
		WithObstacle(600, floor-48, 48, 48, capWall),
		WithPlayer(600, 300),
	)
	ts.RunTicks(60)
	p := ts.World.Player
	if p.Y != floor-48-PlayerHeight {
		t.Fatalf("player y=%.2f, want standing on the box at %.2f", p.Y, floor-48-PlayerHeight)
	}
	if p.JumpCount != 0 {
		t.Fatalf("landing should reset jumps, got %d", p.JumpCount)
	}
}

func TestPlayerBlockedByWall(t *testing.T) {
	floor := DefaultConfig().Floor()
	ts := NewTestSim(
		WithAttractor(900, 100, 0),
		WithObstacle(300, floor-96, 48, 96, capWall),
		WithPlayer(200, floor-PlayerHeight),
	)
	ts.Input = Input{Move: MoveRight}
	ts.RunTicks(60)
	p := ts.World.Player
	if p.Right() > 300+1e-9 {
		t.Fatalf("player walked into the wall: right edge %.2f", p.Right())
	}
}

func TestDoubleJumpOnly(t *testing.T) {
	p := NewPlayer(0, 0)
	if !p.Jump() || !p.Jump() {
		t.Fatal("two jumps should be allowed")
	}
	if p.Jump() {
		t.Fatal("third jump allowed")
	}
	if p.Vel.Y != -PlayerJumpPower {
		t.Fatalf("vy=%.1f", p.Vel.Y)
	}
}

func TestLoseHeartIgnoredWhileInvincible(t *testing.T) {
	p := NewPlayer(0, 0)
	if !p.LoseHeart() || p.LoseHeart() {
		t.Fatal("second hit inside the invincibility window should be ignored")
	}
	p.tickTimers(InvincibleSeconds)
	if p.Invincible() || !p.LoseHeart() {
		t.Fatal("hit after the window should count")
	}
	if p.Hearts != PlayerHearts-2 {
		t.Fatalf("hearts=%d", p.Hearts)
	}
}

func TestStepClampsDelta(t *testing.T) {
	ts := NewTestSim(WithAttractor(900, 100, 0), WithPlayer(100, 100))
	p := ts.World.Player

	ts.World.Step(5, Input{})
	want := Gravity * ts.Cfg.MaxDelta
	if math.Abs(p.Vel.Y-want) > 1e-9 {
		t.Fatalf("vy=%.2f after a 5s frame, want %.2f", p.Vel.Y, want)
	}

	y := p.Y
	ts.World.Step(-1, Input{})
	if p.Y != y {
		t.Fatal("negative delta moved the player")
	}
}

func TestWalkingPastCentreScrolls(t *testing.T) {
	ts := NewTestSim(WithAttractor(900, 100, 0), WithPlayer(600, 490))
	p := ts.World.Player
	ts.Step(Input{Move: MoveRight})

	shift := ScrollSpeed * DefaultDelta
	if math.Abs(ts.World.Scroll-shift) > 1e-9 {
		t.Fatalf("scroll=%.3f, want %.3f", ts.World.Scroll, shift)
	}
	if math.Abs(p.X-(600+shift)) > 1e-9 {
		t.Fatalf("player x=%.3f, want %.3f", p.X, 600+shift)
	}
}

func TestDragLaunchesAttractor(t *testing.T) {
	ts := NewTestSim(WithAttractor(512, 300, 23))
	a := ts.World.Attractor

	ts.Step(Input{Drag: DragBegin, Point: geom.Vec2{X: 100, Y: 100}})
	if dragging, _ := ts.World.Dragging(); !dragging || !a.Pointer.Visible {
		t.Fatal("drag did not begin")
	}
	ts.Step(Input{Drag: DragMove, Point: geom.Vec2{X: 140, Y: 130}})
	if math.Abs(a.Pointer.Angle-math.Atan2(30, 40)) > 1e-9 {
		t.Fatalf("pointer angle=%.4f", a.Pointer.Angle)
	}
	ts.Step(Input{Drag: DragRelease, Point: geom.Vec2{X: 140, Y: 130}})

	if math.Abs(a.Vel.X+40) > 1e-9 || math.Abs(a.Vel.Y+30) > 1e-9 {
		t.Fatalf("vel=%+v, want (-40,-30)", a.Vel)
	}
	if ts.World.Stats.Launches != 1 || !ts.SimLog.HasEntry(CatAttractor, "launch", "") {
		t.Fatal("launch not recorded")
	}
}

func TestDragIgnoredBeforePointerUnlocked(t *testing.T) {
	ts := NewTestSim(WithIntro(), WithAttractor(512, 300, 23))
	ts.Step(Input{Drag: DragBegin, Point: geom.Vec2{X: 100, Y: 100}})
	ts.Step(Input{Drag: DragRelease, Point: geom.Vec2{X: 200, Y: 100}})
	if ts.World.Attractor.Vel != (geom.Vec2{}) {
		t.Fatalf("attractor launched during the intro: %+v", ts.World.Attractor.Vel)
	}
}

func sequenceScript(checkpoints ...narrative.Checkpoint) narrative.Script {
	// Letters land centred on (300, 300).
	return narrative.Script{
		Sequences: []narrative.SequenceText{
			{Text: "AB", X: 290, Y: 313},
			{Text: "CD", X: 290, Y: 313},
		},
		Checkpoints: checkpoints,
	}
}

func TestConsumedLettersAdvanceTheStory(t *testing.T) {
	ts := NewTestSim(
		WithUnlockSequence(0),
		WithScript(sequenceScript()),
		WithAttractor(300, 300, 30),
		WithPlayer(900, 490),
	)
	n := ts.World.Narrative

	tick := ts.RunUntil(func(ts *TestSim) bool { return n.CurrentSequence() == 1 }, 100)
	if tick != 10 {
		t.Fatalf("first sequence consumed at tick %d, want 10", tick)
	}
	if len(n.Letters()) != 2 || n.Letters()[0].Char != 'C' {
		t.Fatal("second sequence not shown")
	}

	ts.RunTicks(100)
	if n.CurrentSequence() != 2 || n.Advances() != 2 {
		t.Fatalf("sequence=%d advances=%d, want 2 and 2", n.CurrentSequence(), n.Advances())
	}
	if len(n.Letters()) != 0 {
		t.Fatal("letters shown past the last sequence")
	}
	if got := ts.SimLog.CountCategory(CatNarrative, "advance"); got != 2 {
		t.Fatalf("logged %d advances, want 2\n%s", got, ts.SimLog.Format())
	}
}

func TestDistantCheckpointTextBlocksAdvance(t *testing.T) {
	ts := NewTestSim(
		WithUnlockSequence(0),
		WithScript(sequenceScript(narrative.Checkpoint{Text: "Z", X: 2000, Y: 100, Magnetize: true})),
		WithAttractor(300, 300, 30),
		WithPlayer(900, 490),
	)
	ts.RunTicks(100)
	if got := ts.World.Narrative.CurrentSequence(); got != 0 {
		t.Fatalf("sequence advanced to %d with checkpoint text still on screen", got)
	}
	if !ts.SimLog.HasEntry(CatNarrative, "checkpoint", "") {
		t.Fatal("checkpoint activation not logged")
	}
}

func TestConsumedCheckpointTextIsDiscarded(t *testing.T) {
	ts := NewTestSim(
		WithUnlockSequence(0),
		WithScript(sequenceScript(narrative.Checkpoint{Text: "Z", X: 300, Y: 313, Magnetize: true})),
		WithAttractor(300, 300, 30),
		WithPlayer(900, 490),
	)
	n := ts.World.Narrative
	tick := ts.RunUntil(func(ts *TestSim) bool { return n.CurrentSequence() == 1 }, 100)
	// The checkpoint text appears after the first tick and needs ten frames
	// to be swallowed; the sequence completes on the frame after it is gone.
	if tick != 12 {
		t.Fatalf("advanced at tick %d, want 12", tick)
	}
}

func TestTextWaitsForFont(t *testing.T) {
	ts := NewTestSim(
		WithFontPending(),
		WithUnlockSequence(0),
		WithScript(sequenceScript(narrative.Checkpoint{Text: "Z", X: 2000, Y: 100})),
		WithAttractor(300, 300, 30),
	)
	n := ts.World.Narrative
	ts.RunTicks(30)
	if len(n.Letters()) != 0 || n.CurrentSequence() != 0 {
		t.Fatal("letters shown before the font is ready")
	}

	n.MarkReady()
	if len(n.Letters()) != 3 {
		t.Fatalf("got %d letters after ready, want sequence plus deferred checkpoint", len(n.Letters()))
	}
}
