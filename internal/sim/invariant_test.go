package sim

import (
	"math"
	"strings"
	"testing"
)

// checkHeartSpacing verifies that no two hits land inside one invincibility
// window.
func checkHeartSpacing(t *testing.T, ts *TestSim) {
	t.Helper()
	hits := ts.SimLog.Filter(CatPlayer, "heart_lost")
	minGap := int(math.Floor(InvincibleSeconds/ts.Delta)) - 1
	for i := 1; i < len(hits); i++ {
		if gap := hits[i].Tick - hits[i-1].Tick; gap < minGap {
			t.Errorf("hits at T=%d and T=%d are %d ticks apart, want at least %d",
				hits[i-1].Tick, hits[i].Tick, gap, minGap)
		}
	}
}

// runLevelChecked steps the shipped level with input, checking per-tick
// invariants.
func runLevelChecked(t *testing.T, ts *TestSim, ticks int) {
	t.Helper()
	w := ts.World
	prevRadius := w.Attractor.Radius
	for i := 0; i < ticks; i++ {
		ts.RunTicks(1)
		a := w.Attractor
		if a.Radius < 0 {
			t.Fatalf("T=%d: negative radius %.3f", w.Tick, a.Radius)
		}
		if step := math.Abs(a.Radius - prevRadius); step > AttractorGrowthRate+1e-6 {
			t.Fatalf("T=%d: radius jumped by %.3f", w.Tick, step)
		}
		if a.Radius > prevRadius && a.Radius > a.TargetRadius+1e-9 {
			t.Fatalf("T=%d: grew past target (%.3f > %.3f)", w.Tick, a.Radius, a.TargetRadius)
		}
		prevRadius = a.Radius

		p := w.Player
		if p.X < 0 || p.Right() > ts.Cfg.WorldWidth+1e-9 {
			t.Fatalf("T=%d: player outside the world at x=%.2f", w.Tick, p.X)
		}
		if p.Bottom() > ts.Cfg.Floor()+1e-9 {
			t.Fatalf("T=%d: player below the floor", w.Tick)
		}
		if p.Hearts < 0 {
			t.Fatalf("T=%d: hearts=%d", w.Tick, p.Hearts)
		}
		for _, s := range w.Soldiers {
			if s.Bottom() > ts.Cfg.Floor()+1e-9 {
				t.Fatalf("T=%d: knight %s below the floor", w.Tick, s.label)
			}
		}
	}
}

func TestLevelWalkRightInvariants(t *testing.T) {
	ts := NewTestSim(WithLevel())
	ts.Input = Input{Move: MoveRight}
	runLevelChecked(t, ts, 1500)
	checkHeartSpacing(t, ts)

	if ts.World.Player.X < 1000 {
		t.Fatalf("player made no progress: x=%.0f", ts.World.Player.X)
	}
	if ts.World.Scroll <= 0 {
		t.Fatal("view never scrolled")
	}
	t.Log(ts.SimLog.Summary(ts.World))
}

func TestLevelIntroInvariants(t *testing.T) {
	cfg := DefaultConfig()
	ts := NewTestSim(WithIntro(), WithScript(cfg.Script), WithLevel())
	runLevelChecked(t, ts, 900)

	if ts.World.Director.Phase != PhasePlaying {
		t.Fatalf("phase=%s after the intro", ts.World.Director.Phase)
	}
	for _, s := range ts.World.Soldiers {
		if s.State != SoldierStateWalk {
			t.Fatalf("knight %s attacked while the story was locked", s.label)
		}
	}
}

func TestLevelContents(t *testing.T) {
	ts := NewTestSim(WithLevel())
	w := ts.World
	if len(w.Soldiers) != 5 {
		t.Fatalf("knights=%d, want 5", len(w.Soldiers))
	}
	if len(w.Zones) != 1 {
		t.Fatalf("zones=%d, want 1", len(w.Zones))
	}
	if len(w.Orbs) < 50 || len(w.Obstacles) < 100 {
		t.Fatalf("orbs=%d boxes=%d, level looks empty", len(w.Orbs), len(w.Obstacles))
	}
	for _, o := range w.Obstacles {
		if !strings.HasPrefix(o.Label(), "O") {
			t.Fatalf("obstacle label %q", o.Label())
		}
	}
}
