package sim

import (
	"testing"

	"github.com/Garsondee/void-magi/internal/narrative"
)

func TestIntroRunsToFreePlay(t *testing.T) {
	ts := NewTestSim(
		WithIntro(),
		WithScript(narrative.DefaultScript()),
		WithAttractor(512, 150, 0),
		WithPlayer(100, 490),
	)
	d := ts.World.Director
	if d.Phase != PhaseDark || d.Overlay != 1 {
		t.Fatalf("phase=%s overlay=%.2f, want dark and covered", d.Phase, d.Overlay)
	}

	if ts.RunUntil(func(ts *TestSim) bool { return d.Phase == PhaseFadeIn }, 200) == -1 {
		t.Fatal("never started fading in")
	}
	if ts.RunUntil(func(ts *TestSim) bool { return d.Phase == PhaseIntro }, 200) == -1 {
		t.Fatal("fade-in never finished")
	}
	if d.Overlay > 1e-6 {
		t.Fatalf("overlay=%.4f after fade-in", d.Overlay)
	}
	if d.AllowPointer || d.AllowKeys {
		t.Fatal("controls unlocked before the opening lines")
	}

	if ts.RunUntil(func(ts *TestSim) bool { return d.Phase == PhasePlaying }, 1200) == -1 {
		t.Fatalf("intro never finished\n%s", ts.SimLog.Format())
	}
	w := ts.World
	if got := w.Narrative.CurrentSequence(); got != 3 {
		t.Fatalf("sequence=%d after the intro, want 3", got)
	}
	if w.Attractor.TargetRadius != IntroGrowth {
		t.Fatalf("target=%.1f, want %.1f", w.Attractor.TargetRadius, IntroGrowth)
	}
	if !w.Player.ShowWand || !d.AllowPointer || !d.HintVisible {
		t.Fatalf("wand=%v pointer=%v hint=%v", w.Player.ShowWand, d.AllowPointer, d.HintVisible)
	}
	if d.EnemiesActive {
		t.Fatal("knights active before the unlock sequence")
	}
	if ts.SimLog.CountCategory(CatDirector, "phase") != 3 {
		t.Fatalf("phase changes not logged\n%s", ts.SimLog.Format())
	}

	w.advanceSequence("test")
	ts.RunTicks(2)
	if !d.EnemiesActive || d.HintVisible {
		t.Fatalf("enemies=%v hint=%v at sequence %d", d.EnemiesActive, d.HintVisible, w.Narrative.CurrentSequence())
	}
}

func TestGameOverFadesOut(t *testing.T) {
	ts := NewTestSim(WithAttractor(900, 100, 0))
	w := ts.World
	w.Player.Hearts = 0

	ts.RunTicks(1)
	d := w.Director
	if d.Phase != PhaseGameOver {
		t.Fatalf("phase=%s, want game_over", d.Phase)
	}
	if d.AllowKeys || d.AllowPointer {
		t.Fatal("controls stay enabled after game over")
	}

	ts.RunTicks(90)
	if d.Overlay < 1-1e-6 {
		t.Fatalf("overlay=%.3f, want fully faded", d.Overlay)
	}
	if r := DetermineOutcome(w); r.Outcome != OutcomeGameOver {
		t.Fatalf("outcome=%s", r.Outcome)
	}
}
