package sim

import (
	"strings"
	"testing"
)

func TestReporterWindow(t *testing.T) {
	ts := NewTestSim(
		WithAttractor(300, 300, 0),
		WithOrb(300, 300),
		WithOrb(310, 300),
	)
	r := NewSimReporter(120)
	if r.WindowSummary() != nil {
		t.Fatal("summary before any sample")
	}
	for i := 0; i < 10; i++ {
		ts.RunTicks(30)
		r.Collect(ts.World)
	}

	latest := r.Latest()
	if latest == nil || latest.Tick != 300 {
		t.Fatalf("latest=%+v", latest)
	}
	if latest.Stats.OrbsAbsorbed != 2 || latest.Orbs != 0 {
		t.Fatalf("orbs absorbed=%d left=%d", latest.Stats.OrbsAbsorbed, latest.Orbs)
	}

	wr := r.WindowSummary()
	if wr.SampleCount != 4 {
		t.Fatalf("samples=%d, want 4 within a 120-tick window", wr.SampleCount)
	}
	out := wr.Format()
	for _, want := range []string{"Run Report", "void radius", "hearts"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(r.FormatLatest(), "T=300") {
		t.Fatalf("latest line: %s", r.FormatLatest())
	}
}

func TestOutcomeCleared(t *testing.T) {
	ts := NewTestSim(
		WithAttractor(300, 300, 30),
		WithPlayer(900, 490),
		WithSoldier(600, groundY(1), DirLeft, 0, 1),
	)
	if got := DetermineOutcome(ts.World).Outcome; got != OutcomeInProgress {
		t.Fatalf("outcome=%s before anything happened", got)
	}
	s := ts.World.Soldiers[0]
	s.W, s.H = 1, 1
	ts.RunTicks(1)
	r := DetermineOutcome(ts.World)
	if r.Outcome != OutcomeCleared || r.SoldiersAbsorbed != 1 {
		t.Fatalf("outcome=%s absorbed=%d", r.Outcome, r.SoldiersAbsorbed)
	}
}
