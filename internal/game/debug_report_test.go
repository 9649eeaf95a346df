package game

import (
	"strings"
	"testing"

	"github.com/Garsondee/void-magi/internal/sim"
)

func newReportWorld(t *testing.T) *sim.World {
	t.Helper()
	cfg := sim.DefaultConfig()
	cfg.SkipIntro = true
	w := sim.NewWorld(cfg, sim.NewSimLog(false))
	sim.BuildLevel(w)
	w.Narrative.MarkReady()
	return w
}

func TestDebugReportBeforeAnyTicks(t *testing.T) {
	w := newReportWorld(t)
	report := buildDebugReport(w, sim.NewSimReporter(0), reportLogTicks)

	for _, want := range []string{
		"--- Void Magi debug report ---",
		"outcome=in_progress",
		"--- Summary at T=000 ---",
		"No data collected yet.",
		"== log T=0..0 ==",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}

func TestDebugReportIncludesRecentLog(t *testing.T) {
	w := newReportWorld(t)
	r := sim.NewSimReporter(0)
	w.SimLog.Add(0, "K1", sim.CatSoldier, "state_change", "walk → attack", 0)
	for range reportInterval {
		w.Step(1.0/60, sim.Input{})
	}
	r.Collect(w)

	report := buildDebugReport(w, r, reportLogTicks)
	if !strings.Contains(report, "=== Run Report") {
		t.Fatalf("report should include the window summary:\n%s", report)
	}
	if !strings.Contains(report, "state_change") {
		t.Fatalf("report should include log entries in range:\n%s", report)
	}
}
