package sim

import (
	"fmt"
	"strings"
)

// reportWindowTicks is the default sliding window for recent-behaviour reports (~10s at 60TPS).
const reportWindowTicks = 600

// WorldReport is a snapshot of the world at one tick.
type WorldReport struct {
	Tick         int
	Radius       float64
	TargetRadius float64
	Growing      bool
	Shrinking    bool

	PlayerX float64
	Scroll  float64
	Hearts  int

	SoldiersWalking   int
	SoldiersAttacking int
	SoldiersFrozen    int
	Orbs              int
	Obstacles         int

	Sequence int
	Phase    Phase
	Stats    Stats
}

// SimReporter collects periodic reports from the world and can produce
// summaries over sliding time windows.
type SimReporter struct {
	history     []WorldReport
	windowTicks int
}

// NewSimReporter creates a reporter with the given window size.
func NewSimReporter(windowTicks int) *SimReporter {
	if windowTicks <= 0 {
		windowTicks = reportWindowTicks
	}
	return &SimReporter{windowTicks: windowTicks}
}

// Collect gathers a snapshot from the current world state.
// Call this periodically (e.g. every 60 ticks / 1s).
func (r *SimReporter) Collect(w *World) {
	rpt := WorldReport{
		Tick:         w.Tick,
		Radius:       w.Attractor.Radius,
		TargetRadius: w.Attractor.TargetRadius,
		Growing:      w.Attractor.Growing,
		Shrinking:    w.Attractor.Shrinking,
		PlayerX:      w.Player.X,
		Scroll:       w.Scroll,
		Hearts:       w.Player.Hearts,
		Orbs:         len(w.Orbs),
		Obstacles:    len(w.Obstacles),
		Sequence:     w.Narrative.CurrentSequence(),
		Phase:        w.Director.Phase,
		Stats:        w.Stats,
	}
	for _, s := range w.Soldiers {
		if s.State == SoldierStateAttack {
			rpt.SoldiersAttacking++
		} else {
			rpt.SoldiersWalking++
		}
		if s.Frozen {
			rpt.SoldiersFrozen++
		}
	}
	r.history = append(r.history, rpt)
}

// Latest returns the most recent report, or nil if none collected yet.
func (r *SimReporter) Latest() *WorldReport {
	if len(r.history) == 0 {
		return nil
	}
	return &r.history[len(r.history)-1]
}

// History returns all collected reports.
func (r *SimReporter) History() []WorldReport {
	return r.history
}

// WindowSummary returns an aggregated summary over the recent time window.
func (r *SimReporter) WindowSummary() *WindowReport {
	latest := r.Latest()
	if latest == nil {
		return nil
	}
	from := latest.Tick - r.windowTicks
	var window []WorldReport
	for _, rpt := range r.history {
		if rpt.Tick > from {
			window = append(window, rpt)
		}
	}
	first := window[0]
	wr := &WindowReport{
		FromTick:    first.Tick,
		ToTick:      latest.Tick,
		SampleCount: len(window),
		RadiusFrom:  first.Radius,
		RadiusTo:    latest.Radius,
		MinHearts:   first.Hearts,
		ProgressX:   latest.PlayerX - first.PlayerX,
	}
	n := float64(len(window))
	for _, rpt := range window {
		wr.AvgAttacking += float64(rpt.SoldiersAttacking)
		wr.AvgFrozen += float64(rpt.SoldiersFrozen)
		if rpt.Growing {
			wr.GrowingPct++
		}
		if rpt.Shrinking {
			wr.ShrinkingPct++
		}
		wr.MinHearts = min(wr.MinHearts, rpt.Hearts)
	}
	wr.AvgAttacking /= n
	wr.AvgFrozen /= n
	wr.GrowingPct = wr.GrowingPct / n * 100
	wr.ShrinkingPct = wr.ShrinkingPct / n * 100
	wr.OrbsAbsorbed = latest.Stats.OrbsAbsorbed - first.Stats.OrbsAbsorbed
	wr.SoldiersAbsorbed = latest.Stats.SoldiersAbsorbed - first.Stats.SoldiersAbsorbed
	wr.BoxesAbsorbed = latest.Stats.BoxesAbsorbed - first.Stats.BoxesAbsorbed
	wr.HeartsLost = latest.Stats.HeartsLost - first.Stats.HeartsLost
	return wr
}

// WindowReport is an aggregated summary over a time window.
type WindowReport struct {
	FromTick, ToTick int
	SampleCount      int

	RadiusFrom, RadiusTo float64
	GrowingPct           float64
	ShrinkingPct         float64
	AvgAttacking         float64
	AvgFrozen            float64
	MinHearts            int
	ProgressX            float64

	OrbsAbsorbed     int
	SoldiersAbsorbed int
	BoxesAbsorbed    int
	HeartsLost       int
}

// Format returns a human-readable multi-line string of the window summary.
func (wr *WindowReport) Format() string {
	if wr == nil {
		return "No data collected yet.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Run Report (T=%d..%d, %d samples) ===\n",
		wr.FromTick, wr.ToTick, wr.SampleCount)
	fmt.Fprintf(&sb, "  void radius       %6.1f → %.1f\n", wr.RadiusFrom, wr.RadiusTo)
	fmt.Fprintf(&sb, "  growing           %5.1f%%\n", wr.GrowingPct)
	fmt.Fprintf(&sb, "  shrinking         %5.1f%%\n", wr.ShrinkingPct)
	fmt.Fprintf(&sb, "  knights attacking %6.2f avg\n", wr.AvgAttacking)
	fmt.Fprintf(&sb, "  knights held      %6.2f avg\n", wr.AvgFrozen)
	fmt.Fprintf(&sb, "  progress          %6.0fpx\n", wr.ProgressX)
	fmt.Fprintf(&sb, "  absorbed          orbs=%d knights=%d boxes=%d\n",
		wr.OrbsAbsorbed, wr.SoldiersAbsorbed, wr.BoxesAbsorbed)
	fmt.Fprintf(&sb, "  hearts            min=%d lost=%d\n", wr.MinHearts, wr.HeartsLost)
	return sb.String()
}

// FormatLatest returns a concise snapshot of the most recent collected report.
func (r *SimReporter) FormatLatest() string {
	rpt := r.Latest()
	if rpt == nil {
		return "No data.\n"
	}
	return fmt.Sprintf("[T=%d] %s seq=%d r=%.1f/%.1f x=%.0f hearts=%d knights=%d/%d orbs=%d boxes=%d\n",
		rpt.Tick, rpt.Phase, rpt.Sequence, rpt.Radius, rpt.TargetRadius, rpt.PlayerX, rpt.Hearts,
		rpt.SoldiersAttacking, rpt.SoldiersWalking+rpt.SoldiersAttacking, rpt.Orbs, rpt.Obstacles)
}
