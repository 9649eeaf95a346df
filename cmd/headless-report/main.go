package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/Garsondee/void-magi/internal/narrative"
	"github.com/Garsondee/void-magi/internal/sim"
)

const reportEvery = 60

type runStats struct {
	runIndex int
	seed     int64

	outcome   sim.OutcomeReason
	finalTick int
	maxX      float64

	firstGrowTick   int
	firstKnightTick int
	firstHitTick    int
	firstShrinkTick int

	launches      int
	stateChanges  int
	storyAdvances int
	checkpoints   int
	stats         sim.Stats
	absorbed      map[string]struct{}

	windowSummary *sim.WindowReport
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var scenario string
	var withIntro bool

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "autopilot", "scenario name (autopilot, idle)")
	flag.BoolVar(&withIntro, "intro", false, "play the opening before free play")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if scenario != "autopilot" && scenario != "idle" {
		fmt.Printf("error: unsupported scenario %q (supported: autopilot, idle)\n", scenario)
		return
	}

	fmt.Printf("=== Headless Run Report ===\n")
	fmt.Printf("scenario=%s runs=%d ticks=%d seed_base=%d seed_step=%d intro=%v\n\n", scenario, runs, ticks, seedBase, seedStep, withIntro)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runScenario(i+1, seed, ticks, scenario == "autopilot", withIntro)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func newRunSim(withIntro bool) *sim.TestSim {
	opts := []sim.SimOption{sim.WithScript(narrative.DefaultScript()), sim.WithLevel()}
	if withIntro {
		opts = append(opts, sim.WithIntro())
	}
	return sim.NewTestSim(opts...)
}

func runScenario(runIndex int, seed int64, ticks int, walk, withIntro bool) runStats {
	ts := newRunSim(withIntro)
	ap := newAutopilot(seed, walk)
	reporter := sim.NewSimReporter(0)

	maxX := ts.World.Player.X
	for i := 0; i < ticks; i++ {
		ts.Step(ap.Next(ts.World))
		maxX = max(maxX, ts.World.Player.X)
		if ts.World.Tick%reportEvery == 0 {
			reporter.Collect(ts.World)
		}
		if sim.DetermineOutcome(ts.World).Outcome != sim.OutcomeInProgress {
			break
		}
	}
	reporter.Collect(ts.World)

	entries := ts.SimLog.Entries()
	absorbed := map[string]struct{}{}
	for _, e := range entries {
		if e.Key == "absorbed" && e.Entity != "--" {
			absorbed[e.Entity] = struct{}{}
		}
	}

	return runStats{
		runIndex:        runIndex,
		seed:            seed,
		outcome:         sim.DetermineOutcome(ts.World),
		finalTick:       ts.World.Tick,
		maxX:            maxX,
		firstGrowTick:   firstTick(entries, sim.CatAttractor, "grow_start", ""),
		firstKnightTick: firstTick(entries, sim.CatSoldier, "absorbed", ""),
		firstHitTick:    firstTick(entries, sim.CatPlayer, "heart_lost", ""),
		firstShrinkTick: firstTick(entries, sim.CatAttractor, "shrink_start", ""),
		launches:        ts.SimLog.CountCategory(sim.CatAttractor, "launch"),
		stateChanges:    ts.SimLog.CountCategory(sim.CatSoldier, "state_change"),
		storyAdvances:   ts.SimLog.CountCategory(sim.CatNarrative, "advance"),
		checkpoints:     ts.SimLog.CountCategory(sim.CatNarrative, "checkpoint"),
		stats:           ts.World.Stats,
		absorbed:        absorbed,
		windowSummary:   reporter.WindowSummary(),
	}
}

func firstTick(entries []sim.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome=%s ticks=%d max_x=%.0f (%s)\n", rs.outcome.Outcome, rs.finalTick, rs.maxX, rs.outcome.Description)
	fmt.Printf("phase_markers: first_grow=%d first_shrink=%d first_knight=%d first_hit=%d\n",
		rs.firstGrowTick, rs.firstShrinkTick, rs.firstKnightTick, rs.firstHitTick)
	fmt.Printf("event_totals: launch=%d state_change=%d story_advance=%d checkpoint=%d\n",
		rs.launches, rs.stateChanges, rs.storyAdvances, rs.checkpoints)
	fmt.Printf("absorbed: orbs=%d knights=%d boxes=%d hearts_lost=%d jumps=%d\n",
		rs.stats.OrbsAbsorbed, rs.stats.SoldiersAbsorbed, rs.stats.BoxesAbsorbed, rs.stats.HeartsLost, rs.stats.Jumps)
	fmt.Printf("absorbed_labels: %s\n", joinSet(rs.absorbed))
	if rs.windowSummary != nil {
		fmt.Print(rs.windowSummary.Format())
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	outcomes := map[sim.Outcome]int{}
	totals := sim.Stats{}
	growTicks := make([]int, 0, len(all))
	knightTicks := make([]int, 0, len(all))
	hitTicks := make([]int, 0, len(all))
	labels := map[string]struct{}{}
	maxX := 0.0

	for _, rs := range all {
		outcomes[rs.outcome.Outcome]++
		totals.OrbsAbsorbed += rs.stats.OrbsAbsorbed
		totals.SoldiersAbsorbed += rs.stats.SoldiersAbsorbed
		totals.BoxesAbsorbed += rs.stats.BoxesAbsorbed
		totals.HeartsLost += rs.stats.HeartsLost
		totals.Launches += rs.stats.Launches
		maxX += rs.maxX
		if rs.firstGrowTick >= 0 {
			growTicks = append(growTicks, rs.firstGrowTick)
		}
		if rs.firstKnightTick >= 0 {
			knightTicks = append(knightTicks, rs.firstKnightTick)
		}
		if rs.firstHitTick >= 0 {
			hitTicks = append(hitTicks, rs.firstHitTick)
		}
		for l := range rs.absorbed {
			labels[l] = struct{}{}
		}
	}

	n := len(all)
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d cleared=%d game_over=%d in_progress=%d\n",
		n, outcomes[sim.OutcomeCleared], outcomes[sim.OutcomeGameOver], outcomes[sim.OutcomeInProgress])
	fmt.Printf("avg_per_run: orbs=%.1f knights=%.1f boxes=%.1f hearts_lost=%.1f launches=%.1f max_x=%.0f\n",
		avg(totals.OrbsAbsorbed, n), avg(totals.SoldiersAbsorbed, n), avg(totals.BoxesAbsorbed, n),
		avg(totals.HeartsLost, n), avg(totals.Launches, n), maxX/float64(max(n, 1)))
	fmt.Printf("phase_marker_avg_ticks: first_grow=%s first_knight=%s first_hit=%s\n",
		avgTickString(growTicks), avgTickString(knightTicks), avgTickString(hitTicks))
	fmt.Printf("unique_absorbed_labels=%d\n", len(labels))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinSet(set map[string]struct{}) string {
	if len(set) == 0 {
		return "-"
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return strings.Join(out, ",")
}
