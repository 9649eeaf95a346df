package game

import (
	"fmt"
	"strings"

	"github.com/Garsondee/void-magi/internal/sim"
)

// reportLogTicks is how far back the copied report reaches into the sim log.
const reportLogTicks = 300

// debugReport builds the text copied to the clipboard: a world summary, the
// reporter's recent window, and the tail of the sim log.
func (g *Game) debugReport() string {
	return buildDebugReport(g.world, g.reporter, reportLogTicks)
}

func buildDebugReport(w *sim.World, r *sim.SimReporter, lastTicks int) string {
	toTick := w.Tick
	fromTick := max(toTick-lastTicks+1, 0)

	var b strings.Builder
	fmt.Fprintf(&b, "--- Void Magi debug report ---\n")
	fmt.Fprintf(&b, "tick=%d phase=%s outcome=%s\n\n", w.Tick, w.Director.Phase, sim.DetermineOutcome(w).Outcome)

	b.WriteString(w.SimLog.Summary(w))
	b.WriteByte('\n')

	if r != nil {
		b.WriteString(r.WindowSummary().Format())
		b.WriteString(r.FormatLatest())
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "== log T=%d..%d ==\n", fromTick, toTick)
	entries := w.SimLog.FilterTickRange(fromTick, toTick)
	if len(entries) == 0 {
		b.WriteString("(no events)\n")
	}
	for _, e := range entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
