package sim

import (
	"fmt"
	"strings"
)

// Log categories.
const (
	CatAttractor = "void"
	CatSoldier   = "knight"
	CatPlayer    = "player"
	CatOrb       = "orb"
	CatObstacle  = "box"
	CatNarrative = "story"
	CatDirector  = "director"
)

// SimLogEntry is one recorded event of a simulation run.
type SimLogEntry struct {
	Tick     int
	Entity   string  // label e.g. "K2", "O14", or "--" for global events
	Category string  // void, knight, player, orb, box, story, director
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] K2   knight   state_change     walk → attack
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-8s %-16s %s",
		e.Tick, e.Entity, e.Category, e.Key, e.Value)
}

// SimLog collects structured events during a simulation. Unlike the
// frontend's EventLog ring buffer, SimLog is unbounded and machine-readable.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, per-tick radius and
// position entries are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, entity, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Entity:   entity,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, entity, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, entity, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Len is the number of recorded entries.
func (sl *SimLog) Len() int { return len(sl.entries) }

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterEntity returns entries for a specific entity label.
func (sl *SimLog) FilterEntity(label string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Entity == label {
			out = append(out, e)
		}
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (sl *SimLog) FilterTickRange(fromTick, toTick int) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatRange returns a log string filtered to a tick range.
func (sl *SimLog) FormatRange(fromTick, toTick int) string {
	var sb strings.Builder
	for _, e := range sl.FilterTickRange(fromTick, toTick) {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable summary of the world state.
func (sl *SimLog) Summary(w *World) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%03d ---\n", w.Tick)

	a := w.Attractor
	fmt.Fprintf(&sb, "Void: r=%.1f target=%.1f at (%.0f,%.0f)", a.Radius, a.TargetRadius, a.Pos.X, a.Pos.Y)
	if a.Growing {
		sb.WriteString(" growing")
	}
	if a.Shrinking {
		sb.WriteString(" shrinking")
	}
	sb.WriteByte('\n')

	p := w.Player
	fmt.Fprintf(&sb, "Player: x=%.0f hearts=%d/%d scroll=%.0f\n", p.X, p.Hearts, p.MaxHearts, w.Scroll)

	walking, attacking := 0, 0
	for _, s := range w.Soldiers {
		if s.State == SoldierStateAttack {
			attacking++
		} else {
			walking++
		}
	}
	fmt.Fprintf(&sb, "Knights: walk=%d attack=%d\n", walking, attacking)
	fmt.Fprintf(&sb, "Orbs: %d  Boxes: %d\n", len(w.Orbs), len(w.Obstacles))
	fmt.Fprintf(&sb, "Story: sequence %d/%d  phase %s\n",
		w.Narrative.CurrentSequence(), w.Narrative.SequenceCount(), w.Director.Phase)
	return sb.String()
}
