package game

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/void-magi/internal/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	logPanelWidth = 320
	logMaxEntries = 60
	logLineHeight = 11
)

// LogEntry is a single line in the event log.
type LogEntry struct {
	Tick     int
	Label    string // e.g. "K2", "O14", "--"
	Category string
	Message  string
}

// EventLog is a ring buffer of simulation events rendered on-screen.
type EventLog struct {
	entries []LogEntry
	head    int
	count   int
}

// NewEventLog creates an event log with a fixed capacity.
func NewEventLog() *EventLog {
	return &EventLog{
		entries: make([]LogEntry, logMaxEntries),
	}
}

// Add appends an entry to the log.
func (el *EventLog) Add(tick int, label, category, msg string) {
	el.entries[el.head] = LogEntry{
		Tick:     tick,
		Label:    label,
		Category: category,
		Message:  msg,
	}
	el.head = (el.head + 1) % logMaxEntries
	if el.count < logMaxEntries {
		el.count++
	}
}

// AddEntry mirrors a structured SimLog entry.
func (el *EventLog) AddEntry(e sim.SimLogEntry) {
	msg := e.Key
	if e.Value != "" {
		msg += " " + e.Value
	}
	el.Add(e.Tick, e.Entity, e.Category, msg)
}

// Recent returns entries in chronological order (oldest first).
func (el *EventLog) Recent() []LogEntry {
	result := make([]LogEntry, el.count)
	for i := 0; i < el.count; i++ {
		idx := (el.head - el.count + i + logMaxEntries) % logMaxEntries
		result[i] = el.entries[idx]
	}
	return result
}

func categoryColor(cat string) color.RGBA {
	switch cat {
	case sim.CatAttractor:
		return color.RGBA{R: 150, G: 90, B: 220, A: 255}
	case sim.CatSoldier:
		return color.RGBA{R: 210, G: 70, B: 70, A: 255}
	case sim.CatPlayer:
		return color.RGBA{R: 90, G: 200, B: 120, A: 255}
	case sim.CatOrb:
		return color.RGBA{R: 230, G: 210, B: 90, A: 255}
	case sim.CatNarrative:
		return color.RGBA{R: 220, G: 220, B: 220, A: 255}
	default:
		return color.RGBA{R: 120, G: 120, B: 140, A: 255}
	}
}

// Draw renders the log panel on the right side of the screen.
func (el *EventLog) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 12, G: 10, B: 16, A: 235}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 70, G: 50, B: 90, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), 16, color.RGBA{R: 28, G: 20, B: 36, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENT LOG", panelX+8, 2)

	entries := el.Recent()

	// Newest at the bottom.
	maxVisible := (panelH - 24) / logLineHeight
	startIdx := 0
	if len(entries) > maxVisible {
		startIdx = len(entries) - maxVisible
	}
	visible := entries[startIdx:]
	recent := 3

	y := 20
	for i, e := range visible {
		if i >= len(visible)-recent {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(logPanelWidth-4), float32(logLineHeight), color.RGBA{R: 36, G: 28, B: 44, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+3), 3, 5, categoryColor(e.Category), false)
		line := fmt.Sprintf("%4d [%s] %s", e.Tick, e.Label, e.Message)
		ebitenutil.DebugPrintAt(screen, line, panelX+12, y)
		y += logLineHeight
	}
}
