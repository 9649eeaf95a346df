// Package narrative owns the story text of a session: the ordered text
// sequences, the checkpoint texts triggered by travel distance, and the letter
// boxes those texts are laid out into. The simulation talks to it only
// through the events in events.go and by reading the current sequence index.
package narrative

import (
	"log"

	"github.com/Garsondee/void-magi/internal/geom"
)

const (
	letterStagger     = 2  // frames between consecutive letters fading in
	letterRiseOffset  = 20 // letters start this far below their resting line
	letterFadeStep    = 0.05
	letterLayoutShift = 20 // layout y is raised by this much to absorb the rise
)

// FontMetrics describes the fixed-cell bitmap font used to lay out letters.
type FontMetrics struct {
	CharWidth   float64
	CharHeight  float64
	CharsPerRow int
}

// DefaultFont is the 10x14 A-Z sheet the game ships with.
var DefaultFont = FontMetrics{CharWidth: 10, CharHeight: 14, CharsPerRow: 26}

// Letter is one laid-out glyph. Its box doubles as the footprint the void
// shrinks when it swallows the text.
type Letter struct {
	Char rune
	Box  geom.Rect

	// Glyph cell in the font sheet.
	SourceX, SourceY float64

	Opacity float64
	OffsetY float64

	delay      int
	frames     int
	magnetize  bool
	checkpoint bool
}

// Footprint exposes the mutable box for the void's pull-and-shrink pass.
func (l *Letter) Footprint() *geom.Rect { return &l.Box }

// IsCheckpoint reports whether the letter belongs to checkpoint text rather
// than to a top-level sequence.
func (l *Letter) IsCheckpoint() bool { return l.checkpoint }

// Magnetizable reports whether the void may pull this letter.
func (l *Letter) Magnetizable() bool { return l.magnetize }

// Animate advances the staggered fade-in by one frame.
func (l *Letter) Animate() {
	if l.frames < l.delay {
		l.frames++
		return
	}
	l.Opacity = min(l.Opacity+letterFadeStep, 1)
	l.OffsetY = max(l.OffsetY-1, 0)
}

// Layout splits text into letter boxes starting at (x, y). Only A-Z are
// supported; any other character is skipped but still takes up its column.
// Newlines start a new row.
func Layout(text string, x, y float64, font FontMetrics, checkpoint, magnetize bool) []*Letter {
	var letters []*Letter
	delay := 0
	line, col := 0, 0
	for _, ch := range text {
		if ch == '\n' {
			line++
			col = 0
			continue
		}
		idx := int(ch - 'A')
		if idx < 0 || idx > 25 {
			if ch != ' ' {
				log.Printf("narrative: unsupported character %q", ch)
			}
			col++
			continue
		}
		row := 0
		cell := idx
		if font.CharsPerRow > 0 {
			row = idx / font.CharsPerRow
			cell = idx % font.CharsPerRow
		}
		letters = append(letters, &Letter{
			Char: ch,
			Box: geom.Rect{
				X: x + float64(col)*font.CharWidth,
				Y: y + float64(line)*font.CharHeight - letterLayoutShift,
				W: font.CharWidth,
				H: font.CharHeight,
			},
			SourceX:    float64(cell) * font.CharWidth,
			SourceY:    float64(row) * font.CharHeight,
			OffsetY:    letterRiseOffset,
			delay:      delay,
			magnetize:  magnetize,
			checkpoint: checkpoint,
		})
		delay += letterStagger
		col++
	}
	return letters
}
