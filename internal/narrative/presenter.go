package narrative

import (
	"github.com/yohamta/donburi"
)

// Presenter holds the letters currently on screen and reacts to the events
// published by the simulation. Until the font is marked ready, text requests
// are held back and retried when it becomes ready.
type Presenter struct {
	bus         donburi.World
	font        FontMetrics
	script      Script
	checkpoints Checkpoints

	ready     bool
	sequences [][]*Letter
	current   int
	letters   []*Letter
	pending   []ShowText
	advances  int
}

// NewPresenter subscribes a presenter for script to the events on bus.
func NewPresenter(bus donburi.World, script Script, font FontMetrics) *Presenter {
	p := &Presenter{
		bus:         bus,
		font:        font,
		script:      script,
		checkpoints: append(Checkpoints(nil), script.Checkpoints...),
	}
	ShowTextEvent.Subscribe(bus, p.onShowText)
	AdvanceSequenceEvent.Subscribe(bus, p.onAdvance)
	return p
}

// MarkReady lays out every sequence, shows the current one, and replays any
// checkpoint text requested while the font was loading.
func (p *Presenter) MarkReady() {
	if p.ready {
		return
	}
	p.ready = true
	p.sequences = make([][]*Letter, len(p.script.Sequences))
	for i, seq := range p.script.Sequences {
		p.sequences[i] = Layout(seq.Text, seq.X, seq.Y, p.font, false, true)
	}
	p.letters = p.sequenceLetters(p.current)
	pending := p.pending
	p.pending = nil
	for _, st := range pending {
		p.appendText(st)
	}
}

// SkipTo jumps straight to sequence i without counting it as an advance.
func (p *Presenter) SkipTo(i int) {
	p.current = i
	p.letters = p.sequenceLetters(i)
}

// Ready reports whether the font has loaded.
func (p *Presenter) Ready() bool { return p.ready }

// CurrentSequence is the index of the top-level sequence being shown.
func (p *Presenter) CurrentSequence() int { return p.current }

// SequenceCount is the number of top-level sequences in the script.
func (p *Presenter) SequenceCount() int { return len(p.script.Sequences) }

// Advances counts how many sequence advances have been applied.
func (p *Presenter) Advances() int { return p.advances }

// Letters returns the letters currently shown. The slice is owned by the
// presenter; callers may shrink the letter boxes but must not retain it.
func (p *Presenter) Letters() []*Letter { return p.letters }

// Checkpoints returns a copy of the checkpoint states.
func (p *Presenter) Checkpoints() Checkpoints {
	return append(Checkpoints(nil), p.checkpoints...)
}

// Track evaluates the checkpoints against the tracked travel value and
// publishes a ShowText event for each one that fires.
func (p *Presenter) Track(travel float64) {
	p.checkpoints.Track(travel, func(cp Checkpoint) {
		ShowTextEvent.Publish(p.bus, ShowText{Text: cp.Text, X: cp.X, Y: cp.Y, Magnetize: cp.Magnetize})
	})
}

// Flush delivers queued events: sequence advances first, then text requests.
func (p *Presenter) Flush() {
	AdvanceSequenceEvent.ProcessEvents(p.bus)
	ShowTextEvent.ProcessEvents(p.bus)
}

// DiscardConsumed drops checkpoint letters that have been fully swallowed.
// Sequence letters stay until the sequence advances.
func (p *Presenter) DiscardConsumed() {
	kept := p.letters[:0]
	for _, l := range p.letters {
		if l.checkpoint && l.Box.Consumed() {
			continue
		}
		kept = append(kept, l)
	}
	for i := len(kept); i < len(p.letters); i++ {
		p.letters[i] = nil
	}
	p.letters = kept
}

func (p *Presenter) onAdvance(_ donburi.World, _ AdvanceSequence) {
	p.current++
	p.advances++
	p.letters = p.sequenceLetters(p.current)
	p.checkpoints.Rearm()
}

func (p *Presenter) onShowText(_ donburi.World, st ShowText) {
	if !p.ready {
		p.pending = append(p.pending, st)
		return
	}
	p.appendText(st)
}

func (p *Presenter) appendText(st ShowText) {
	p.letters = append(p.letters, Layout(st.Text, st.X, st.Y, p.font, true, st.Magnetize)...)
}

func (p *Presenter) sequenceLetters(i int) []*Letter {
	if !p.ready || i < 0 || i >= len(p.sequences) {
		return nil
	}
	return append([]*Letter(nil), p.sequences[i]...)
}
