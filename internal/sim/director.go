package sim

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Phase is the stage of the session the director is running.
type Phase int

const (
	PhaseDark     Phase = iota // black screen before the fade-in
	PhaseFadeIn                // overlay fading out
	PhaseIntro                 // opening lines on timers
	PhasePlaying               // free play
	PhaseGameOver              // player out of hearts
)

func (p Phase) String() string {
	switch p {
	case PhaseDark:
		return "dark"
	case PhaseFadeIn:
		return "fade_in"
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// stage is the part of the world the director drives.
type stage interface {
	advanceSequence(reason string)
	growAttractor(amount float64)
	revealWand()
	sequence() int
	playerDefeated() bool
}

// Director runs the opening, unlocks controls as the story progresses, and
// fades to black on game over. All timing is countdown based and advanced
// from the world step.
type Director struct {
	Phase Phase

	// Overlay is the opacity of the black screen cover, 0 to 1.
	Overlay float64

	AllowPointer  bool
	AllowKeys     bool
	EnemiesActive bool
	HintVisible   bool

	cfg       Config
	countdown float64
	introStep int
	fade      *gween.Tween
}

// NewDirector creates a director at the start of the session.
func NewDirector(cfg Config) *Director {
	d := &Director{cfg: cfg}
	if cfg.SkipIntro {
		d.Phase = PhasePlaying
		d.AllowPointer = true
		d.AllowKeys = true
		d.EnemiesActive = true
		return d
	}
	d.Phase = PhaseDark
	d.Overlay = 1
	d.countdown = cfg.DarkSeconds
	return d
}

// Update advances the director by delta seconds.
func (d *Director) Update(delta float64, s stage) {
	if d.Phase != PhaseGameOver && s.playerDefeated() {
		d.gameOver()
	}

	switch d.Phase {
	case PhaseDark:
		d.countdown -= delta
		if d.countdown <= 0 {
			d.Phase = PhaseFadeIn
			d.fade = gween.New(1, 0, float32(d.cfg.FadeInSeconds), ease.Linear)
		}
	case PhaseFadeIn:
		if d.stepFade(delta) {
			d.Phase = PhaseIntro
			d.countdown = d.cfg.FirstLineDelay
		}
	case PhaseIntro:
		d.countdown -= delta
		if d.countdown > 0 {
			return
		}
		d.runIntroStep(s)
	case PhasePlaying:
		if s.sequence() >= d.cfg.KeysUnlockSequence {
			d.AllowKeys = true
			d.EnemiesActive = true
			d.HintVisible = false
		}
	case PhaseGameOver:
		d.stepFade(delta)
	}
}

func (d *Director) runIntroStep(s stage) {
	switch d.introStep {
	case 0:
		s.advanceSequence("intro")
		s.growAttractor(IntroGrowth)
		d.countdown = d.cfg.SecondLineDelay
	case 1:
		s.advanceSequence("intro")
		s.revealWand()
		d.countdown = d.cfg.ThirdLineDelay
	default:
		s.advanceSequence("intro")
		d.AllowPointer = true
		d.AllowKeys = true
		d.HintVisible = true
		d.Phase = PhasePlaying
	}
	d.introStep++
}

func (d *Director) gameOver() {
	d.Phase = PhaseGameOver
	d.AllowKeys = false
	d.AllowPointer = false
	d.HintVisible = false
	d.fade = gween.New(float32(d.Overlay), 1, float32(d.cfg.FadeOutSeconds), ease.Linear)
}

// stepFade advances the active fade and reports whether it has finished.
func (d *Director) stepFade(delta float64) bool {
	if d.fade == nil {
		return true
	}
	v, done := d.fade.Update(float32(delta))
	d.Overlay = float64(v)
	if done {
		d.fade = nil
	}
	return done
}
