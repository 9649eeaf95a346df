package sim

import "fmt"

// Outcome is how a run ended, if it has.
type Outcome int

const (
	OutcomeInProgress Outcome = iota
	OutcomeGameOver
	OutcomeCleared
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeGameOver:
		return "game_over"
	case OutcomeCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// OutcomeReason is an outcome with the figures that led to it.
type OutcomeReason struct {
	Outcome          Outcome
	HeartsLeft       int
	SoldiersLeft     int
	SoldiersAbsorbed int
	OrbsLeft         int
	FinalRadius      float64
	Description      string
}

// DetermineOutcome classifies the world's current state. A run is cleared
// once every knight has been absorbed.
func DetermineOutcome(w *World) OutcomeReason {
	r := OutcomeReason{
		HeartsLeft:       w.Player.Hearts,
		SoldiersLeft:     len(w.Soldiers),
		SoldiersAbsorbed: w.Stats.SoldiersAbsorbed,
		OrbsLeft:         len(w.Orbs),
		FinalRadius:      w.Attractor.Radius,
	}
	switch {
	case w.Player.Dead():
		r.Outcome = OutcomeGameOver
		r.Description = fmt.Sprintf("out of hearts with %d knights left", r.SoldiersLeft)
	case r.SoldiersLeft == 0 && r.SoldiersAbsorbed > 0:
		r.Outcome = OutcomeCleared
		r.Description = fmt.Sprintf("all %d knights absorbed, %d hearts left", r.SoldiersAbsorbed, r.HeartsLeft)
	default:
		r.Outcome = OutcomeInProgress
		r.Description = fmt.Sprintf("%d knights left, void r=%.1f", r.SoldiersLeft, r.FinalRadius)
	}
	return r
}
