package sim

import "github.com/Garsondee/void-magi/internal/narrative"

// Config holds the session parameters the world is built from.
type Config struct {
	CanvasWidth  float64
	CanvasHeight float64
	GroundHeight float64
	WorldWidth   float64
	MaxScroll    float64

	// MaxDelta caps the frame delta so a stalled frame cannot tunnel bodies
	// through obstacles.
	MaxDelta float64

	SkipIntro bool

	DarkSeconds     float64 // black screen before the fade-in
	FadeInSeconds   float64
	FirstLineDelay  float64
	SecondLineDelay float64
	ThirdLineDelay  float64
	FadeOutSeconds  float64

	// KeysUnlockSequence is the narrative sequence at which keyboard control
	// and the soldiers become active.
	KeysUnlockSequence int

	Script narrative.Script
	Font   narrative.FontMetrics
}

// DefaultConfig returns the configuration of the shipped level.
func DefaultConfig() Config {
	return Config{
		CanvasWidth:        1024,
		CanvasHeight:       576,
		GroundHeight:       32,
		WorldWidth:         7677,
		MaxScroll:          6700,
		MaxDelta:           0.1,
		DarkSeconds:        2,
		FadeInSeconds:      1,
		FirstLineDelay:     1,
		SecondLineDelay:    5,
		ThirdLineDelay:     4,
		FadeOutSeconds:     1,
		KeysUnlockSequence: 4,
		Script:             narrative.DefaultScript(),
		Font:               narrative.DefaultFont,
	}
}

// Floor is the y coordinate of the ground surface.
func (c Config) Floor() float64 { return c.CanvasHeight - c.GroundHeight }

func clampDelta(delta, limit float64) float64 {
	if delta < 0 {
		return 0
	}
	if limit > 0 && delta > limit {
		return limit
	}
	return delta
}
