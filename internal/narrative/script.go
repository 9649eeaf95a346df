package narrative

// SequenceText is one top-level line of the story and where it is shown.
type SequenceText struct {
	Text string
	X, Y float64
}

// Script is the full story of a session.
type Script struct {
	Sequences   []SequenceText
	Checkpoints []Checkpoint
}

// DefaultScript returns the story of the shipped level.
func DefaultScript() Script {
	return Script{
		Sequences: []SequenceText{
			{Text: "YOUNG MAGI AWAKEN", X: 425, Y: 300},
			{Text: "WITH YOU LIES THE POWER OF VOID", X: 360, Y: 300},
			{Text: "DRAW YOUR WAND AND USE ITS POWER WISELY", X: 315, Y: 300},
			{Text: "CLICK AND DRAG TO MOVE THE VOID", X: 360, Y: 300},
			{Text: "USE THE W A S D KEYS TO MOVE", X: 660, Y: 138},
			{Text: "COLLECT ORBS TO GROW THE VOID", X: 1330, Y: 308},
			{Text: "GROW THE VOID TO CONSUME SMALLER OBJECTS LIKE BOXES", X: 700, Y: 148},
		},
		Checkpoints: []Checkpoint{
			{ActivationDistance: 1300, X: 1300, Y: 140, Text: "THE KNIGHTS HAVE MAGIC BARRIERS THAT WILL SHRINK THE VOID", Magnetize: true},
			{ActivationDistance: 2100, X: 2400, Y: 300, Text: "BEWARE KNIGHTS LARGER THAN YOUR VOID", Magnetize: true},
			{ActivationDistance: 3200, X: 3200, Y: 100, Text: "CARVE YOUR PATH TO GREATNESS", Magnetize: true},
			{ActivationDistance: 7000, X: 7250, Y: 100, Text: "THE VOID RESTS HERE"},
			{ActivationDistance: 7000, X: 7250, Y: 120, Text: "THANKS FOR PLAYING"},
		},
	}
}
