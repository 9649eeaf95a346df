package narrative

// Checkpoint is a one-shot text trigger keyed on horizontal travel.
type Checkpoint struct {
	ActivationDistance float64
	X, Y               float64 // where the text is shown
	Text               string
	Magnetize          bool
	Activated          bool
}

// Checkpoints is the ordered set of checkpoint triggers of a script.
type Checkpoints []Checkpoint

// Track fires every checkpoint whose threshold travel has reached and that has
// not fired yet. fire is called once per newly activated checkpoint, in order.
func (cs Checkpoints) Track(travel float64, fire func(Checkpoint)) {
	for i := range cs {
		cp := &cs[i]
		if cp.Activated || travel < cp.ActivationDistance {
			continue
		}
		cp.Activated = true
		if fire != nil {
			fire(*cp)
		}
	}
}

// Rearm clears every Activated flag.
func (cs Checkpoints) Rearm() {
	for i := range cs {
		cs[i].Activated = false
	}
}
