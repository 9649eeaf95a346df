package narrative

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ShowText asks the presenter to append checkpoint text at a world position.
type ShowText struct {
	Text      string
	X, Y      float64
	Magnetize bool
}

// AdvanceSequence asks the presenter to move to the next top-level sequence.
type AdvanceSequence struct {
	Reason string
}

var (
	ShowTextEvent        = events.NewEventType[ShowText]()
	AdvanceSequenceEvent = events.NewEventType[AdvanceSequence]()
)

// RequestAdvance queues a sequence advance on the bus.
func RequestAdvance(bus donburi.World, reason string) {
	AdvanceSequenceEvent.Publish(bus, AdvanceSequence{Reason: reason})
}
