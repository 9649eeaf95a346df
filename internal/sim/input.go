package sim

import "github.com/Garsondee/void-magi/internal/geom"

// Horizontal is the player's walking intent for a tick.
type Horizontal int

const (
	MoveNone Horizontal = iota
	MoveLeft
	MoveRight
)

// DragPhase is the pointer gesture step reported for a tick.
type DragPhase int

const (
	DragNone    DragPhase = iota
	DragBegin             // button pressed at Point
	DragMove              // pointer moved to Point while held
	DragRelease           // button released at Point
)

func (d DragPhase) String() string {
	switch d {
	case DragNone:
		return "none"
	case DragBegin:
		return "begin"
	case DragMove:
		return "move"
	case DragRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Input is the set of intents the frontend (or an autopilot) hands to the
// world for one tick. Point is in screen space.
type Input struct {
	Move  Horizontal
	Jump  bool
	Nudge bool // small downward push
	Drag  DragPhase
	Point geom.Vec2
}

type dragState struct {
	active     bool
	start, cur geom.Vec2
}

func (d dragState) vector() geom.Vec2 { return d.cur.Sub(d.start) }
