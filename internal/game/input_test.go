package game

import (
	"testing"

	"github.com/Garsondee/void-magi/internal/sim"
)

func TestMovementInput(t *testing.T) {
	tests := []struct {
		name string
		ks   keyState
		want sim.Horizontal
	}{
		{"idle", keyState{}, sim.MoveNone},
		{"right", keyState{right: true}, sim.MoveRight},
		{"left", keyState{left: true}, sim.MoveLeft},
		{"both cancel", keyState{left: true, right: true}, sim.MoveNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := movementInput(tt.ks).Move; got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMovementInputCarriesJumpAndNudge(t *testing.T) {
	in := movementInput(keyState{jump: true, nudge: true})
	if !in.Jump || !in.Nudge {
		t.Fatalf("jump and nudge should pass through: %+v", in)
	}
	if in.Drag != sim.DragNone {
		t.Fatalf("keyboard input should not start a drag, got %v", in.Drag)
	}
}
