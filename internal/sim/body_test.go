package sim

import (
	"testing"

	"github.com/Garsondee/void-magi/internal/geom"
)

func TestLandOnFloor(t *testing.T) {
	b := Body{Rect: geom.Rect{X: 0, Y: 95, W: 10, H: 10}, Vel: geom.Vec2{X: 10, Y: 300}}
	if !b.LandOnFloor(100, 0.5) {
		t.Fatal("body past the floor did not land")
	}
	if b.Y != 90 || b.Vel.Y != 0 || b.Vel.X != 5 {
		t.Fatalf("after landing: y=%.1f v=%+v", b.Y, b.Vel)
	}

	b.Y = 50
	if b.LandOnFloor(100, 0.5) {
		t.Fatal("airborne body landed")
	}
}

func TestClampToViewCeiling(t *testing.T) {
	pos := geom.Vec2{X: 50, Y: 3}
	vel := geom.Vec2{X: 10, Y: -100}
	ext := geom.Vec2{X: 5, Y: 5}
	clampToView(&pos.X, &pos.Y, &vel, ext, ext, View{Left: 0, Width: 100, Floor: 100})

	if pos.Y != 5 || vel.Y != 0 {
		t.Fatalf("ceiling: y=%.1f vy=%.1f", pos.Y, vel.Y)
	}
	if vel.X != 10*GroundFriction {
		t.Fatalf("vx=%.3f, want friction applied", vel.X)
	}
}

func TestClampToViewFollowsScroll(t *testing.T) {
	pos := geom.Vec2{X: 210, Y: 50}
	var vel geom.Vec2
	ext := geom.Vec2{X: 20, Y: 20}
	clampToView(&pos.X, &pos.Y, &vel, ext, ext, View{Left: 200, Width: 100, Floor: 100})
	if pos.X != 220 {
		t.Fatalf("x=%.1f, want pushed inside the scrolled view", pos.X)
	}
}
