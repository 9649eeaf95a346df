package sim

import (
	"testing"

	"github.com/Garsondee/void-magi/internal/geom"
)

func TestBroadphaseQuery(t *testing.T) {
	w := NewWorld(DefaultConfig(), nil)
	a := NewObstacle(0, 0, 48, 48, CapCollidable)
	b := NewObstacle(1000, 0, 48, 48, CapCollidable)
	c := NewObstacle(200, 0, 48, 48, CapCollidable)
	for _, o := range []*Obstacle{a, b, c} {
		w.AddObstacle(o)
	}

	got := w.broad.Query(geom.Rect{X: 10, Y: 10, W: 5, H: 5})
	if len(got) != 1 || got[0] != a {
		t.Fatalf("local query returned %d obstacles, want only the first", len(got))
	}

	got = w.broad.Query(geom.Rect{X: 0, Y: 0, W: 1100, H: 60})
	if len(got) != 3 || got[0] != a || got[1] != b || got[2] != c {
		t.Fatal("wide query should return every obstacle in insertion order")
	}

	c.X = 1000
	w.broad.Sync(c)
	if got := w.broad.Query(geom.Rect{X: 190, Y: 0, W: 60, H: 60}); len(got) != 0 {
		t.Fatalf("moved obstacle still found at its old place")
	}

	w.broad.Remove(b)
	for _, o := range w.broad.Query(geom.Rect{X: 990, Y: 0, W: 60, H: 60}) {
		if o == b {
			t.Fatal("removed obstacle returned")
		}
	}
}

func TestBroadphaseProxyTracksObstacle(t *testing.T) {
	bp := NewBroadphase(2000, 600)
	o := NewObstacle(100, 200, 48, 48, CapCollidable|CapGravity)
	bp.Insert(o)

	o.X, o.Y, o.W, o.H = 300, 250, 20, 10
	bp.Sync(o)
	p := o.proxy
	if p.Position.X != 300 || p.Position.Y != 250 || p.Size.X != 20 || p.Size.Y != 10 {
		t.Fatalf("proxy at (%.0f,%.0f) %.0fx%.0f, want (300,250) 20x10",
			p.Position.X, p.Position.Y, p.Size.X, p.Size.Y)
	}

	r := geom.Rect{X: 305, Y: 252, W: 5, H: 5}
	got := bp.Query(r)
	if len(got) != 1 || got[0] != o {
		t.Fatalf("query near the synced box returned %d obstacles", len(got))
	}
	want := r.Inflate(broadphaseMargin)
	if bp.cursor.Position.X != want.X || bp.cursor.Size.X != want.W {
		t.Fatalf("cursor at x=%.1f w=%.1f, want x=%.1f w=%.1f",
			bp.cursor.Position.X, bp.cursor.Size.X, want.X, want.W)
	}
}
