package sim

import (
	"cmp"
	"slices"

	"github.com/Garsondee/void-magi/internal/geom"
	"github.com/solarlune/resolv"
)

const (
	tagSolid          = "solid"
	tagCursor         = "cursor"
	broadphaseCell    = 64
	broadphaseMargin  = 2.0
	broadphaseSlackPx = 512 // space extends past the world so bodies at the edge still register
)

// Broadphase indexes obstacles in a resolv space so collision passes only
// test the boxes near a body.
type Broadphase struct {
	space *resolv.Space
	cursor *resolv.Object
}

// NewBroadphase creates an index covering a world of the given size.
func NewBroadphase(width, height float64) *Broadphase {
	space := resolv.NewSpace(int(width)+broadphaseSlackPx, int(height)+broadphaseSlackPx, broadphaseCell, broadphaseCell)
	cursor := resolv.NewObject(0, 0, 1, 1, tagCursor)
	space.Add(cursor)
	return &Broadphase{space: space, cursor: cursor}
}

// Insert registers o.
func (bp *Broadphase) Insert(o *Obstacle) {
	obj := resolv.NewObject(o.X, o.Y, o.W, o.H, tagSolid)
	obj.Data = o
	bp.space.Add(obj)
	o.proxy = obj
}

// Sync moves o's proxy to its current box.
func (bp *Broadphase) Sync(o *Obstacle) {
	if o.proxy == nil {
		return
	}
	o.proxy.Position.X, o.proxy.Position.Y = o.X, o.Y
	o.proxy.Size.X, o.proxy.Size.Y = o.W, o.H
	o.proxy.Update()
}

// Remove drops o from the index.
func (bp *Broadphase) Remove(o *Obstacle) {
	if o.proxy == nil {
		return
	}
	bp.space.Remove(o.proxy)
	o.proxy = nil
}

// Query returns the obstacles whose cells touch r, in insertion order. The
// result is a superset of the overlapping obstacles; callers still run the
// exact overlap test.
func (bp *Broadphase) Query(r geom.Rect) []*Obstacle {
	r = r.Inflate(broadphaseMargin)
	bp.cursor.Position.X, bp.cursor.Position.Y = r.X, r.Y
	bp.cursor.Size.X, bp.cursor.Size.Y = r.W, r.H
	bp.cursor.Update()
	c := bp.cursor.Check(0, 0, tagSolid)
	if c == nil {
		return nil
	}
	out := make([]*Obstacle, 0, len(c.Objects))
	for _, obj := range c.Objects {
		if o, ok := obj.Data.(*Obstacle); ok {
			out = append(out, o)
		}
	}
	slices.SortFunc(out, func(a, b *Obstacle) int { return cmp.Compare(a.id, b.id) })
	return out
}
