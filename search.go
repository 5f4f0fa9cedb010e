package rstar

import (
	"github.com/npillmayer/rstar/rect"
)

// Search appends all entries whose rectangle intersects the window s to
// out and returns the extended slice. Touching edges count as
// intersecting. Result order is traversal-dependent.
func (t *Tree) Search(s rect.Rect, out []Entry) []Entry {
	return t.collect(out, func(b rect.Rect) bool {
		return b.Intersects(s)
	})
}

// Select appends all entries whose rectangle contains the point (px, py)
// to out and returns the extended slice. Containment is half-open: a point
// on a right or bottom edge is outside.
func (t *Tree) Select(px, py float64, out []Entry) []Entry {
	return t.collect(out, func(b rect.Rect) bool {
		return b.ContainsPoint(px, py)
	})
}

// Range appends all entries whose rectangle is reached by the circle with
// center (cx, cy) and radius r to out and returns the extended slice.
func (t *Tree) Range(cx, cy, r float64, out []Entry) []Entry {
	return t.collect(out, func(b rect.Rect) bool {
		return b.IntersectsCircle(cx, cy, r)
	})
}

// collect runs a breadth-first traversal over all nodes whose box matches
// the predicate and gathers matching leaf entries.
func (t *Tree) collect(out []Entry, match func(rect.Rect) bool) []Entry {
	if t.IsEmpty() {
		return out
	}
	queue := []*node{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.leaf {
			for _, e := range n.entries {
				if match(e.Box) {
					out = append(out, e)
				}
			}
			continue
		}
		for _, c := range n.children {
			if match(c.box) {
				queue = append(queue, c)
			}
		}
	}
	return out
}
