package rstar

import (
	"math"

	"github.com/npillmayer/rstar/rect"
)

// Nearest returns the stored entry closest to the live entry with the
// given handle, excluding that entry itself. The second return value is
// false if the handle is unknown or the tree holds fewer than two entries.
//
// With empty set, candidates separated from the query on both axes by gaps
// equal to the query's (or the candidate's) extents are ranked by their
// smallest edge-to-edge offset instead of counting as distance zero; see
// rectDist.
//
// Candidates are examined in the seed leaf and in the verification window
// of nearestFrom only.
func (t *Tree) Nearest(id uint64, empty bool) (Entry, bool) {
	leaf, ok := t.entries[id]
	if !ok || len(t.entries) < 2 {
		return Entry{}, false
	}
	var q rect.Rect
	for _, e := range leaf.entries {
		if e.ID == id {
			q = e.Box
			break
		}
	}
	return t.nearestFrom(q, leaf, id, true, empty)
}

// NearestTo returns the stored entry closest to an arbitrary query
// rectangle. The second return value is false if the tree holds fewer than
// two entries.
func (t *Tree) NearestTo(q rect.Rect, empty bool) (Entry, bool) {
	if len(t.entries) < 2 {
		return Entry{}, false
	}
	seed := t.seedLeaf(q)
	return t.nearestFrom(q, seed, 0, false, empty)
}

// nearestFrom scans the seed leaf for a local winner, then verifies it
// against a window inflated by the local distance. The inflation is square
// in both axes. Entries outside that window are not examined, even where
// rectDist ranks them below the local distance (for example a pair
// separated on both axes, which ranks at zero).
func (t *Tree) nearestFrom(q rect.Rect, seed *node, excludeID uint64, exclude, empty bool) (Entry, bool) {
	var best Entry
	found := false
	bestDist := 0.0
	for _, e := range seed.entries {
		if exclude && e.ID == excludeID {
			continue
		}
		d := rectDist(q, e.Box, empty)
		if !found || d < bestDist {
			best = e
			bestDist = d
			found = true
		}
	}
	assert(found, "seed leaf held no nearest-neighbor candidate")
	if bestDist <= 0 {
		return best, true
	}

	window := q.Inflate(bestDist)
	for _, e := range t.Search(window, nil) {
		if exclude && e.ID == excludeID {
			continue
		}
		if t.entries[e.ID] == seed {
			continue
		}
		if d := rectDist(q, e.Box, empty); d < bestDist {
			best = e
			bestDist = d
		}
	}
	return best, true
}

// seedLeaf picks the leaf the local nearest-neighbor scan starts from.
//
// The descent follows all children intersecting the query, level by level;
// as soon as a level has no intersecting child, it falls through to the
// single child whose center is closest to the query center. Among several
// surviving leaves the one overlapping the query most wins. The choice is
// heuristic only; the verification window in nearestFrom then checks the
// entries around the query outside this leaf.
func (t *Tree) seedLeaf(q rect.Rect) *node {
	assert(t.root != nil, "seedLeaf called on an empty tree")
	qx, qy := q.Center()
	frontier := []*node{t.root}
	for !frontier[0].leaf {
		var next []*node
		for _, n := range frontier {
			for _, c := range n.children {
				if c.box.Intersects(q) {
					next = append(next, c)
				}
			}
		}
		if len(next) == 0 {
			return descendByCenter(frontier, qx, qy)
		}
		frontier = next
	}
	best := frontier[0]
	bestOverlap := rect.OverlapArea(best.box, q)
	for _, leaf := range frontier[1:] {
		if o := rect.OverlapArea(leaf.box, q); o > bestOverlap {
			best = leaf
			bestOverlap = o
		}
	}
	return best
}

// descendByCenter picks, among the children of all frontier nodes, the one
// whose center is closest to the query center, and follows closest-center
// children from there down to a leaf.
func descendByCenter(frontier []*node, qx, qy float64) *node {
	var candidates []*node
	for _, n := range frontier {
		if n.leaf {
			candidates = append(candidates, n)
		} else {
			candidates = append(candidates, n.children...)
		}
	}
	n := closestByCenter(candidates, qx, qy)
	for !n.leaf {
		n = closestByCenter(n.children, qx, qy)
	}
	return n
}

func closestByCenter(nodes []*node, qx, qy float64) *node {
	best := nodes[0]
	bestDist := math.Inf(1)
	for _, n := range nodes {
		cx, cy := n.box.Center()
		dx, dy := cx-qx, cy-qy
		if d := dx*dx + dy*dy; d < bestDist {
			best = n
			bestDist = d
		}
	}
	return best
}

// rectDist is the pairwise rectangle distance used for nearest-neighbor
// ranking. It is built on the signed per-axis overlaps of the two
// rectangles. The case analysis is deliberate, not Euclidean: a pair
// separated on one axis ranks by the other axis' overlap length, and a
// pair separated on both axes ranks at zero unless the empty flag's
// gap-matching rule applies.
func rectDist(q, c rect.Rect, empty bool) float64 {
	ox, oy := rect.Overlap(q, c)
	switch {
	case ox < 0 && oy >= 0:
		return oy
	case oy < 0 && ox >= 0:
		return ox
	case ox >= 0 && oy >= 0:
		return math.Sqrt(ox*ox + oy*oy)
	}
	// ox < 0 && oy < 0
	if !empty {
		return 0
	}
	contained := (-ox == q.W && -oy == q.H) || (-ox == c.W && -oy == c.H)
	if !contained {
		return 0
	}
	dx := math.Min(math.Abs(c.Right()-q.Right()), math.Abs(c.X-q.X))
	dy := math.Min(math.Abs(c.Bottom()-q.Bottom()), math.Abs(c.Y-q.Y))
	return math.Min(dx, dy)
}
