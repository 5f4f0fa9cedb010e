package rstar

import (
	"sort"

	"github.com/npillmayer/rstar/rect"
)

// placement is a pending insertion: either a single entry bound for a leaf,
// or a whole subtree that must become the child of a node at a given level.
//
// Levels count from the leaves: entries are placed at level 0, a subtree of
// leaves at level 1, and so on.
type placement struct {
	entry Entry
	sub   *node // nil when placing an entry
}

func (p placement) box() rect.Rect {
	if p.sub != nil {
		return p.sub.box
	}
	return p.entry.Box
}

// place routes a pending insertion to the node chosen by the choose-subtree
// descent, attaches it, and repairs the path up to the root.
func (t *Tree) place(p placement, level int) {
	assert(t.root != nil, "place called on an empty tree")
	target := t.chooseSubtree(p.box(), level)
	if p.sub != nil {
		assert(!target.leaf, "subtree placement chose a leaf target")
		p.sub.parent = target
		target.children = append(target.children, p.sub)
	} else {
		assert(target.leaf, "entry placement chose a branch target")
		target.entries = append(target.entries, p.entry)
		t.entries[p.entry.ID] = target
	}
	target.box = rect.Union(target.box, p.box())
	t.ascend(target, level)
}

// chooseSubtree descends from the root to the node at the given level that
// should host a new child with the given box.
//
// One step above the leaves the descent minimizes overlap enlargement over
// the top-p least-enlargement candidates; higher up it minimizes area
// enlargement with an area tie-break.
func (t *Tree) chooseSubtree(box rect.Rect, level int) *node {
	n := t.root
	for cur := t.height - 1; cur > level; cur-- {
		assert(!n.leaf, "chooseSubtree descended into a leaf")
		var idx int
		if n.children[0].leaf {
			idx = chooseByOverlap(n, box, t.cfg.ChooseSubtreeP)
		} else {
			idx = chooseByEnlargement(n, box)
		}
		n = n.children[idx]
	}
	return n
}

// chooseByEnlargement returns the child needing the least area enlargement
// to include box. Ties prefer the smaller current area, then the lower
// index.
func chooseByEnlargement(n *node, box rect.Rect) int {
	best := 0
	bestEnlargement := enlargement(n.children[0].box, box)
	bestArea := n.children[0].box.Area()
	for i, c := range n.children[1:] {
		delta := enlargement(c.box, box)
		if delta < bestEnlargement ||
			(delta == bestEnlargement && c.box.Area() < bestArea) {
			best = i + 1
			bestEnlargement = delta
			bestArea = c.box.Area()
		}
	}
	return best
}

// chooseByOverlap ranks children by area enlargement and re-ranks the top p
// candidates by the overlap enlargement their growth would inflict on the
// sibling set. Ties keep the earlier candidate in enlargement order.
func chooseByOverlap(n *node, box rect.Rect, p int) int {
	order := make([]int, len(n.children))
	deltas := make([]float64, len(n.children))
	for i, c := range n.children {
		order[i] = i
		deltas[i] = enlargement(c.box, box)
	}
	sort.SliceStable(order, func(a, b int) bool {
		return deltas[order[a]] < deltas[order[b]]
	})
	if p > len(order) {
		p = len(order)
	}
	best := order[0]
	bestCost := overlapEnlargement(n, order[0], box)
	for _, ci := range order[1:p] {
		cost := overlapEnlargement(n, ci, box)
		if cost < bestCost {
			best = ci
			bestCost = cost
		}
	}
	return best
}

// overlapEnlargement sums, over all siblings of child c, how much growing c
// by box increases the pairwise overlap area.
func overlapEnlargement(n *node, c int, box rect.Rect) float64 {
	grown := rect.Union(n.children[c].box, box)
	var cost float64
	for j, sibling := range n.children {
		if j == c {
			continue
		}
		cost += rect.OverlapArea(grown, sibling.box) -
			rect.OverlapArea(n.children[c].box, sibling.box)
	}
	return cost
}

func enlargement(have, add rect.Rect) float64 {
	return rect.Union(have, add).Area() - have.Area()
}

// ascend walks from a freshly grown node toward the root, resolving
// overflow and repairing bounding rectangles along the path.
func (t *Tree) ascend(n *node, level int) {
	for {
		var sibling *node
		if n.fanout() > t.cfg.MaxFill {
			sibling = t.overflow(n, level)
		}
		parent := n.parent
		if sibling != nil {
			if parent == nil {
				t.root = t.makeBranch([]*node{n, sibling})
				t.height++
				tracer().Debugf("rstar: root split, tree height now %d", t.height)
				return
			}
			sibling.parent = parent
			parent.children = append(parent.children, sibling)
		}
		if parent == nil {
			return
		}
		parent.recomputeBox()
		n = parent
		level++
	}
}

// overflow relieves an overfull node. The first overflow at a level within
// one top-level mutation performs forced reinsertion in place and returns
// nil; later overflows at that level, and any overflow at the root level,
// split the node and return the new sibling.
func (t *Tree) overflow(n *node, level int) *node {
	if level == t.height-1 || t.reinserted[level] {
		return t.split(n)
	}
	t.reinserted[level] = true
	t.forceReinsert(n, level)
	return nil
}

// forceReinsert removes the ReinsertCount children farthest from the node's
// reference center and re-routes them through a fresh choose-subtree
// descent at the same level.
func (t *Tree) forceReinsert(n *node, level int) {
	count := n.fanout()
	refX, refY := t.reinsertReference(n)
	order := make([]int, count)
	dist := make([]float64, count)
	for i := range order {
		order[i] = i
		cx, cy := n.childBox(i).Center()
		dx, dy := cx-refX, cy-refY
		dist[i] = dx*dx + dy*dy
	}
	sort.SliceStable(order, func(a, b int) bool {
		return dist[order[a]] > dist[order[b]]
	})
	removed := order[:t.cfg.ReinsertCount]
	tracer().Debugf("rstar: forced reinsertion of %d children at level %d", len(removed), level)

	var pending []placement
	if n.leaf {
		pending = make([]placement, 0, len(removed))
		for _, i := range removed {
			pending = append(pending, placement{entry: n.entries[i]})
		}
		n.entries = keepByIndex(n.entries, removed)
	} else {
		pending = make([]placement, 0, len(removed))
		for _, i := range removed {
			pending = append(pending, placement{sub: n.children[i]})
		}
		n.children = keepByIndex(n.children, removed)
		for _, p := range pending {
			p.sub.parent = nil
		}
	}
	n.recomputeBox()
	for _, p := range pending {
		t.place(p, level)
	}
}

// reinsertReference returns the distance-ordering reference point for
// forced reinsertion: the node center, or the children's center of mass.
func (t *Tree) reinsertReference(n *node) (float64, float64) {
	if t.cfg.ReinsertReference == ReinsertCenter {
		return n.box.Center()
	}
	var sx, sy float64
	count := n.fanout()
	for i := 0; i < count; i++ {
		cx, cy := n.childBox(i).Center()
		sx += cx
		sy += cy
	}
	return sx / float64(count), sy / float64(count)
}

// keepByIndex returns src without the slots named in drop.
func keepByIndex[T any](src []T, drop []int) []T {
	dropped := make(map[int]bool, len(drop))
	for _, i := range drop {
		dropped[i] = true
	}
	kept := make([]T, 0, len(src)-len(drop))
	for i, v := range src {
		if !dropped[i] {
			kept = append(kept, v)
		}
	}
	return kept
}
