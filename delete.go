package rstar

import (
	"github.com/npillmayer/rstar/rect"
)

// orphan is a node cut out during condensation, remembered together with
// the level its children must be reinserted at.
type orphan struct {
	level int
	n     *node
}

// Delete removes the entry with the given handle and returns its
// rectangle. The second return value is false, and the tree unchanged, if
// the handle is unknown.
//
// Underfull nodes on the path to the root are condensed away; their
// children are reinserted at their original levels, so all leaves stay at
// the same depth.
func (t *Tree) Delete(id uint64) (rect.Rect, bool) {
	leaf, ok := t.entries[id]
	if !ok {
		return rect.Rect{}, false
	}
	slot := -1
	for i, e := range leaf.entries {
		if e.ID == id {
			slot = i
			break
		}
	}
	assert(slot >= 0, "entry map points to a leaf not holding the entry")
	removed := removeEntryAt(leaf, slot)
	delete(t.entries, id)
	leaf.recomputeBox()

	t.condense(leaf)
	t.collapseRoot()
	clear(t.reinserted)
	return removed.Box, true
}

// condense ascends from a shrunken leaf, cutting out nodes that fell below
// the minimum fill and repairing bounding rectangles, then reinserts the
// orphans' children highest level first.
func (t *Tree) condense(leaf *node) {
	var orphans []orphan
	n := leaf
	for level := 0; n != t.root; level++ {
		parent := n.parent
		if n.fanout() < t.cfg.MinFill {
			slot := childSlot(parent, n)
			removeChildAt(parent, slot)
			orphans = append(orphans, orphan{level: level, n: n})
		}
		parent.recomputeBox()
		n = parent
	}

	// Reinsert top-down: a higher orphan's children are themselves deeper
	// subtrees, so placing them first keeps leaf depths aligned.
	for i := len(orphans) - 1; i >= 0; i-- {
		o := orphans[i]
		if o.n.leaf {
			for _, e := range o.n.entries {
				t.place(placement{entry: e}, o.level)
			}
			o.n.entries = nil
		} else {
			for _, c := range o.n.children {
				c.parent = nil
				t.place(placement{sub: c}, o.level)
			}
			o.n.children = nil
		}
	}
}

// collapseRoot restores the root rules after deletion: a branch root with
// a single child is replaced by that child, and an empty leaf root empties
// the tree.
func (t *Tree) collapseRoot() {
	for t.root != nil && !t.root.leaf && len(t.root.children) == 1 {
		child := t.root.children[0]
		child.parent = nil
		t.root.children = nil
		t.root = child
		t.height--
		tracer().Debugf("rstar: root collapse, tree height now %d", t.height)
	}
	if t.root != nil && t.root.leaf && len(t.root.entries) == 0 {
		t.root = nil
		t.height = 0
	}
}

// childSlot locates a child within its parent by node identity.
func childSlot(parent, child *node) int {
	for i, c := range parent.children {
		if c.id == child.id {
			return i
		}
	}
	assert(false, "child not found in its parent")
	return -1
}
