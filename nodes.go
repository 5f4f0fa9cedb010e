package rstar

import (
	"github.com/npillmayer/rstar/rect"
)

// Entry pairs a stored user rectangle with its stable handle.
type Entry struct {
	ID  uint64
	Box rect.Rect
}

// node is a tree node, either a leaf holding entries or a branch holding
// child nodes. A node's box equals the minimum bounding rectangle of its
// contents whenever it is non-empty.
//
// The parent link is a relation only; the parent owns the child. The root
// has a nil parent.
type node struct {
	id       uint64
	leaf     bool
	box      rect.Rect
	parent   *node
	entries  []Entry // leaf payload
	children []*node // branch payload
}

// fanout returns the number of children (entries for a leaf).
func (n *node) fanout() int {
	if n.leaf {
		return len(n.entries)
	}
	return len(n.children)
}

// childBox returns the box of child i, independent of leaf-ness.
func (n *node) childBox(i int) rect.Rect {
	if n.leaf {
		return n.entries[i].Box
	}
	return n.children[i].box
}

// recomputeBox restores box = MBR(contents). Empty nodes keep their stale
// box; they only exist transiently during condensation.
func (n *node) recomputeBox() {
	if n.fanout() == 0 {
		return
	}
	mbr := n.childBox(0)
	for i := 1; i < n.fanout(); i++ {
		mbr = rect.Union(mbr, n.childBox(i))
	}
	n.box = mbr
}

// makeLeaf materializes a new leaf node holding the given entries.
func (t *Tree) makeLeaf(entries []Entry) *node {
	n := &node{id: t.nextNodeID, leaf: true, entries: entries}
	t.nextNodeID++
	n.recomputeBox()
	return n
}

// makeBranch materializes a new branch node owning the given children.
func (t *Tree) makeBranch(children []*node) *node {
	n := &node{id: t.nextNodeID, children: children}
	t.nextNodeID++
	for _, c := range children {
		c.parent = n
	}
	n.recomputeBox()
	return n
}

// removeChildAt removes child slot i from a branch node.
func removeChildAt(n *node, i int) *node {
	assert(!n.leaf, "removeChildAt called on a leaf")
	assert(i >= 0 && i < len(n.children), "removeChildAt index out of range")
	child := n.children[i]
	n.children = append(n.children[:i], n.children[i+1:]...)
	child.parent = nil
	return child
}

// removeEntryAt removes entry slot i from a leaf node.
func removeEntryAt(n *node, i int) Entry {
	assert(n.leaf, "removeEntryAt called on a branch")
	assert(i >= 0 && i < len(n.entries), "removeEntryAt index out of range")
	e := n.entries[i]
	n.entries = append(n.entries[:i], n.entries[i+1:]...)
	return e
}
