package rstar

import (
	"github.com/npillmayer/rstar/rect"
)

// Tree is a dynamic R*-tree over 2D axis-aligned rectangles.
//
// The zero value is not usable; create trees with New. A tree must not be
// mutated concurrently: public operations require exclusive access.
type Tree struct {
	cfg    Config
	root   *node
	height int // number of node levels; 0 means empty tree

	// entries maps a live handle to the leaf holding it. It is the single
	// source of truth for handle liveness.
	entries map[uint64]*node

	nextEntryID uint64
	nextNodeID  uint64

	// reinserted records the levels that have already performed a forced
	// reinsertion during the current top-level mutation. Levels count from
	// the leaves: leaf level = 0, root level = height-1.
	reinserted map[int]bool
}

// New creates an empty tree. Invalid configuration values are clamped to
// their legal ranges, so New accepts any Config.
func New(cfg Config) *Tree {
	return &Tree{
		cfg:        cfg.normalized(),
		entries:    make(map[uint64]*node),
		reinserted: make(map[int]bool),
	}
}

// Config returns a copy of the effective tree configuration.
func (t *Tree) Config() Config {
	return t.cfg
}

// IsEmpty reports whether the tree holds no entries.
func (t *Tree) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of live entries.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Height returns the number of node levels, where 0 means empty and 1
// means a single leaf root.
func (t *Tree) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Bounds returns the minimum bounding rectangle of all stored entries.
// The second return value is false for an empty tree.
func (t *Tree) Bounds() (rect.Rect, bool) {
	if t.IsEmpty() {
		return rect.Rect{}, false
	}
	return t.root.box, true
}

// Entry returns the live entry for a handle, or false if the handle is
// unknown.
func (t *Tree) Entry(id uint64) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	leaf, ok := t.entries[id]
	if !ok {
		return Entry{}, false
	}
	for _, e := range leaf.entries {
		if e.ID == id {
			return e, true
		}
	}
	assert(false, "entry map points to a leaf not holding the entry")
	return Entry{}, false
}

// ForEach walks all live entries in traversal order. Iteration stops early
// if the callback returns false.
func (t *Tree) ForEach(fn func(Entry) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.forEachNode(t.root, fn)
}

func (t *Tree) forEachNode(n *node, fn func(Entry) bool) bool {
	if n.leaf {
		for _, e := range n.entries {
			if !fn(e) {
				return false
			}
		}
		return true
	}
	for _, child := range n.children {
		if !t.forEachNode(child, fn) {
			return false
		}
	}
	return true
}

// Insert stores a rectangle and returns its handle. Handles are assigned
// monotonically and never reused, including after deletion.
//
// Rectangles with negative extents are normalized by rect.New before they
// reach the tree; callers constructing Rect values directly should do the
// same.
func (t *Tree) Insert(box rect.Rect) uint64 {
	id := t.nextEntryID
	t.nextEntryID++
	e := Entry{ID: id, Box: box}
	if t.root == nil {
		t.root = t.makeLeaf([]Entry{e})
		t.height = 1
		t.entries[id] = t.root
		return id
	}
	t.place(placement{entry: e}, 0)
	clear(t.reinserted)
	return id
}
