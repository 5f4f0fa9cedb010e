package rstar

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/rstar/rect"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDeleteUnknownHandle(t *testing.T) {
	tree := New(Config{})
	tree.Insert(rect.New(0, 0, 5, 5))
	if _, ok := tree.Delete(77); ok {
		t.Fatalf("delete of an unknown handle should fail")
	}
	if tree.Len() != 1 {
		t.Fatalf("failed delete must not mutate the tree")
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariants violated: %v", err)
	}
}

func TestDeleteCondensesAndCollapsesRoot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := New(Config{MaxFill: 4, MinFill: 2, ReinsertCount: 2})
	ids := make([]uint64, 5)
	for i := 0; i < 5; i++ {
		ids[i] = tree.Insert(rect.New(float64(i*10), 0, 5, 5))
	}
	if tree.Height() != 2 {
		t.Fatalf("fixture should have height 2, got %d", tree.Height())
	}

	// Empty out one leaf: its survivors are reinserted into the other one
	// and the root collapses onto the surviving leaf.
	first := tree.root.children[0]
	var victimIDs []uint64
	for _, e := range first.entries {
		victimIDs = append(victimIDs, e.ID)
	}
	for _, id := range victimIDs {
		if _, ok := tree.Delete(id); !ok {
			t.Fatalf("delete of live handle %d failed", id)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("invariants violated after delete of %d: %v", id, err)
		}
	}
	if tree.Height() != 1 {
		t.Fatalf("expected root collapse to height 1, got %d", tree.Height())
	}
	if tree.Len() != 5-len(victimIDs) {
		t.Fatalf("unexpected survivor count %d", tree.Len())
	}
	out := tree.Search(rect.New(0, 0, 45, 5), nil)
	if len(out) != tree.Len() {
		t.Fatalf("surviving entries not all findable: got %d, want %d", len(out), tree.Len())
	}
}

func TestInsertDeleteRoundTripLeavesEmptyTree(t *testing.T) {
	tree := New(Config{MaxFill: 4, MinFill: 2, ReinsertCount: 2})
	r := rand.New(rand.NewSource(7))
	var ids []uint64
	for i := 0; i < 50; i++ {
		box := rect.New(float64(r.Intn(100)), float64(r.Intn(100)), float64(r.Intn(10)+1), float64(r.Intn(10)+1))
		ids = append(ids, tree.Insert(box))
	}
	r.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	for _, id := range ids {
		if _, ok := tree.Delete(id); !ok {
			t.Fatalf("delete of live handle %d failed", id)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("invariants violated after delete of %d: %v", id, err)
		}
	}
	if !tree.IsEmpty() || tree.Height() != 0 || tree.Len() != 0 {
		t.Fatalf("tree not empty after deleting everything: height=%d len=%d", tree.Height(), tree.Len())
	}
}

func TestDeleteReturnsRemovedBox(t *testing.T) {
	tree := New(Config{MaxFill: 4, MinFill: 2})
	boxes := make(map[uint64]rect.Rect)
	for i := 0; i < 20; i++ {
		box := rect.New(float64(i*4), float64((i*9)%13), 2, 3)
		boxes[tree.Insert(box)] = box
	}
	for id, want := range boxes {
		got, ok := tree.Delete(id)
		if !ok {
			t.Fatalf("delete of live handle %d failed", id)
		}
		if got != want {
			t.Fatalf("delete(%d) returned %+v, want %+v", id, got, want)
		}
	}
}
