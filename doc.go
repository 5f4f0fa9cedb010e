/*
Package rstar provides a dynamic in-memory spatial index for 2D
axis-aligned rectangles, organized as an R*-tree.

Clients insert rectangles and receive stable numeric handles in return.
The index supports window (rectangle intersection) queries, point-stabbing
queries, circular range queries, nearest-neighbor queries, and deletion by
handle.

	tree := rstar.New(rstar.Config{})
	id := tree.Insert(rect.New(10, 10, 4, 4))
	hits := tree.Search(rect.New(0, 0, 20, 20), nil)
	tree.Delete(id)

Internally the tree follows the R*-tree design: insertion descends via a
least-enlargement heuristic, re-ranked by overlap cost directly above the
leaf level; overflowing non-root nodes are first relieved by forced
reinsertion of their outermost children, and nodes are split along the axis
with the smallest perimeter sum over candidate distributions when
reinsertion is spent or the overflow is at the root.
Deletion condenses underfull nodes upward and reinserts orphaned subtrees
at their original levels, which keeps all leaves at the same depth.

The index is single-threaded: callers sharing a tree across goroutines
must provide their own exclusion.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package rstar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rstar'
func tracer() tracing.Trace {
	return tracing.Select("rstar")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
