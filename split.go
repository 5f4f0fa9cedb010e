package rstar

import (
	"sort"

	"github.com/npillmayer/rstar/rect"
)

// sortKey enumerates the axis/edge combinations examined by split
// selection: {x, y} crossed with {low edge, high edge}.
type sortKey int

const (
	sortXLow sortKey = iota
	sortXHigh
	sortYLow
	sortYHigh
)

func (k sortKey) axis() int {
	if k <= sortXHigh {
		return 0
	}
	return 1
}

func (k sortKey) value(b rect.Rect) float64 {
	switch k {
	case sortXLow:
		return b.X
	case sortXHigh:
		return b.Right()
	case sortYLow:
		return b.Y
	default:
		return b.Bottom()
	}
}

// split divides an overfull node into two. The node keeps the first group
// of the chosen distribution; the returned sibling holds the rest and is
// not yet attached to a parent.
//
// Axis selection minimizes the summed group perimeters over all candidate
// distributions per axis and sort edge; distribution selection then
// minimizes inter-group overlap, with total area as tie-break.
func (t *Tree) split(n *node) *node {
	count := n.fanout()
	assert(count == t.cfg.MaxFill+1, "split called on a node that is not overfull")
	boxes := make([]rect.Rect, count)
	for i := range boxes {
		boxes[i] = n.childBox(i)
	}
	k := t.cfg.MaxFill - 2*t.cfg.MinFill + 2

	var chosen sortKey
	var chosenOrder []int
	bestScore := 0.0
	for _, key := range []sortKey{sortXLow, sortXHigh, sortYLow, sortYHigh} {
		order := sortedOrder(boxes, key)
		score := marginSum(boxes, order, t.cfg.MinFill, k)
		// Strict < with x keys first: ties between axes keep x.
		if chosenOrder == nil || score < bestScore {
			chosen = key
			chosenOrder = order
			bestScore = score
		}
	}

	size := t.chooseDistribution(boxes, chosenOrder, k)
	tracer().Debugf("rstar: split node #%d on axis %d, groups %d/%d", n.id, chosen.axis(), size, count-size)

	sibling := &node{id: t.nextNodeID, leaf: n.leaf}
	t.nextNodeID++
	if n.leaf {
		sorted := make([]Entry, count)
		for i, idx := range chosenOrder {
			sorted[i] = n.entries[idx]
		}
		n.entries = sorted[:size:size]
		sibling.entries = sorted[size:]
		for _, e := range sibling.entries {
			t.entries[e.ID] = sibling
		}
	} else {
		sorted := make([]*node, count)
		for i, idx := range chosenOrder {
			sorted[i] = n.children[idx]
		}
		n.children = sorted[:size:size]
		sibling.children = sorted[size:]
		for _, c := range sibling.children {
			c.parent = sibling
		}
	}
	n.recomputeBox()
	sibling.recomputeBox()
	return sibling
}

// chooseDistribution picks the size of the first group among the k
// candidate distributions of the already sorted children.
func (t *Tree) chooseDistribution(boxes []rect.Rect, order []int, k int) int {
	prefix, suffix := groupBounds(boxes, order)
	bestSize := -1
	bestOverlap, bestArea := 0.0, 0.0
	for j := 1; j <= k; j++ {
		size := t.cfg.MinFill - 1 + j
		overlap := rect.OverlapArea(prefix[size-1], suffix[size])
		area := prefix[size-1].Area() + suffix[size].Area()
		if bestSize < 0 || overlap < bestOverlap ||
			(overlap == bestOverlap && area < bestArea) {
			bestSize = size
			bestOverlap = overlap
			bestArea = area
		}
	}
	return bestSize
}

// marginSum accumulates perimeter(first group) + perimeter(second group)
// over the k candidate distributions of the sorted children.
func marginSum(boxes []rect.Rect, order []int, minFill, k int) float64 {
	prefix, suffix := groupBounds(boxes, order)
	var sum float64
	for j := 1; j <= k; j++ {
		size := minFill - 1 + j
		sum += prefix[size-1].Perimeter() + suffix[size].Perimeter()
	}
	return sum
}

// groupBounds precomputes, for a sorted child order, the MBR of every
// prefix and every suffix.
func groupBounds(boxes []rect.Rect, order []int) (prefix, suffix []rect.Rect) {
	count := len(order)
	prefix = make([]rect.Rect, count)
	suffix = make([]rect.Rect, count)
	prefix[0] = boxes[order[0]]
	for i := 1; i < count; i++ {
		prefix[i] = rect.Union(prefix[i-1], boxes[order[i]])
	}
	suffix[count-1] = boxes[order[count-1]]
	for i := count - 2; i >= 0; i-- {
		suffix[i] = rect.Union(suffix[i+1], boxes[order[i]])
	}
	return prefix, suffix
}

func sortedOrder(boxes []rect.Rect, key sortKey) []int {
	order := make([]int, len(boxes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return key.value(boxes[order[a]]) < key.value(boxes[order[b]])
	})
	return order
}
