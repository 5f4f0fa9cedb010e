package rect

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle with origin (X, Y) and non-negative
// extents (W, H).
//
// The interior is half-open: a point (px, py) lies inside iff
// X <= px < X+W and Y <= py < Y+H. Rectangles are immutable values;
// operations return new rectangles.
type Rect struct {
	X, Y float64
	W, H float64
}

// New creates a rectangle from origin and extents.
//
// Negative extents are normalized: the origin is shifted and the extent
// negated, so the returned rectangle always satisfies W >= 0 and H >= 0.
func New(x, y, w, h float64) Rect {
	if w < 0 {
		x += w
		w = -w
	}
	if h < 0 {
		y += h
		h = -h
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Area returns W * H.
func (r Rect) Area() float64 {
	return r.W * r.H
}

// Perimeter returns the margin 2 * (W + H).
func (r Rect) Perimeter() float64 {
	return 2 * (r.W + r.H)
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Union returns the smallest rectangle containing both a and b.
func Union(a, b Rect) Rect {
	x := math.Min(a.X, b.X)
	y := math.Min(a.Y, b.Y)
	right := math.Max(a.Right(), b.Right())
	bottom := math.Max(a.Bottom(), b.Bottom())
	return Rect{X: x, Y: y, W: right - x, H: bottom - y}
}

// Intersects reports whether r and s share at least a point or an edge.
// Touching edges count as intersecting.
func (r Rect) Intersects(s Rect) bool {
	return r.X <= s.Right() && s.X <= r.Right() &&
		r.Y <= s.Bottom() && s.Y <= r.Bottom()
}

// Overlap returns the signed per-axis overlaps of a and b.
//
// A positive component is the length of the shared interval on that axis,
// a negative component is the size of the gap separating a and b on it.
func Overlap(a, b Rect) (ox, oy float64) {
	ox = math.Min(a.Right(), b.Right()) - math.Max(a.X, b.X)
	oy = math.Min(a.Bottom(), b.Bottom()) - math.Max(a.Y, b.Y)
	return ox, oy
}

// OverlapArea returns the area shared by a and b, or 0 when they are disjoint.
func OverlapArea(a, b Rect) float64 {
	ox, oy := Overlap(a, b)
	if ox <= 0 || oy <= 0 {
		return 0
	}
	return ox * oy
}

// ContainsPoint reports whether (px, py) lies in the half-open interior
// [X, X+W) x [Y, Y+H).
func (r Rect) ContainsPoint(px, py float64) bool {
	return px >= r.X && px < r.Right() && py >= r.Y && py < r.Bottom()
}

// Contains reports whether s lies entirely within r.
func (r Rect) Contains(s Rect) bool {
	return s.X >= r.X && s.Right() <= r.Right() &&
		s.Y >= r.Y && s.Bottom() <= r.Bottom()
}

// IntersectsCircle reports whether the circle with center (cx, cy) and
// radius rad reaches the rectangle. The test clamps the circle center to
// the rectangle and compares the remaining distance against rad.
func (r Rect) IntersectsCircle(cx, cy, rad float64) bool {
	dx := cx - clamp(cx, r.X, r.Right())
	dy := cy - clamp(cy, r.Y, r.Bottom())
	return dx*dx+dy*dy <= rad*rad
}

// Inflate grows the rectangle by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return New(r.X-d, r.Y-d, r.W+2*d, r.H+2*d)
}

// String implements the Stringer interface.
func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.X, r.Y, r.W, r.H)
}

// MBR returns the minimum bounding rectangle over a non-empty collection.
func MBR(boxes []Rect) (Rect, error) {
	if len(boxes) == 0 {
		return Rect{}, ErrEmptyCollection
	}
	mbr := boxes[0]
	for _, b := range boxes[1:] {
		mbr = Union(mbr, b)
	}
	return mbr, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
