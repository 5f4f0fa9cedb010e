package rect

import (
	"errors"
	"testing"
)

func TestNewNormalizesNegativeExtents(t *testing.T) {
	r := New(10, 10, -4, -6)
	if r != (Rect{X: 6, Y: 4, W: 4, H: 6}) {
		t.Fatalf("unexpected normalized rect: %+v", r)
	}
	if r != New(6, 4, 4, 6) {
		t.Fatalf("normalization should be equivalent to the flipped rect")
	}
}

func TestAreaPerimeterCenter(t *testing.T) {
	r := New(2, 3, 4, 6)
	if r.Area() != 24 {
		t.Fatalf("unexpected area: %v", r.Area())
	}
	if r.Perimeter() != 20 {
		t.Fatalf("unexpected perimeter: %v", r.Perimeter())
	}
	cx, cy := r.Center()
	if cx != 4 || cy != 6 {
		t.Fatalf("unexpected center: (%v, %v)", cx, cy)
	}
}

func TestUnion(t *testing.T) {
	u := Union(New(0, 0, 2, 2), New(5, 1, 1, 4))
	if u != (Rect{X: 0, Y: 0, W: 6, H: 5}) {
		t.Fatalf("unexpected union: %+v", u)
	}
	r := New(1, 1, 3, 3)
	if Union(r, r) != r {
		t.Fatalf("union with itself should be the identity")
	}
}

func TestIntersects(t *testing.T) {
	a := New(0, 0, 10, 10)
	cases := []struct {
		b    Rect
		want bool
	}{
		{New(5, 5, 10, 10), true},
		{New(10, 0, 5, 5), true}, // touching edge
		{New(10, 10, 1, 1), true},
		{New(11, 0, 1, 1), false},
		{New(0, -2, 10, 1), false},
		{New(2, 2, 2, 2), true}, // contained
	}
	for i, c := range cases {
		if got := a.Intersects(c.b); got != c.want {
			t.Errorf("case %d: Intersects(%+v) = %v, want %v", i, c.b, got, c.want)
		}
		if got := c.b.Intersects(a); got != c.want {
			t.Errorf("case %d: Intersects is not symmetric", i)
		}
	}
}

func TestOverlapSigns(t *testing.T) {
	a := New(0, 0, 10, 10)

	ox, oy := Overlap(a, New(5, 5, 10, 10))
	if ox != 5 || oy != 5 {
		t.Fatalf("overlapping boxes: got (%v, %v)", ox, oy)
	}

	// Touching at x=10: zero overlap length on x, full span on y.
	ox, oy = Overlap(a, New(10, 0, 5, 5))
	if ox != 0 || oy != 5 {
		t.Fatalf("touching boxes: got (%v, %v)", ox, oy)
	}

	// Separated by a gap of 3 on x.
	ox, oy = Overlap(a, New(13, 0, 5, 5))
	if ox != -3 || oy != 5 {
		t.Fatalf("separated boxes: got (%v, %v)", ox, oy)
	}
}

func TestOverlapArea(t *testing.T) {
	a := New(0, 0, 10, 10)
	if got := OverlapArea(a, New(8, 8, 10, 10)); got != 4 {
		t.Fatalf("unexpected overlap area: %v", got)
	}
	if got := OverlapArea(a, New(10, 0, 5, 5)); got != 0 {
		t.Fatalf("touching boxes must have zero overlap area, got %v", got)
	}
	if got := OverlapArea(a, New(20, 20, 5, 5)); got != 0 {
		t.Fatalf("disjoint boxes must have zero overlap area, got %v", got)
	}
}

func TestContainsPointIsHalfOpen(t *testing.T) {
	r := New(0, 0, 10, 10)
	if !r.ContainsPoint(0, 0) {
		t.Fatalf("origin corner must be inside")
	}
	if r.ContainsPoint(10, 5) || r.ContainsPoint(5, 10) {
		t.Fatalf("right/bottom edges must be outside")
	}
	if !r.ContainsPoint(9.999, 9.999) {
		t.Fatalf("interior point must be inside")
	}
}

func TestContains(t *testing.T) {
	outer := New(0, 0, 10, 10)
	if !outer.Contains(New(2, 2, 3, 3)) {
		t.Fatalf("inner box should be contained")
	}
	if !outer.Contains(outer) {
		t.Fatalf("a box contains itself")
	}
	if outer.Contains(New(8, 8, 4, 4)) {
		t.Fatalf("straddling box should not be contained")
	}
}

func TestIntersectsCircle(t *testing.T) {
	r := New(0, 0, 10, 10)
	if !r.IntersectsCircle(5, 5, 1) {
		t.Fatalf("circle inside the box must intersect")
	}
	if !r.IntersectsCircle(15, 5, 5) {
		t.Fatalf("circle touching the right edge must intersect")
	}
	if r.IntersectsCircle(15, 5, 4.9) {
		t.Fatalf("circle short of the box must not intersect")
	}
	// Corner case: distance to corner (10,10) is 5*sqrt(2) ~ 7.07.
	if r.IntersectsCircle(15, 15, 7) {
		t.Fatalf("circle short of the corner must not intersect")
	}
	if !r.IntersectsCircle(15, 15, 7.1) {
		t.Fatalf("circle past the corner must intersect")
	}
}

func TestInflate(t *testing.T) {
	r := New(5, 5, 2, 2).Inflate(3)
	if r != (Rect{X: 2, Y: 2, W: 8, H: 8}) {
		t.Fatalf("unexpected inflated rect: %+v", r)
	}
}

func TestMBR(t *testing.T) {
	mbr, err := MBR([]Rect{New(0, 0, 1, 1), New(4, 4, 2, 2), New(-3, 2, 1, 1)})
	if err != nil {
		t.Fatalf("unexpected MBR error: %v", err)
	}
	if mbr != (Rect{X: -3, Y: 0, W: 9, H: 6}) {
		t.Fatalf("unexpected MBR: %+v", mbr)
	}
	_, err = MBR(nil)
	if !errors.Is(err, ErrEmptyCollection) {
		t.Fatalf("expected ErrEmptyCollection, got %v", err)
	}
}
