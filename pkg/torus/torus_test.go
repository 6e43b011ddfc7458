package torus

import (
	"errors"
	"testing"
)

func TestNewRejectsNonPositiveBounds(t *testing.T) {
	cases := [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -1}, {0, 0}}
	for _, c := range cases {
		if _, err := New(c[0], c[1]); !errors.Is(err, ErrInvalidBound) {
			t.Fatalf("New(%d, %d) err = %v, want ErrInvalidBound", c[0], c[1], err)
		}
	}
	if _, err := New(3, 4); err != nil {
		t.Fatalf("New(3, 4) err = %v", err)
	}
}

func TestWrapNegativeInputs(t *testing.T) {
	b, _ := New(5, 4)

	cases := []struct {
		x, y int
		want Coord
	}{
		{0, 0, Coord{0, 0}},
		{4, 3, Coord{4, 3}},
		{5, 4, Coord{0, 0}},
		{-1, 0, Coord{4, 0}},
		{0, -1, Coord{0, 3}},
		{-6, -5, Coord{4, 3}},
		{13, 11, Coord{3, 3}},
	}
	for _, c := range cases {
		if got := b.Wrap(c.x, c.y); got != c.want {
			t.Fatalf("Wrap(%d, %d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestAddWrapsAroundEdges(t *testing.T) {
	b, _ := New(3, 3)
	got := b.Add(Coord{2, 2}, Coord{1, 1})
	if got != (Coord{0, 0}) {
		t.Fatalf("Add past the corner = %v, want {0 0}", got)
	}
	got = b.Add(Coord{0, 0}, Coord{-1, -1})
	if got != (Coord{2, 2}) {
		t.Fatalf("Add before the corner = %v, want {2 2}", got)
	}
}

func TestIndexCoordAtRoundTrip(t *testing.T) {
	b, _ := New(7, 3)
	for i := 0; i < b.Len(); i++ {
		c := b.CoordAt(i)
		if !b.Contains(c) {
			t.Fatalf("CoordAt(%d) = %v out of bounds", i, c)
		}
		if got := b.Index(c); got != i {
			t.Fatalf("Index(CoordAt(%d)) = %d", i, got)
		}
	}
}

func TestWrapPanicsOnZeroBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Wrap on zero Bounds did not panic")
		}
	}()
	Bounds{}.Wrap(1, 1)
}
