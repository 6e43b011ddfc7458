package life

import (
	"testing"

	"torus-ca/pkg/focus"
	"torus-ca/pkg/torus"
)

func mustBounds(t *testing.T, w, h int) torus.Bounds {
	t.Helper()
	b, err := torus.New(w, h)
	if err != nil {
		t.Fatalf("torus.New(%d, %d): %v", w, h, err)
	}
	return b
}

// expectLive asserts the grid is live exactly at the listed coordinates.
func expectLive(t *testing.T, g focus.Grid[bool], live ...torus.Coord) {
	t.Helper()
	b := g.Bounds()
	want := make(map[torus.Coord]bool, len(live))
	for _, c := range live {
		want[b.Wrap(c.X, c.Y)] = true
	}
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			c := torus.Coord{X: x, Y: y}
			if g.Peek(c) != want[c] {
				t.Fatalf("cell %v alive=%v, expected %v", c, g.Peek(c), want[c])
			}
		}
	}
}

func TestNeighborsWrapAroundEdges(t *testing.T) {
	b := mustBounds(t, 5, 5)
	got := Neighbors(b)(torus.Coord{})
	if len(got) != 8 {
		t.Fatalf("corner has %d neighbors, want 8", len(got))
	}
	seen := map[torus.Coord]bool{}
	for _, c := range got {
		if !b.Contains(c) {
			t.Fatalf("neighbor %v is not normalized", c)
		}
		if seen[c] {
			t.Fatalf("neighbor %v repeated", c)
		}
		seen[c] = true
	}
	for _, c := range []torus.Coord{{X: 4, Y: 4}, {X: 0, Y: 4}, {X: 4, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 4, Y: 1}, {X: 1, Y: 4}} {
		if !seen[c] {
			t.Fatalf("corner neighborhood missing %v", c)
		}
	}
}

func TestBlinkerOscillates(t *testing.T) {
	b := mustBounds(t, 5, 5)
	horizontal := []torus.Coord{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}}
	g := MakeGrid(b, horizontal)

	g = Step(g)
	expectLive(t, g, torus.Coord{X: 2, Y: 1}, torus.Coord{X: 2, Y: 2}, torus.Coord{X: 2, Y: 3})

	g = Step(g)
	expectLive(t, g, horizontal...)
}

func TestBlockIsStill(t *testing.T) {
	b := mustBounds(t, 6, 6)
	block := []torus.Coord{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	g := Step(MakeGrid(b, block))
	expectLive(t, g, block...)
}

func TestIsolatedCellDies(t *testing.T) {
	b := mustBounds(t, 5, 5)
	g := Step(MakeGrid(b, []torus.Coord{{X: 2, Y: 2}}))
	expectLive(t, g)
}

func TestBirthFromThreeNeighbors(t *testing.T) {
	b := mustBounds(t, 6, 6)
	// An L: (2,2) has exactly 3 live neighbors and is born; the three live
	// cells each keep 2 live neighbors and survive.
	g := Step(MakeGrid(b, []torus.Coord{{X: 1, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 3}}))
	expectLive(t, g,
		torus.Coord{X: 1, Y: 2}, torus.Coord{X: 1, Y: 3},
		torus.Coord{X: 2, Y: 3}, torus.Coord{X: 2, Y: 2})
}

func TestOvercrowdedCellDies(t *testing.T) {
	b := mustBounds(t, 6, 6)
	// Plus shape: the center has 4 live neighbors and dies.
	g := MakeGrid(b, []torus.Coord{{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 1}, {X: 2, Y: 3}})
	next := Step(g)
	if next.Peek(torus.Coord{X: 2, Y: 2}) {
		t.Fatal("center of plus shape survived with 4 neighbors")
	}
}

func TestGliderWrapsAcrossTheTorus(t *testing.T) {
	b := mustBounds(t, 8, 8)
	glider := []torus.Coord{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	g := MakeGrid(b, glider)

	// Period 4, displacement (1,1): after 4*8 steps the glider has crossed
	// the whole torus and is back where it started.
	for i := 0; i < 32; i++ {
		g = Step(g)
	}
	expectLive(t, g, glider...)
}

func TestStepIsDeterministic(t *testing.T) {
	b := mustBounds(t, 12, 9)
	a := Step(Random(b, 42, 0.4))
	c := Step(Random(b, 42, 0.4))
	for i := 0; i < b.Len(); i++ {
		at := b.CoordAt(i)
		if a.Peek(at) != c.Peek(at) {
			t.Fatalf("equal inputs diverged at %v", at)
		}
	}
	if a.Focus() != c.Focus() {
		t.Fatalf("foci diverged: %v vs %v", a.Focus(), c.Focus())
	}
}

func TestStepNMatchesStep(t *testing.T) {
	b := mustBounds(t, 16, 11)
	seed := Random(b, 7, 0.35)
	want := Step(seed)
	for _, workers := range []int{1, 2, 4, 8} {
		got := StepN(seed, workers)
		for i := 0; i < b.Len(); i++ {
			c := b.CoordAt(i)
			if got.Peek(c) != want.Peek(c) {
				t.Fatalf("workers=%d: cell %v = %v, want %v", workers, c, got.Peek(c), want.Peek(c))
			}
		}
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	b := mustBounds(t, 5, 5)
	g := MakeGrid(b, []torus.Coord{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}})
	_ = Step(g)
	expectLive(t, g, torus.Coord{X: 1, Y: 2}, torus.Coord{X: 2, Y: 2}, torus.Coord{X: 3, Y: 2})
}

func TestMakeGridNormalizesLiveSet(t *testing.T) {
	b := mustBounds(t, 5, 5)
	g := MakeGrid(b, []torus.Coord{{X: -1, Y: 0}, {X: 6, Y: 1}})
	expectLive(t, g, torus.Coord{X: 4, Y: 0}, torus.Coord{X: 1, Y: 1})
}

func TestRandomIsSeedDeterministic(t *testing.T) {
	b := mustBounds(t, 10, 10)
	a := Random(b, 99, 0.5)
	c := Random(b, 99, 0.5)
	for i := 0; i < b.Len(); i++ {
		at := b.CoordAt(i)
		if a.Peek(at) != c.Peek(at) {
			t.Fatalf("same seed produced different fills at %v", at)
		}
	}
	if d := Random(b, 0, 0); anyLive(d) {
		t.Fatal("density 0 produced live cells")
	}
	if d := Random(b, 0, 1); !allLive(d) {
		t.Fatal("density 1 left dead cells")
	}
}

func anyLive(g focus.Grid[bool]) bool {
	b := g.Bounds()
	for i := 0; i < b.Len(); i++ {
		if g.Peek(b.CoordAt(i)) {
			return true
		}
	}
	return false
}

func allLive(g focus.Grid[bool]) bool {
	b := g.Bounds()
	for i := 0; i < b.Len(); i++ {
		if !g.Peek(b.CoordAt(i)) {
			return false
		}
	}
	return true
}
