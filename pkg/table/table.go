// Package table stores one value per coordinate of a toroidal grid in a
// flat row-major slice. Tables are built eagerly and never mutated: every
// transformation allocates a fresh table, so a generation of cells can be
// materialized once and then read freely.
package table

import (
	"sync"

	"torus-ca/pkg/torus"
)

// Table is a dense, immutable mapping from every coordinate in its bounds
// to a value of type A.
type Table[A any] struct {
	bounds torus.Bounds
	cells  []A
}

// Tabulate builds a table by calling gen once per coordinate, row-major
// (y outer, x inner). The visit order is fixed, so stateful generators
// such as seeded RNG fills stay deterministic.
func Tabulate[A any](b torus.Bounds, gen func(torus.Coord) A) Table[A] {
	cells := make([]A, b.Len())
	for y := 0; y < b.H; y++ {
		base := y * b.W
		for x := 0; x < b.W; x++ {
			cells[base+x] = gen(torus.Coord{X: x, Y: y})
		}
	}
	return Table[A]{bounds: b, cells: cells}
}

// TabulateN builds the same table as Tabulate with rows partitioned across
// up to workers goroutines. Each worker writes only its own slots and gen
// must be pure; the table is not visible until every worker has finished.
func TabulateN[A any](b torus.Bounds, workers int, gen func(torus.Coord) A) Table[A] {
	if workers > b.H {
		workers = b.H
	}
	if workers <= 1 {
		return Tabulate(b, gen)
	}

	cells := make([]A, b.Len())
	rows := (b.H + workers - 1) / workers
	var wg sync.WaitGroup
	for y0 := 0; y0 < b.H; y0 += rows {
		y1 := y0 + rows
		if y1 > b.H {
			y1 = b.H
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				base := y * b.W
				for x := 0; x < b.W; x++ {
					cells[base+x] = gen(torus.Coord{X: x, Y: y})
				}
			}
		}(y0, y1)
	}
	wg.Wait()
	return Table[A]{bounds: b, cells: cells}
}

// At returns the value stored for c. The coordinate is wrapped first, so
// lookups one step past an edge read the opposite edge.
func (t Table[A]) At(c torus.Coord) A {
	if !t.bounds.Contains(c) {
		c = t.bounds.Wrap(c.X, c.Y)
	}
	return t.cells[t.bounds.Index(c)]
}

// Bounds returns the extent the table was built over.
func (t Table[A]) Bounds() torus.Bounds { return t.bounds }

// Len is the number of stored values.
func (t Table[A]) Len() int { return len(t.cells) }

// Each visits every value in row-major order.
func (t Table[A]) Each(fn func(torus.Coord, A)) {
	for i, v := range t.cells {
		fn(t.bounds.CoordAt(i), v)
	}
}

// Map applies f to every stored value, producing a new table over the same
// bounds. The original generator is never re-invoked.
func Map[A, B any](t Table[A], f func(A) B) Table[B] {
	cells := make([]B, len(t.cells))
	for i, v := range t.cells {
		cells[i] = f(v)
	}
	return Table[B]{bounds: t.bounds, cells: cells}
}
