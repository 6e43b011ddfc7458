// Package focus pairs a dense table with a distinguished coordinate and
// gives it the comonadic operations a cellular automaton needs: Extract
// reads the focused value, Experiment reads a neighborhood, and Extend
// produces a whole next generation in one eager pass.
package focus

import (
	"torus-ca/pkg/table"
	"torus-ca/pkg/torus"
)

// Grid is an immutable view of a table focused at one coordinate. Copies
// share the table; refocusing never copies cell data.
type Grid[A any] struct {
	cells table.Table[A]
	at    torus.Coord
}

// New wraps a table with a focus. The focus is normalized.
func New[A any](t table.Table[A], at torus.Coord) Grid[A] {
	return Grid[A]{cells: t, at: t.Bounds().Wrap(at.X, at.Y)}
}

// Bounds returns the extent of the underlying table.
func (g Grid[A]) Bounds() torus.Bounds { return g.cells.Bounds() }

// Focus returns the focused coordinate.
func (g Grid[A]) Focus() torus.Coord { return g.at }

// Table returns the shared underlying table.
func (g Grid[A]) Table() table.Table[A] { return g.cells }

// Peek reads the value at c without moving the focus.
func (g Grid[A]) Peek(c torus.Coord) A { return g.cells.At(c) }

// Extract reads the value at the focus.
func (g Grid[A]) Extract() A { return g.cells.At(g.at) }

// Experiment reads the values at every coordinate relate derives from the
// focus, in relate's order.
func (g Grid[A]) Experiment(relate func(torus.Coord) []torus.Coord) []A {
	coords := relate(g.at)
	out := make([]A, len(coords))
	for i, c := range coords {
		out[i] = g.cells.At(c)
	}
	return out
}

// Seek refocuses the grid at c over the same table.
func (g Grid[A]) Seek(c torus.Coord) Grid[A] {
	return Grid[A]{cells: g.cells, at: g.cells.Bounds().Wrap(c.X, c.Y)}
}

// Map applies f to every cell, keeping the focus.
func Map[A, B any](g Grid[A], f func(A) B) Grid[B] {
	return Grid[B]{cells: table.Map(g.cells, f), at: g.at}
}

// Duplicate builds the grid of grids: at every coordinate, the original
// grid refocused there. All entries share g's table.
func Duplicate[A any](g Grid[A]) Grid[Grid[A]] {
	t := table.Tabulate(g.Bounds(), func(c torus.Coord) Grid[A] {
		return Grid[A]{cells: g.cells, at: c}
	})
	return Grid[Grid[A]]{cells: t, at: g.at}
}

// Extend evaluates f against the grid refocused at every coordinate and
// collects the results into a new grid. Observably this is Map over
// Duplicate, fused into a single table build: each cell evaluates f once
// against the shared, already-complete table, never against a chain of
// pending computations.
func Extend[A, B any](g Grid[A], f func(Grid[A]) B) Grid[B] {
	t := table.Tabulate(g.Bounds(), func(c torus.Coord) B {
		return f(Grid[A]{cells: g.cells, at: c})
	})
	return Grid[B]{cells: t, at: g.at}
}

// ExtendN is Extend with the table build spread across up to workers
// goroutines. f must be read-only, which any function of the grid view
// is; every evaluation sees only the complete prior table.
func ExtendN[A, B any](g Grid[A], workers int, f func(Grid[A]) B) Grid[B] {
	t := table.TabulateN(g.Bounds(), workers, func(c torus.Coord) B {
		return f(Grid[A]{cells: g.cells, at: c})
	})
	return Grid[B]{cells: t, at: g.at}
}
