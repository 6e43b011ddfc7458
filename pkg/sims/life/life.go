// Package life implements Conway's Game of Life over a focused toroidal
// grid. The whole generation step is one comonadic Extend: the rule reads
// its cell and neighborhood from the completed prior table, and the next
// table is materialized eagerly in a single pass.
package life

import (
	"torus-ca/pkg/core"
	"torus-ca/pkg/focus"
	"torus-ca/pkg/table"
	"torus-ca/pkg/torus"
)

// offsets is the Moore neighborhood in a fixed order. The rule only sums
// liveness, so the order carries no meaning.
var offsets = [8]torus.Coord{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// Neighbors returns the relate function enumerating the 8 cells around a
// coordinate, wrapped through the bounds.
func Neighbors(b torus.Bounds) func(torus.Coord) []torus.Coord {
	return func(c torus.Coord) []torus.Coord {
		out := make([]torus.Coord, len(offsets))
		for i, d := range offsets {
			out[i] = b.Add(c, d)
		}
		return out
	}
}

// Rule decides the next state of the focused cell: a live cell survives
// with 2 or 3 live neighbors, a dead cell is born with exactly 3.
func Rule(g focus.Grid[bool]) bool {
	live := 0
	for _, alive := range g.Experiment(Neighbors(g.Bounds())) {
		if alive {
			live++
		}
	}
	if g.Extract() {
		return live == 2 || live == 3
	}
	return live == 3
}

// Step advances the grid by one generation.
func Step(g focus.Grid[bool]) focus.Grid[bool] {
	return focus.Extend(g, Rule)
}

// StepN advances the grid by one generation with the cell evaluations
// spread across up to workers goroutines. Generations remain strictly
// sequential: the returned grid is complete before it can be stepped.
func StepN(g focus.Grid[bool], workers int) focus.Grid[bool] {
	return focus.ExtendN(g, workers, Rule)
}

// MakeGrid builds a grid that is live exactly at the given coordinates,
// each normalized into the bounds. The focus starts at the origin.
func MakeGrid(b torus.Bounds, live []torus.Coord) focus.Grid[bool] {
	set := make(map[torus.Coord]struct{}, len(live))
	for _, c := range live {
		set[b.Wrap(c.X, c.Y)] = struct{}{}
	}
	t := table.Tabulate(b, func(c torus.Coord) bool {
		_, ok := set[c]
		return ok
	})
	return focus.New(t, torus.Coord{})
}

// Random builds a grid where each cell is live with the given probability,
// deterministically for a fixed seed. The fill is sequential because the
// generator is stateful.
func Random(b torus.Bounds, seed int64, density float64) focus.Grid[bool] {
	rng := core.NewRNG(seed)
	t := table.Tabulate(b, func(torus.Coord) bool {
		return rng.Chance(density)
	})
	return focus.New(t, torus.Coord{})
}
