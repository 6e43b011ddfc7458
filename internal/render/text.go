// Package render turns a boolean board into something visible: ASCII rows
// for the terminal driver and RGBA pixels for the GUI build.
package render

import (
	"strings"

	"torus-ca/pkg/focus"
	"torus-ca/pkg/torus"
)

// Row returns the relate function sweeping row y left to right, for
// reading a full line of states out of a grid in one Experiment call.
func Row(b torus.Bounds, y int) func(torus.Coord) []torus.Coord {
	return func(torus.Coord) []torus.Coord {
		out := make([]torus.Coord, b.W)
		for x := 0; x < b.W; x++ {
			out[x] = b.Wrap(x, y)
		}
		return out
	}
}

// Text renders the whole grid as H lines of W runes.
func Text(g focus.Grid[bool], alive, dead rune) string {
	b := g.Bounds()
	var sb strings.Builder
	sb.Grow((b.W + 1) * b.H)
	for y := 0; y < b.H; y++ {
		for _, on := range g.Experiment(Row(b, y)) {
			if on {
				sb.WriteRune(alive)
			} else {
				sb.WriteRune(dead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
