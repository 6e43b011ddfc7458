// Package torus provides coordinates on a bounded grid with wrap-around
// edges. A Bounds fixes the grid dimensions once, at configuration time;
// every Coord it hands out is normalized into [0,W)x[0,H).
package torus

import (
	"errors"
	"fmt"
)

// ErrInvalidBound reports a non-positive grid dimension.
var ErrInvalidBound = errors.New("torus: bounds must be positive")

// Coord is a grid position. Values produced by Bounds methods are always
// normalized; Coord is comparable and usable as a map key.
type Coord struct {
	X, Y int
}

// Bounds is the fixed extent of a toroidal grid. Construct with New so the
// dimensions are validated once; the zero value is not usable.
type Bounds struct {
	W, H int
}

// New validates the dimensions and returns the bounds for a w by h torus.
func New(w, h int) (Bounds, error) {
	if w <= 0 || h <= 0 {
		return Bounds{}, fmt.Errorf("%w: %dx%d", ErrInvalidBound, w, h)
	}
	return Bounds{W: w, H: h}, nil
}

// Wrap normalizes (x, y) into the bounds using floored modulo, so negative
// inputs wrap to the opposite edge.
func (b Bounds) Wrap(x, y int) Coord {
	return Coord{X: mod(x, b.W), Y: mod(y, b.H)}
}

// Add sums two coordinates component-wise and wraps the result.
func (b Bounds) Add(c, d Coord) Coord {
	return b.Wrap(c.X+d.X, c.Y+d.Y)
}

// Index linearizes a normalized coordinate in row-major order.
func (b Bounds) Index(c Coord) int { return c.Y*b.W + c.X }

// CoordAt is the inverse of Index.
func (b Bounds) CoordAt(i int) Coord { return Coord{X: i % b.W, Y: i / b.W} }

// Len is the number of cells in the bounds.
func (b Bounds) Len() int { return b.W * b.H }

// Contains reports whether c is already in normalized form.
func (b Bounds) Contains(c Coord) bool {
	return c.X >= 0 && c.X < b.W && c.Y >= 0 && c.Y < b.H
}

// mod is floored modulo. A non-positive divisor means the bounds skipped
// validation; that is a programming error, not a runtime condition.
func mod(a, m int) int {
	if m <= 0 {
		panic(fmt.Sprintf("torus: modulus %d is not positive", m))
	}
	a %= m
	if a < 0 {
		a += m
	}
	return a
}
