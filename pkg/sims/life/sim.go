package life

import (
	"strconv"

	"torus-ca/pkg/core"
	"torus-ca/pkg/focus"
	"torus-ca/pkg/torus"
)

// Config holds parameters for the registered simulation.
type Config struct {
	Width   int
	Height  int
	Density float64
	Workers int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Density: 0.5, Workers: 1}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	return c
}

// Sim adapts the comonadic grid to the core.Sim contract, keeping a byte
// display buffer in sync with the current generation.
type Sim struct {
	bounds  torus.Bounds
	grid    focus.Grid[bool]
	cells   []uint8
	density float64
	workers int
	gen     int
}

// New constructs a randomized simulation with the provided configuration.
func New(cfg Config) (*Sim, error) {
	b, err := torus.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	s := &Sim{
		bounds:  b,
		cells:   make([]uint8, b.Len()),
		density: cfg.Density,
		workers: workers,
	}
	s.SetGrid(Random(b, 0, s.density))
	return s, nil
}

// NewFromGrid constructs a simulation starting from an existing grid, for
// drivers that seed from a pattern instead of randomly.
func NewFromGrid(g focus.Grid[bool], workers int) *Sim {
	if workers < 1 {
		workers = 1
	}
	s := &Sim{
		bounds:  g.Bounds(),
		cells:   make([]uint8, g.Bounds().Len()),
		density: DefaultConfig().Density,
		workers: workers,
	}
	s.SetGrid(g)
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "life" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.bounds.W, H: s.bounds.H} }

// Cells exposes the display buffer for the current generation.
func (s *Sim) Cells() []uint8 { return s.cells }

// Grid returns the current focused grid.
func (s *Sim) Grid() focus.Grid[bool] { return s.grid }

// Generation returns how many steps have run since the last reset.
func (s *Sim) Generation() int { return s.gen }

// SetGrid replaces the current state and resets the generation counter.
func (s *Sim) SetGrid(g focus.Grid[bool]) {
	s.grid = g
	s.gen = 0
	s.refresh()
}

// Reset reseeds the board randomly using the provided seed.
func (s *Sim) Reset(seed int64) {
	s.SetGrid(Random(s.bounds, seed, s.density))
}

// Step advances the simulation by one generation.
func (s *Sim) Step() {
	s.grid = StepN(s.grid, s.workers)
	s.gen++
	s.refresh()
}

func (s *Sim) refresh() {
	b := s.bounds
	s.grid.Table().Each(func(c torus.Coord, alive bool) {
		if alive {
			s.cells[b.Index(c)] = 1
		} else {
			s.cells[b.Index(c)] = 0
		}
	})
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
