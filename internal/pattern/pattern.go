// Package pattern seeds initial boards. A pattern is a named set of live
// cells with its own bounds, authored as a small YAML document or picked
// from the built-in library.
package pattern

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"torus-ca/pkg/focus"
	"torus-ca/pkg/sims/life"
	"torus-ca/pkg/torus"
)

// ErrUnknownPattern reports a name with no built-in entry.
var ErrUnknownPattern = errors.New("pattern: unknown pattern")

// Cell is one live coordinate in a pattern document.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Pattern is a named live-cell set over its own bounds.
type Pattern struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Cells  []Cell `yaml:"cells"`
}

// Decode parses a YAML pattern document.
func Decode(data []byte) (Pattern, error) {
	var p Pattern
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Pattern{}, fmt.Errorf("pattern: decode: %w", err)
	}
	return p, nil
}

// Load reads and parses a pattern file.
func Load(path string) (Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pattern{}, fmt.Errorf("pattern: read %s: %w", path, err)
	}
	p, err := Decode(data)
	if err != nil {
		return Pattern{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Grid validates the pattern bounds and builds the initial board, live
// exactly at the pattern's cells.
func (p Pattern) Grid() (focus.Grid[bool], error) {
	b, err := torus.New(p.Width, p.Height)
	if err != nil {
		return focus.Grid[bool]{}, fmt.Errorf("pattern %q: %w", p.Name, err)
	}
	live := make([]torus.Coord, len(p.Cells))
	for i, c := range p.Cells {
		live[i] = torus.Coord{X: c.X, Y: c.Y}
	}
	return life.MakeGrid(b, live), nil
}

// builtin holds the pattern library keyed by name.
var builtin = map[string]Pattern{
	"blinker": {
		Name: "blinker", Width: 5, Height: 5,
		Cells: []Cell{{1, 2}, {2, 2}, {3, 2}},
	},
	"block": {
		Name: "block", Width: 6, Height: 6,
		Cells: []Cell{{1, 1}, {2, 1}, {1, 2}, {2, 2}},
	},
	"toad": {
		Name: "toad", Width: 6, Height: 6,
		Cells: []Cell{{2, 2}, {3, 2}, {4, 2}, {1, 3}, {2, 3}, {3, 3}},
	},
	"glider": {
		Name: "glider", Width: 16, Height: 16,
		Cells: []Cell{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	},
}

// Builtin returns the named built-in pattern.
func Builtin(name string) (Pattern, error) {
	p, ok := builtin[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// Names lists the built-in patterns.
func Names() []string {
	out := make([]string, 0, len(builtin))
	for name := range builtin {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
