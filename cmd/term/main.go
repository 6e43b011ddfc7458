// Command term runs the automaton in a terminal: it seeds a board from a
// built-in pattern, a YAML pattern file, or a random fill, steps it at a
// fixed rate, and prints each generation as ASCII rows.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"torus-ca/internal/pattern"
	"torus-ca/internal/render"
	"torus-ca/pkg/core"
	"torus-ca/pkg/focus"
	"torus-ca/pkg/sims/life"
	"torus-ca/pkg/torus"
)

type options struct {
	Pattern string
	File    string
	Width   int
	Height  int
	Seed    int64
	Density float64
	Steps   int
	TPS     int
	Workers int
	Quiet   bool
}

func (o *options) bind(fs *flag.FlagSet) {
	fs.StringVar(&o.Pattern, "pattern", "", "built-in pattern name ("+strings.Join(pattern.Names(), ", ")+")")
	fs.StringVar(&o.File, "file", "", "YAML pattern file (overrides -pattern)")
	fs.IntVar(&o.Width, "w", 40, "grid width for random seeding")
	fs.IntVar(&o.Height, "h", 20, "grid height for random seeding")
	fs.Int64Var(&o.Seed, "seed", 42, "seed for random seeding")
	fs.Float64Var(&o.Density, "density", 0.3, "live-cell probability for random seeding")
	fs.IntVar(&o.Steps, "steps", 100, "generations to run (0 runs until interrupted)")
	fs.IntVar(&o.TPS, "tps", 10, "generations per second (0 runs unpaced)")
	fs.IntVar(&o.Workers, "workers", 1, "goroutines per generation step")
	fs.BoolVar(&o.Quiet, "quiet", false, "skip per-generation frames, print only the final board and stats")
}

func seedGrid(o *options) (focus.Grid[bool], error) {
	switch {
	case o.File != "":
		p, err := pattern.Load(o.File)
		if err != nil {
			return focus.Grid[bool]{}, err
		}
		return p.Grid()
	case o.Pattern != "":
		p, err := pattern.Builtin(o.Pattern)
		if err != nil {
			return focus.Grid[bool]{}, err
		}
		return p.Grid()
	default:
		b, err := torus.New(o.Width, o.Height)
		if err != nil {
			return focus.Grid[bool]{}, err
		}
		return life.Random(b, o.Seed, o.Density), nil
	}
}

func main() {
	var opts options
	opts.bind(flag.CommandLine)
	flag.Parse()

	grid, err := seedGrid(&opts)
	if err != nil {
		log.Fatal(err)
	}

	var pacer *core.FixedStep
	if opts.TPS > 0 && !opts.Quiet {
		pacer = core.NewFixedStep(opts.TPS)
	}

	start := time.Now()
	gen := 0
	for opts.Steps == 0 || gen < opts.Steps {
		if !opts.Quiet {
			fmt.Print("\033[H\033[2J")
			fmt.Print(render.Text(grid, '#', '.'))
			fmt.Printf("gen %d\n", gen)
		}
		if pacer != nil {
			pacer.Wait()
		}
		grid = life.StepN(grid, opts.Workers)
		gen++
	}
	elapsed := time.Since(start)

	fmt.Print(render.Text(grid, '#', '.'))
	fmt.Fprintf(os.Stdout, "%d generations in %v (%.1f gen/s)\n",
		gen, elapsed.Round(time.Millisecond), float64(gen)/elapsed.Seconds())
}
