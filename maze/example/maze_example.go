package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/mazefile"
)

func main() {
	file := flag.String("file", "", "HCL file with maze blocks; the built-in mazes are solved when empty")
	flag.Parse()

	samples := maze.Samples()
	if *file != "" {
		defs, err := mazefile.Load(*file)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		samples = fromDefinitions(defs)
	}

	if err := run(os.Stdout, samples); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fromDefinitions(defs []mazefile.Definition) []maze.Sample {
	samples := make([]maze.Sample, len(defs))
	for i, d := range defs {
		samples[i] = maze.Sample{Name: d.Name, Grid: d.Grid, Start: d.Start, Goal: d.Goal}
	}
	return samples
}

// run solves every sample and prints one "<name> Solution: <path>" line each.
func run(w io.Writer, samples []maze.Sample) error {
	for _, s := range samples {
		g, err := maze.NewGrid(s.Grid)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
		res, err := maze.FindPath(g, s.Start, s.Goal)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
		fmt.Fprintf(w, "%s Solution: %s\n", s.Name, res.Path)
	}
	return nil
}
