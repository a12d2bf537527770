// Package mazefile loads maze definitions from HCL files.
//
// A file holds one or more labelled maze blocks:
//
//	maze "corridor" {
//	  grid  = [[open, open, wall], [wall, open, open]]
//	  start = [0, 0]
//	  goal  = [1, 2]
//	}
//
// The variables open and wall evaluate to 0 and 1.
package mazefile

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

var (
	ErrNoMazes       = errors.New("no maze blocks found")
	ErrDuplicateMaze = errors.New("duplicate maze name")
	ErrBadPosition   = errors.New("position must be a [row, col] pair")
)

// Definition is a decoded maze block.
type Definition struct {
	Name  string
	Grid  [][]int
	Start maze.CellPosition
	Goal  maze.CellPosition
}

// hclMazeFile represents the top-level structure of a maze file for decoding.
type hclMazeFile struct {
	Mazes []*hclMaze `hcl:"maze,block"`
}

type hclMaze struct {
	Name  string  `hcl:"name,label"`
	Grid  [][]int `hcl:"grid"`
	Start []int   `hcl:"start"`
	Goal  []int   `hcl:"goal"`
}

// evalContext exposes the cell names usable inside grid expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"open": cty.NumberIntVal(int64(maze.Open.Int())),
			"wall": cty.NumberIntVal(int64(maze.Wall.Int())),
		},
	}
}

// Load parses the HCL file at path.
func Load(path string) ([]Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse maze file %s: %w", path, diags)
	}
	return decode(file, path)
}

// Parse parses HCL source; filename is used in diagnostics only.
func Parse(src []byte, filename string) ([]Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse maze file %s: %w", filename, diags)
	}
	return decode(file, filename)
}

func decode(file *hcl.File, filename string) ([]Definition, error) {
	var parsed hclMazeFile
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode maze file %s: %w", filename, diags)
	}
	if len(parsed.Mazes) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoMazes, filename)
	}

	seen := make(map[string]struct{}, len(parsed.Mazes))
	defs := make([]Definition, 0, len(parsed.Mazes))
	for _, m := range parsed.Mazes {
		if _, dup := seen[m.Name]; dup {
			return nil, fmt.Errorf("%w %q in %s", ErrDuplicateMaze, m.Name, filename)
		}
		seen[m.Name] = struct{}{}

		def, err := m.definition()
		if err != nil {
			return nil, fmt.Errorf("maze %q in %s: %w", m.Name, filename, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func (m *hclMaze) definition() (Definition, error) {
	if _, err := maze.NewGrid(m.Grid); err != nil {
		return Definition{}, err
	}
	start, err := position(m.Start)
	if err != nil {
		return Definition{}, fmt.Errorf("start: %w", err)
	}
	goal, err := position(m.Goal)
	if err != nil {
		return Definition{}, fmt.Errorf("goal: %w", err)
	}
	return Definition{
		Name:  m.Name,
		Grid:  m.Grid,
		Start: start,
		Goal:  goal,
	}, nil
}

func position(v []int) (maze.CellPosition, error) {
	if len(v) != 2 {
		return maze.CellPosition{}, ErrBadPosition
	}
	return maze.CellPosition{Row: v[0], Col: v[1]}, nil
}
