/*
Package maze provides rectangular open/wall grids and a depth-first path finder.

A Grid is built from a [][]int where 1 marks a wall and any other value an open
cell. FindPath walks the grid with an explicit LIFO frontier, expanding
neighbours in the fixed North, South, West, East order, and returns the first
path it reaches. The path is not guaranteed to be the shortest one.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyGrid   = errors.New("grid has no cells")
	ErrRaggedGrid  = errors.New("grid rows have different lengths")
	ErrOutOfBounds = errors.New("position is outside the grid")
)

// Grid represents a rectangular maze of open and wall cells.
// A Grid is never modified after construction.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewGrid validates and copies an integer grid.
func NewGrid(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	cols := len(values[0])
	cells := make([][]Cell, len(values))
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, r, len(row), cols)
		}
		cells[r] = make([]Cell, cols)
		for c, v := range row {
			cells[r][c] = CellFromInt(v)
		}
	}

	return &Grid{
		rows:  len(values),
		cols:  cols,
		cells: cells,
	}, nil
}

// MustGrid is like NewGrid but panics on invalid input.
// It is meant for literal grids known to be well formed.
func MustGrid(values [][]int) *Grid {
	g, err := NewGrid(values)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// InBound checks if a position lies inside the grid.
func (g *Grid) InBound(pos CellPosition) bool {
	return pos.Row >= 0 && pos.Row < g.rows && pos.Col >= 0 && pos.Col < g.cols
}

// Cell returns the state at pos. The position must be in bounds.
func (g *Grid) Cell(pos CellPosition) Cell {
	return g.cells[pos.Row][pos.Col]
}

// IsWall reports whether the cell at pos is a wall.
func (g *Grid) IsWall(pos CellPosition) bool {
	return g.cells[pos.Row][pos.Col].IsWall()
}

// Ints returns a fresh [][]int copy of the grid (0 open, 1 wall).
func (g *Grid) Ints() [][]int {
	out := make([][]int, g.rows)
	for r, row := range g.cells {
		out[r] = make([]int, g.cols)
		for c, cell := range row {
			out[r][c] = cell.Int()
		}
	}
	return out
}

// String provides a textual representation of the grid, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for _, row := range g.cells {
		for c, cell := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", cell.Int())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// neighbors returns the in-bound, open neighbours of pos in Directions order.
func (g *Grid) neighbors(pos CellPosition) []CellPosition {
	result := make([]CellPosition, 0, len(Directions))
	for _, dir := range Directions {
		next := pos.Add(dir.Delta)
		if g.InBound(next) && !g.IsWall(next) {
			result = append(result, next)
		}
	}
	return result
}
