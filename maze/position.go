package maze

import (
	"fmt"
	"strings"
)

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `json:"row" bson:"row"` // Row index of the cell
	Col int `json:"col" bson:"col"` // Column index of the cell
}

// String renders the position as "(row, col)".
func (cp CellPosition) String() string {
	return fmt.Sprintf("(%d, %d)", cp.Row, cp.Col)
}

// Add returns the position shifted by delta.
func (cp CellPosition) Add(delta CellPosition) CellPosition {
	return CellPosition{Row: cp.Row + delta.Row, Col: cp.Col + delta.Col}
}

// Direction is a named unit step between adjacent cells.
type Direction struct {
	Name  string
	Delta CellPosition
}

// Directions lists the four cardinal moves in the order the solver expands
// them. The order decides which path is returned when several exist.
var Directions = [4]Direction{
	{Name: "North", Delta: CellPosition{Row: -1, Col: 0}},
	{Name: "South", Delta: CellPosition{Row: 1, Col: 0}},
	{Name: "West", Delta: CellPosition{Row: 0, Col: -1}},
	{Name: "East", Delta: CellPosition{Row: 0, Col: 1}},
}

// Path is an ordered sequence of adjacent cell positions.
type Path []CellPosition

// String renders the path as "[(0, 0), (0, 1)]", or "None" when empty.
func (p Path) String() string {
	if len(p) == 0 {
		return "None"
	}
	parts := make([]string, len(p))
	for i, pos := range p {
		parts[i] = pos.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Valid reports whether p starts at start, ends at goal, moves one cardinal
// step at a time and only crosses open cells between its endpoints.
func (p Path) Valid(g *Grid, start, goal CellPosition) bool {
	if len(p) == 0 || p[0] != start || p[len(p)-1] != goal {
		return false
	}
	for i, pos := range p {
		if !g.InBound(pos) {
			return false
		}
		if i > 0 && i < len(p)-1 && g.IsWall(pos) {
			return false
		}
		if i > 0 && !adjacent(p[i-1], pos) {
			return false
		}
	}
	return true
}

func adjacent(a, b CellPosition) bool {
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)
	return dr+dc == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
