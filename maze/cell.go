package maze

// Cell represents the state of a single cell in a maze grid.
type Cell uint8

const (
	// Open marks a cell that can be walked through.
	Open Cell = iota
	// Wall marks a cell that blocks movement.
	Wall
)

// wallValue is the integer used for walls in the [][]int form of a grid.
// Any other value is treated as open.
const wallValue = 1

// CellFromInt converts an integer cell value to a Cell.
func CellFromInt(v int) Cell {
	if v == wallValue {
		return Wall
	}
	return Open
}

// Int returns the integer form of the cell (0 open, 1 wall).
func (c Cell) Int() int {
	if c == Wall {
		return wallValue
	}
	return 0
}

// IsWall reports whether the cell blocks movement.
func (c Cell) IsWall() bool {
	return c == Wall
}

// String returns the name of the cell state.
func (c Cell) String() string {
	if c == Wall {
		return "wall"
	}
	return "open"
}
