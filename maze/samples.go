package maze

// Sample is a literal maze with its endpoints.
type Sample struct {
	Name  string
	Grid  [][]int
	Start CellPosition
	Goal  CellPosition
}

// Samples returns the demonstration mazes. Each call returns fresh slices.
func Samples() []Sample {
	return []Sample{
		{
			Name: "Maze 1",
			Grid: [][]int{
				{0, 0, 1, 0},
				{0, 0, 1, 0},
				{1, 0, 0, 0},
				{1, 1, 0, 0},
			},
			Start: CellPosition{Row: 0, Col: 0},
			Goal:  CellPosition{Row: 3, Col: 3},
		},
		{
			// start and goal lie in disconnected regions
			Name: "Maze 2",
			Grid: [][]int{
				{0, 1, 1, 0},
				{0, 1, 1, 0},
				{1, 1, 1, 0},
				{1, 1, 0, 0},
			},
			Start: CellPosition{Row: 0, Col: 0},
			Goal:  CellPosition{Row: 3, Col: 3},
		},
		{
			Name: "Maze 3",
			Grid: [][]int{
				{0, 0, 0, 1, 0},
				{1, 1, 0, 1, 0},
				{0, 0, 0, 0, 0},
				{0, 1, 1, 1, 1},
				{0, 0, 0, 0, 0},
			},
			Start: CellPosition{Row: 0, Col: 0},
			Goal:  CellPosition{Row: 4, Col: 4},
		},
	}
}
