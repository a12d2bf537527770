package maze_test

import (
	"fmt"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
)

func ExampleFindPath() {
	g := maze.MustGrid([][]int{
		{0, 0, 1, 0},
		{0, 0, 1, 0},
		{1, 0, 0, 0},
		{1, 1, 0, 0},
	})

	res, err := maze.FindPath(g, maze.CellPosition{Row: 0, Col: 0}, maze.CellPosition{Row: 3, Col: 3})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Found, res.Path)
	// Output: true [(0, 0), (0, 1), (1, 1), (2, 1), (2, 2), (2, 3), (3, 3)]
}
