package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/google/uuid"
)

// MazeSolver solves ad-hoc and stored mazes.
type MazeSolver interface {
	// Solve finds a depth-first path through grid. An unreachable goal is
	// reported through Solution.Found, not as an error.
	Solve(ctx context.Context, grid [][]int, start, goal maze.CellPosition) (*dmn.Solution, error)

	// SaveMaze validates and stores a grid for owner.
	SaveMaze(ctx context.Context, owner uuid.UUID, name string, grid [][]int) (*dmn.MazeRecord, error)

	// Maze returns a stored maze.
	Maze(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// SolveSaved solves a stored maze.
	SolveSaved(ctx context.Context, id uuid.UUID, start, goal maze.CellPosition) (*dmn.Solution, error)
}
