// Package solverapi exposes the maze solver over HTTP.
package solverapi

import (
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
)

// SolveRequest asks for a path through an ad-hoc grid.
type SolveRequest struct {
	Grid  [][]int            `json:"grid" binding:"required"`
	Start *maze.CellPosition `json:"start" binding:"required"`
	Goal  *maze.CellPosition `json:"goal" binding:"required"`
}

// SolveSavedRequest asks for a path through a stored maze.
type SolveSavedRequest struct {
	Start *maze.CellPosition `json:"start" binding:"required"`
	Goal  *maze.CellPosition `json:"goal" binding:"required"`
}

// SolveResponse carries the solver outcome. Path is null when Found is false.
type SolveResponse struct {
	Found         bool                `json:"found"`
	Path          []maze.CellPosition `json:"path"`
	ExpandedCells int                 `json:"expanded_cells"`
	Cached        bool                `json:"cached"`
}

// SaveMazeRequest stores a named grid.
type SaveMazeRequest struct {
	Name string  `json:"name" binding:"required"`
	Grid [][]int `json:"grid" binding:"required"`
}

// MazeResponse describes a stored maze.
type MazeResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Grid      [][]int   `json:"grid"`
	Rows      int       `json:"rows"`
	Cols      int       `json:"cols"`
	CreatedAt time.Time `json:"created_at"`
}
