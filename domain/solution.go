package domain

import "github.com/beka-birhanu/vinom-pathfinder/maze"

// Solution is the outcome of one solve, as cached and returned by the API.
type Solution struct {
	Found         bool                `json:"found"`
	Path          []maze.CellPosition `json:"path"`
	ExpandedCells int                 `json:"expandedCells"`
	Cached        bool                `json:"-"` // set when served from the cache
}

// NewSolution converts a solver result.
func NewSolution(res maze.Result) *Solution {
	return &Solution{
		Found:         res.Found,
		Path:          res.Path,
		ExpandedCells: res.ExpandedCells,
	}
}
