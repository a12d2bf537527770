package maze

import "fmt"

// Result contains the outcome of a search.
type Result struct {
	Path          Path // Path from start to goal, nil when Found is false
	Found         bool // Found is false when the goal cannot be reached
	ExpandedCells int  // Number of cells marked visited during the search
}

// node is a frontier entry. Paths are rebuilt from parent links on success
// instead of copying the path into every entry.
type node struct {
	pos    CellPosition
	parent int // index into the arena, -1 for the start node
}

// FindPath searches g depth-first for a path from start to goal.
//
// An unreachable goal is not an error: the returned Result has Found set to
// false. Errors are returned only when start or goal lie outside the grid.
// The start cell is expanded even when it is a wall, and start == goal always
// yields the single-cell path.
func FindPath(g *Grid, start, goal CellPosition) (Result, error) {
	if !g.InBound(start) {
		return Result{}, fmt.Errorf("%w: start %s in %dx%d grid", ErrOutOfBounds, start, g.rows, g.cols)
	}
	if !g.InBound(goal) {
		return Result{}, fmt.Errorf("%w: goal %s in %dx%d grid", ErrOutOfBounds, goal, g.rows, g.cols)
	}

	arena := []node{{pos: start, parent: -1}}
	stack := []int{0}
	visited := make(map[CellPosition]struct{})

	for len(stack) > 0 {
		idx := pop(&stack)
		current := arena[idx].pos

		if current == goal {
			return Result{
				Path:          reconstructPath(arena, idx),
				Found:         true,
				ExpandedCells: len(visited),
			}, nil
		}

		if _, seen := visited[current]; seen {
			continue
		}
		visited[current] = struct{}{}

		for _, next := range g.neighbors(current) {
			if _, seen := visited[next]; seen {
				continue
			}
			arena = append(arena, node{pos: next, parent: idx})
			stack = append(stack, len(arena)-1)
		}
	}

	return Result{ExpandedCells: len(visited)}, nil
}

// pop removes and returns the last element of the stack.
func pop(s *[]int) int {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}

// reconstructPath walks parent links from idx back to the start node.
func reconstructPath(arena []node, idx int) Path {
	var path Path
	for i := idx; i >= 0; i = arena[i].parent {
		path = append(path, arena[i].pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
