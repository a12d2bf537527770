package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 256
	solutionKeyFmt      = "solution:%s"
)

var (
	ErrGridTooLarge = errors.New("grid exceeds the maximum dimension")
	ErrMazeNotFound = errors.New("maze not found")
)

// SolverOptions tunes the solver service.
type SolverOptions struct {
	MaxDimension int // Largest accepted row or column count
}

// Solver runs depth-first searches for the API, caching solutions and
// storing named mazes.
type Solver struct {
	mazeRepo i.MazeRepo
	cache    i.SolutionCache
	logger   i.Logger
	opts     *SolverOptions
}

// NewSolver creates a Solver. cache may be nil, in which case every request
// is solved directly.
func NewSolver(mazeRepo i.MazeRepo, cache i.SolutionCache, logger i.Logger, opts *SolverOptions) (*Solver, error) {
	if mazeRepo == nil {
		return nil, errors.New("maze repository is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	if opts == nil {
		opts = &SolverOptions{}
	}
	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}

	return &Solver{
		mazeRepo: mazeRepo,
		cache:    cache,
		logger:   logger,
		opts:     opts,
	}, nil
}

// Solve implements i.MazeSolver.
func (s *Solver) Solve(ctx context.Context, values [][]int, start, goal maze.CellPosition) (*dmn.Solution, error) {
	g, err := s.grid(values)
	if err != nil {
		return nil, err
	}
	return s.solve(ctx, g, start, goal)
}

// SaveMaze implements i.MazeSolver.
func (s *Solver) SaveMaze(ctx context.Context, owner uuid.UUID, name string, values [][]int) (*dmn.MazeRecord, error) {
	if _, err := s.grid(values); err != nil {
		return nil, err
	}

	record, err := dmn.NewMazeRecord(dmn.MazeRecordConfig{
		ID:      uuid.New(),
		OwnerID: owner,
		Name:    name,
		Grid:    values,
	})
	if err != nil {
		return nil, err
	}

	if err := s.mazeRepo.Save(ctx, record); err != nil {
		s.logger.Error(fmt.Sprintf("saving maze %q for %s: %s", record.Name, owner, err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Saved maze %s (%dx%d) for %s", record.ID, record.Rows, record.Cols, owner))
	return record, nil
}

// Maze implements i.MazeSolver.
func (s *Solver) Maze(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	record, err := s.mazeRepo.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, i.ErrNotFound) {
			return nil, ErrMazeNotFound
		}
		s.logger.Error(fmt.Sprintf("loading maze %s: %s", id, err))
		return nil, err
	}
	return record, nil
}

// SolveSaved implements i.MazeSolver.
func (s *Solver) SolveSaved(ctx context.Context, id uuid.UUID, start, goal maze.CellPosition) (*dmn.Solution, error) {
	record, err := s.Maze(ctx, id)
	if err != nil {
		return nil, err
	}
	g, err := record.MazeGrid()
	if err != nil {
		return nil, err
	}
	return s.solve(ctx, g, start, goal)
}

// grid validates values and enforces the dimension limit.
func (s *Solver) grid(values [][]int) (*maze.Grid, error) {
	g, err := maze.NewGrid(values)
	if err != nil {
		return nil, err
	}
	if g.Rows() > s.opts.MaxDimension || g.Cols() > s.opts.MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d, limit %d", ErrGridTooLarge, g.Rows(), g.Cols(), s.opts.MaxDimension)
	}
	return g, nil
}

func (s *Solver) solve(ctx context.Context, g *maze.Grid, start, goal maze.CellPosition) (*dmn.Solution, error) {
	// Reject bad endpoints before touching the cache.
	for _, pos := range []maze.CellPosition{start, goal} {
		if !g.InBound(pos) {
			return nil, fmt.Errorf("%w: %s in %dx%d grid", maze.ErrOutOfBounds, pos, g.Rows(), g.Cols())
		}
	}

	if s.cache == nil {
		return s.run(g, start, goal)
	}

	key := solutionKey(g, start, goal)
	if cached := s.cached(ctx, key); cached != nil {
		return cached, nil
	}

	unlock, err := s.cache.Lock(ctx, key)
	if err != nil {
		s.logger.Warning(fmt.Sprintf("locking %s failed, solving without cache: %s", key, err))
		return s.run(g, start, goal)
	}
	defer unlock()

	// Another instance may have finished while we waited for the lock.
	if cached := s.cached(ctx, key); cached != nil {
		return cached, nil
	}

	solution, err := s.run(g, start, goal)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Put(ctx, key, solution); err != nil {
		s.logger.Warning(fmt.Sprintf("caching %s failed: %s", key, err))
	}
	return solution, nil
}

// cached returns the cached solution for key, or nil on a miss or cache failure.
func (s *Solver) cached(ctx context.Context, key string) *dmn.Solution {
	solution, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, i.ErrCacheMiss) {
			s.logger.Warning(fmt.Sprintf("reading %s from cache failed: %s", key, err))
		}
		return nil
	}
	solution.Cached = true
	return solution
}

func (s *Solver) run(g *maze.Grid, start, goal maze.CellPosition) (*dmn.Solution, error) {
	res, err := maze.FindPath(g, start, goal)
	if err != nil {
		return nil, err
	}
	if res.Found {
		s.logger.Info(fmt.Sprintf("Path %s -> %s found: %d steps, %d cells expanded", start, goal, len(res.Path)-1, res.ExpandedCells))
	} else {
		s.logger.Info(fmt.Sprintf("No path %s -> %s after %d cells expanded", start, goal, res.ExpandedCells))
	}
	return dmn.NewSolution(res), nil
}

// solutionKey digests the grid and endpoints into a cache key.
func solutionKey(g *maze.Grid, start, goal maze.CellPosition) string {
	h := sha256.New()
	fmt.Fprintf(h, "%dx%d\n%s%s%s", g.Rows(), g.Cols(), g.String(), start, goal)
	return fmt.Sprintf(solutionKeyFmt, hex.EncodeToString(h.Sum(nil)))
}
