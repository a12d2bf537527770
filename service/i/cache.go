package i

import (
	"context"
	"errors"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
)

var ErrCacheMiss = errors.New("cache miss")

// SolutionCache stores solved mazes keyed by a digest of the request.
type SolutionCache interface {
	// Get returns the cached solution or ErrCacheMiss.
	Get(ctx context.Context, key string) (*dmn.Solution, error)

	// Put stores a solution; expiry is up to the implementation.
	Put(ctx context.Context, key string, solution *dmn.Solution) error

	// Lock acquires an exclusive lock on key. The returned func releases it.
	Lock(ctx context.Context, key string) (func(), error)
}
