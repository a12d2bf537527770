package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	lockSuffix = ":solve_lock"
	lockExpiry = 10 * time.Second
)

// RedisSolutionCache keeps solved mazes in Redis with a TTL and serialises
// concurrent solves of the same request with a redsync mutex.
type RedisSolutionCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisSolutionCache initializes a RedisSolutionCache with the provided Redis client and TTL.
func NewRedisSolutionCache(client *redis.Client, ttlSeconds int) (*RedisSolutionCache, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if ttlSeconds <= 0 {
		return nil, fmt.Errorf("invalid solution ttl: %d", ttlSeconds)
	}

	pool := goredis.NewPool(client)
	return &RedisSolutionCache{
		client: client,
		locker: redsync.New(pool),
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}, nil
}

var _ i.SolutionCache = &RedisSolutionCache{}

// Get implements i.SolutionCache.
func (c *RedisSolutionCache) Get(ctx context.Context, key string) (*dmn.Solution, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, i.ErrCacheMiss
		}
		return nil, err
	}

	var solution dmn.Solution
	if err := json.Unmarshal(raw, &solution); err != nil {
		// Drop the corrupt entry so the next request recomputes it.
		_ = c.client.Del(ctx, key).Err()
		return nil, fmt.Errorf("decoding cached solution: %w", err)
	}
	return &solution, nil
}

// Put implements i.SolutionCache.
func (c *RedisSolutionCache) Put(ctx context.Context, key string, solution *dmn.Solution) error {
	raw, err := json.Marshal(solution)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

// Lock implements i.SolutionCache.
func (c *RedisSolutionCache) Lock(ctx context.Context, key string) (func(), error) {
	mutex := c.locker.NewMutex(key+lockSuffix, redsync.WithExpiry(lockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() {
		_, _ = mutex.UnlockContext(context.Background())
	}, nil
}
