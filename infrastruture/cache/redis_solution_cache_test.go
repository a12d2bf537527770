package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachableClient points at a closed port so every command fails fast.
func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestNewRedisSolutionCache(t *testing.T) {
	t.Run("Requires a client", func(t *testing.T) {
		_, err := NewRedisSolutionCache(nil, 60)
		assert.Error(t, err)
	})

	t.Run("Requires a positive ttl", func(t *testing.T) {
		client := unreachableClient()
		defer client.Close()
		_, err := NewRedisSolutionCache(client, 0)
		assert.Error(t, err)
	})

	t.Run("Sets the ttl", func(t *testing.T) {
		client := unreachableClient()
		defer client.Close()
		c, err := NewRedisSolutionCache(client, 90)
		require.NoError(t, err)
		assert.Equal(t, 90*time.Second, c.ttl)
	})
}

func TestRedisSolutionCacheUnavailable(t *testing.T) {
	client := unreachableClient()
	defer client.Close()
	c, err := NewRedisSolutionCache(client, 60)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err = c.Get(ctx, "solution:abc")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, i.ErrCacheMiss)
}

func newMiniredisCache(t *testing.T, ttlSeconds int) (*RedisSolutionCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c, err := NewRedisSolutionCache(client, ttlSeconds)
	require.NoError(t, err)
	return c, mr
}

func TestRedisSolutionCache(t *testing.T) {
	ctx := context.Background()
	solution := &dmn.Solution{
		Found:         true,
		Path:          []maze.CellPosition{{Row: 0, Col: 0}, {Row: 0, Col: 1}},
		ExpandedCells: 2,
	}

	tests := []struct {
		name string
		run  func(t *testing.T, c *RedisSolutionCache, mr *miniredis.Miniredis)
	}{
		{
			name: "Miss",
			run: func(t *testing.T, c *RedisSolutionCache, _ *miniredis.Miniredis) {
				_, err := c.Get(ctx, "solution:missing")
				assert.ErrorIs(t, err, i.ErrCacheMiss)
			},
		},
		{
			name: "Put then Get",
			run: func(t *testing.T, c *RedisSolutionCache, _ *miniredis.Miniredis) {
				require.NoError(t, c.Put(ctx, "solution:abc", solution))

				got, err := c.Get(ctx, "solution:abc")
				require.NoError(t, err)
				assert.Equal(t, solution.Found, got.Found)
				assert.Equal(t, solution.Path, got.Path)
				assert.Equal(t, solution.ExpandedCells, got.ExpandedCells)
				assert.False(t, got.Cached)
			},
		},
		{
			name: "Put sets the ttl",
			run: func(t *testing.T, c *RedisSolutionCache, mr *miniredis.Miniredis) {
				require.NoError(t, c.Put(ctx, "solution:ttl", solution))
				assert.Equal(t, time.Minute, mr.TTL("solution:ttl"))

				mr.FastForward(time.Minute + time.Second)
				_, err := c.Get(ctx, "solution:ttl")
				assert.ErrorIs(t, err, i.ErrCacheMiss)
			},
		},
		{
			name: "Lock then unlock",
			run: func(t *testing.T, c *RedisSolutionCache, mr *miniredis.Miniredis) {
				unlock, err := c.Lock(ctx, "solution:abc")
				require.NoError(t, err)
				assert.True(t, mr.Exists("solution:abc"+lockSuffix))

				unlock()
				assert.False(t, mr.Exists("solution:abc"+lockSuffix))

				unlock, err = c.Lock(ctx, "solution:abc")
				require.NoError(t, err)
				unlock()
			},
		},
		{
			name: "Corrupt entry is dropped",
			run: func(t *testing.T, c *RedisSolutionCache, mr *miniredis.Miniredis) {
				require.NoError(t, mr.Set("solution:corrupt", "{\"found\":"))

				_, err := c.Get(ctx, "solution:corrupt")
				assert.Error(t, err)
				assert.NotErrorIs(t, err, i.ErrCacheMiss)
				assert.False(t, mr.Exists("solution:corrupt"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mr := newMiniredisCache(t, 60)
			tt.run(t, c, mr)
		})
	}
}
