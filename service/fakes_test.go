package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

type fakeLogger struct {
	sync.Mutex
	infos, warnings, errors []string
}

func (l *fakeLogger) Info(msg string)    { l.Lock(); l.infos = append(l.infos, msg); l.Unlock() }
func (l *fakeLogger) Warning(msg string) { l.Lock(); l.warnings = append(l.warnings, msg); l.Unlock() }
func (l *fakeLogger) Error(msg string)   { l.Lock(); l.errors = append(l.errors, msg); l.Unlock() }

type fakeMazeRepo struct {
	records map[uuid.UUID]*dmn.MazeRecord
	err     error
}

func newFakeMazeRepo() *fakeMazeRepo {
	return &fakeMazeRepo{records: map[uuid.UUID]*dmn.MazeRecord{}}
}

func (r *fakeMazeRepo) Save(_ context.Context, record *dmn.MazeRecord) error {
	if r.err != nil {
		return r.err
	}
	r.records[record.ID] = record
	return nil
}

func (r *fakeMazeRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	if r.err != nil {
		return nil, r.err
	}
	record, ok := r.records[id]
	if !ok {
		return nil, i.ErrNotFound
	}
	return record, nil
}

type fakeCache struct {
	mu        sync.Mutex
	solutions map[string]dmn.Solution
	gets      int
	puts      int
	locks     int
	unlocks   int
	getErr    error
	lockErr   error
}

func newFakeCache() *fakeCache {
	return &fakeCache{solutions: map[string]dmn.Solution{}}
}

func (c *fakeCache) Get(_ context.Context, key string) (*dmn.Solution, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.getErr != nil {
		return nil, c.getErr
	}
	s, ok := c.solutions[key]
	if !ok {
		return nil, i.ErrCacheMiss
	}
	return &s, nil
}

func (c *fakeCache) Put(_ context.Context, key string, s *dmn.Solution) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.puts++
	c.solutions[key] = *s
	return nil
}

func (c *fakeCache) Lock(_ context.Context, _ string) (func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lockErr != nil {
		return nil, c.lockErr
	}
	c.locks++
	return func() {
		c.mu.Lock()
		c.unlocks++
		c.mu.Unlock()
	}, nil
}

type fakeAccountRepo struct {
	accounts map[string]*dmn.Account
	saveErr  error
	findErr  error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*dmn.Account{}}
}

func (r *fakeAccountRepo) Save(_ context.Context, a *dmn.Account) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.accounts[a.Username] = a
	return nil
}

func (r *fakeAccountRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.Account, error) {
	for _, a := range r.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, i.ErrNotFound
}

func (r *fakeAccountRepo) ByUsername(_ context.Context, username string) (*dmn.Account, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	a, ok := r.accounts[username]
	if !ok {
		return nil, i.ErrNotFound
	}
	return a, nil
}

type fakeTokenizer struct {
	err error
}

func (t *fakeTokenizer) Generate(claims map[string]interface{}, exp time.Duration) (string, error) {
	if t.err != nil {
		return "", t.err
	}
	return fmt.Sprintf("token-%v-%s", claims["accountID"], exp), nil
}

func (t *fakeTokenizer) Decode(string) (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
