package service

import (
	"context"
	"errors"
	"testing"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "correct-horse-battery-staple-42"

func TestAuth(t *testing.T) {
	ctx := context.Background()

	newAuth := func(t *testing.T) (*Auth, *fakeAccountRepo, *fakeTokenizer) {
		repo := newFakeAccountRepo()
		tokenizer := &fakeTokenizer{}
		a, err := NewAuthService(repo, tokenizer, &fakeLogger{})
		require.NoError(t, err)
		return a, repo, tokenizer
	}

	t.Run("Register then sign in", func(t *testing.T) {
		a, _, _ := newAuth(t)
		account, err := a.Register(ctx, "maze_runner", testPassword)
		require.NoError(t, err)

		signedIn, token, err := a.SignIn(ctx, "maze_runner", testPassword)
		require.NoError(t, err)
		assert.Equal(t, account.ID, signedIn.ID)
		assert.Contains(t, token, account.ID.String())
	})

	t.Run("Duplicate username", func(t *testing.T) {
		a, _, _ := newAuth(t)
		_, err := a.Register(ctx, "maze_runner", testPassword)
		require.NoError(t, err)
		_, err = a.Register(ctx, "maze_runner", testPassword)
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("Conflict on save", func(t *testing.T) {
		a, repo, _ := newAuth(t)
		repo.saveErr = i.ErrConflict
		_, err := a.Register(ctx, "maze_runner", testPassword)
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("Weak password", func(t *testing.T) {
		a, _, _ := newAuth(t)
		_, err := a.Register(ctx, "maze_runner", "123")
		assert.ErrorIs(t, err, dmn.ErrWeakPassword)
	})

	t.Run("Wrong credentials", func(t *testing.T) {
		a, _, _ := newAuth(t)
		_, err := a.Register(ctx, "maze_runner", testPassword)
		require.NoError(t, err)

		_, _, err = a.SignIn(ctx, "maze_runner", "not-the-password")
		assert.ErrorIs(t, err, dmn.ErrInvalidCredentials)
		_, _, err = a.SignIn(ctx, "nobody", testPassword)
		assert.ErrorIs(t, err, dmn.ErrInvalidCredentials)
	})

	t.Run("Repository failure on sign in", func(t *testing.T) {
		a, repo, _ := newAuth(t)
		outage := errors.New("server selection timeout")
		repo.findErr = outage

		_, _, err := a.SignIn(ctx, "maze_runner", testPassword)
		assert.ErrorIs(t, err, outage)
		assert.NotErrorIs(t, err, dmn.ErrInvalidCredentials)
	})

	t.Run("Tokenizer failure", func(t *testing.T) {
		a, _, tokenizer := newAuth(t)
		_, err := a.Register(ctx, "maze_runner", testPassword)
		require.NoError(t, err)
		tokenizer.err = errors.New("signing failed")

		_, _, err = a.SignIn(ctx, "maze_runner", testPassword)
		assert.Error(t, err)
	})
}
