package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
)

const tokenLifetime = 24 * time.Hour

var ErrUsernameTaken = errors.New("username already taken")

// Auth registers accounts and signs them in with JWTs.
type Auth struct {
	accountRepo i.AccountRepo
	tokenizer   i.Tokenizer
	logger      i.Logger
}

// NewAuthService creates an Auth service.
func NewAuthService(accountRepo i.AccountRepo, tokenizer i.Tokenizer, logger i.Logger) (*Auth, error) {
	if accountRepo == nil || tokenizer == nil || logger == nil {
		return nil, errors.New("account repository, tokenizer and logger are required")
	}
	return &Auth{
		accountRepo: accountRepo,
		tokenizer:   tokenizer,
		logger:      logger,
	}, nil
}

// Register implements i.Authenticator.
func (a *Auth) Register(ctx context.Context, username, password string) (*dmn.Account, error) {
	if _, err := a.accountRepo.ByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, i.ErrNotFound) {
		return nil, err
	}

	account, err := dmn.NewAccount(dmn.AccountConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return nil, err
	}

	if err := a.accountRepo.Save(ctx, account); err != nil {
		if errors.Is(err, i.ErrConflict) {
			return nil, ErrUsernameTaken
		}
		a.logger.Error(fmt.Sprintf("saving account %q: %s", username, err))
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("Registered account %s (%s)", account.ID, account.Username))
	return account, nil
}

// SignIn implements i.Authenticator.
func (a *Auth) SignIn(ctx context.Context, username, password string) (*dmn.Account, string, error) {
	account, err := a.accountRepo.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, i.ErrNotFound) {
			return nil, "", dmn.ErrInvalidCredentials
		}
		a.logger.Error(fmt.Sprintf("loading account %q: %s", username, err))
		return nil, "", fmt.Errorf("loading account: %w", err)
	}

	if !account.VerifyPassword(password) {
		return nil, "", dmn.ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"accountID": account.ID.String(),
		"username":  account.Username,
	}, tokenLifetime)
	if err != nil {
		a.logger.Error(fmt.Sprintf("generating token for %s: %s", account.ID, err))
		return nil, "", err
	}

	return account, token, nil
}
