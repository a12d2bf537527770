package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
)

// Authenticator registers accounts and issues access tokens.
type Authenticator interface {
	Register(ctx context.Context, username, password string) (*dmn.Account, error)
	SignIn(ctx context.Context, username, password string) (*dmn.Account, string, error)
}
