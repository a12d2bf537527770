package i

import (
	"context"
	"errors"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record conflict")
)

// AccountRepo defines the interface for account persistence operations.
type AccountRepo interface {
	// Save inserts or updates an account.
	// Returns ErrConflict when the username is taken by another account.
	Save(ctx context.Context, account *dmn.Account) error

	// ByID retrieves an account by its unique ID.
	// Returns ErrNotFound if the account does not exist.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Account, error)

	// ByUsername retrieves an account by its username.
	// Returns ErrNotFound if the account does not exist.
	ByUsername(ctx context.Context, username string) (*dmn.Account, error)
}

// MazeRepo defines the interface for stored maze operations.
type MazeRepo interface {
	// Save inserts or replaces a maze record.
	Save(ctx context.Context, record *dmn.MazeRecord) error

	// ByID retrieves a maze by its unique ID.
	// Returns ErrNotFound if the maze does not exist.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)
}
