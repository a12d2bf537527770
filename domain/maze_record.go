package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/google/uuid"
)

const maxMazeNameLength = 64

var (
	ErrEmptyMazeName   = errors.New("maze name is required")
	ErrMazeNameTooLong = errors.New("maze name too long")
)

// MazeRecord is a stored grid owned by an account.
type MazeRecord struct {
	ID        uuid.UUID `bson:"_id"`
	OwnerID   uuid.UUID `bson:"ownerId"`
	Name      string    `bson:"name"`
	Grid      [][]int   `bson:"grid"`
	Rows      int       `bson:"rows"`
	Cols      int       `bson:"cols"`
	CreatedAt time.Time `bson:"createdAt"`
}

// MazeRecordConfig holds the parameters for creating a MazeRecord.
type MazeRecordConfig struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
	Grid    [][]int
}

// NewMazeRecord validates the name and grid. The stored grid is normalised
// to 0 (open) and 1 (wall).
func NewMazeRecord(config MazeRecordConfig) (*MazeRecord, error) {
	name := strings.TrimSpace(config.Name)
	if name == "" {
		return nil, ErrEmptyMazeName
	}
	if len(name) > maxMazeNameLength {
		return nil, ErrMazeNameTooLong
	}

	g, err := maze.NewGrid(config.Grid)
	if err != nil {
		return nil, err
	}

	return &MazeRecord{
		ID:        config.ID,
		OwnerID:   config.OwnerID,
		Name:      name,
		Grid:      g.Ints(),
		Rows:      g.Rows(),
		Cols:      g.Cols(),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// MazeGrid rebuilds the solver grid from the stored cells.
func (r *MazeRecord) MazeGrid() (*maze.Grid, error) {
	return maze.NewGrid(r.Grid)
}
