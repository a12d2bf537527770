package repo

import (
	"context"
	"testing"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const testNamespace = "pathfinder.records"

// asDoc round-trips v through BSON so mock cursors carry the same encoding
// the repositories decode.
func asDoc(t *testing.T, v interface{}) bson.D {
	t.Helper()
	raw, err := bson.Marshal(v)
	require.NoError(t, err)
	var doc bson.D
	require.NoError(t, bson.Unmarshal(raw, &doc))
	return doc
}

func TestMazeRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	record, err := dmn.NewMazeRecord(dmn.MazeRecordConfig{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Name:    "corridor",
		Grid:    [][]int{{0, 1}, {0, 0}},
	})
	require.NoError(t, err)

	mt.Run("Save", func(mt *mtest.T) {
		repo := &MazeRepo{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		assert.NoError(mt, repo.Save(ctx, record))
	})

	mt.Run("ByID found", func(mt *mtest.T) {
		repo := &MazeRepo{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(1, testNamespace, mtest.FirstBatch, asDoc(t, record)))

		got, err := repo.ByID(ctx, record.ID)
		require.NoError(mt, err)
		assert.Equal(mt, record.ID, got.ID)
		assert.Equal(mt, record.Grid, got.Grid)
		assert.Equal(mt, "corridor", got.Name)
	})

	mt.Run("ByID missing", func(mt *mtest.T) {
		repo := &MazeRepo{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch))

		_, err := repo.ByID(ctx, uuid.New())
		assert.ErrorIs(mt, err, i.ErrNotFound)
	})
}

func TestAccountRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	account := &dmn.Account{
		ID:           uuid.New(),
		Username:     "maze_runner",
		PasswordHash: "hash",
	}

	mt.Run("Save", func(mt *mtest.T) {
		repo := &AccountRepo{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		assert.NoError(mt, repo.Save(ctx, account))
	})

	mt.Run("Save duplicate username", func(mt *mtest.T) {
		repo := &AccountRepo{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))
		assert.ErrorIs(mt, repo.Save(ctx, account), i.ErrConflict)
	})

	mt.Run("ByUsername found", func(mt *mtest.T) {
		repo := &AccountRepo{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(1, testNamespace, mtest.FirstBatch, asDoc(t, account)))

		got, err := repo.ByUsername(ctx, "maze_runner")
		require.NoError(mt, err)
		assert.Equal(mt, account.ID, got.ID)
	})

	mt.Run("ByID missing", func(mt *mtest.T) {
		repo := &AccountRepo{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch))

		_, err := repo.ByID(ctx, uuid.New())
		assert.ErrorIs(mt, err, i.ErrNotFound)
	})
}
