package memstore

import (
	"testing"

	dmn "github.com/Sorte1/krunker-maze-generator/domain"
	"github.com/Sorte1/krunker-maze-generator/maze"
	"github.com/Sorte1/krunker-maze-generator/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(t *testing.T) *dmn.MazeRecord {
	t.Helper()
	m, err := maze.New(1, 1)
	require.NoError(t, err)
	record, err := dmn.NewMazeRecord(dmn.MazeRecordConfig{
		Maze:     m,
		Solution: []maze.Cell{{X: 0, Y: 0}},
	})
	require.NoError(t, err)
	return record
}

func TestMazeStore(t *testing.T) {
	store := NewMazeStore()

	t.Run("save and retrieve", func(t *testing.T) {
		record := newRecord(t)
		require.NoError(t, store.Save(record))

		got, err := store.ByID(record.ID)
		require.NoError(t, err)
		assert.Equal(t, record, got)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := store.ByID(uuid.New())
		assert.ErrorIs(t, err, i.ErrMazeNotFound)
	})

	t.Run("nil record", func(t *testing.T) {
		assert.Error(t, store.Save(nil))
	})
}
