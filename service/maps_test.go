package service

import (
	"io"
	"testing"

	"github.com/Sorte1/krunker-maze-generator/infrastruture/applog"
	"github.com/Sorte1/krunker-maze-generator/infrastruture/memstore"
	"github.com/Sorte1/krunker-maze-generator/krunker"
	"github.com/Sorte1/krunker-maze-generator/maze"
	"github.com/Sorte1/krunker-maze-generator/render"
	"github.com/Sorte1/krunker-maze-generator/service/i"
	"github.com/Sorte1/krunker-maze-generator/solver"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, opts *Options) i.MazeService {
	t.Helper()
	logger, err := applog.New("TEST", io.Discard)
	require.NoError(t, err)

	svc, err := NewMapService(
		maze.NewGenerator(),
		solver.New(),
		render.NewRenderer(),
		krunker.NewEncoder(),
		memstore.NewMazeStore(),
		logger,
		opts,
	)
	require.NoError(t, err)
	return svc
}

func TestCreate(t *testing.T) {
	svc := newTestService(t, nil)

	t.Run("generates a solved maze", func(t *testing.T) {
		seed := int64(5)
		record, err := svc.Create(6, 4, &seed)
		require.NoError(t, err)

		assert.NoError(t, record.Maze.CheckPerfect())
		assert.Equal(t, record.Maze.Start(), record.Solution[0])
		assert.Equal(t, record.Maze.Goal(), record.Solution[len(record.Solution)-1])
	})

	t.Run("rejects bad dimensions", func(t *testing.T) {
		_, err := svc.Create(0, 4, nil)
		assert.Error(t, err)
	})
}

func TestImage(t *testing.T) {
	svc := newTestService(t, &Options{CellSize: 10, WallThickness: 2})

	seed := int64(11)
	record, err := svc.Create(3, 3, &seed)
	require.NoError(t, err)

	t.Run("uses option defaults when parameters are zero", func(t *testing.T) {
		img, err := svc.Image(record.ID, 0, 0, false)
		require.NoError(t, err)
		assert.Equal(t, 3*10+2, img.Bounds().Dx())
		assert.Equal(t, 3*10+2, img.Bounds().Dy())
	})

	t.Run("explicit parameters win", func(t *testing.T) {
		img, err := svc.Image(record.ID, 20, 4, true)
		require.NoError(t, err)
		assert.Equal(t, 3*20+4, img.Bounds().Dx())
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Image(uuid.New(), 0, 0, false)
		assert.Error(t, err)
	})
}

func TestLevelMap(t *testing.T) {
	svc := newTestService(t, nil)

	seed := int64(21)
	record, err := svc.Create(2, 2, &seed)
	require.NoError(t, err)

	doc, err := svc.LevelMap(record.ID, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{2 * 40, 1, 2 * 40}, doc.XYZ[:3], "floor scaled by the default cell size")
	assert.Len(t, doc.Spawns, 2)

	_, err = svc.LevelMap(uuid.New(), 0, 0)
	assert.Error(t, err)
}
