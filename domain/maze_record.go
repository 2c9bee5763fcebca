// Package dmn holds the domain models shared by the service and API layers.
package dmn

import (
	"errors"
	"time"

	"github.com/Sorte1/krunker-maze-generator/maze"
	"github.com/google/uuid"
)

// MazeRecord is one generated maze together with its solved path, keyed for
// later retrieval by the preview API.
type MazeRecord struct {
	ID        uuid.UUID
	Maze      *maze.Maze
	Solution  []maze.Cell
	CreatedAt time.Time
}

// MazeRecordConfig holds parameters for creating a MazeRecord.
type MazeRecordConfig struct {
	Maze     *maze.Maze
	Solution []maze.Cell
}

// NewMazeRecord creates a record with a fresh id and timestamp.
func NewMazeRecord(config MazeRecordConfig) (*MazeRecord, error) {
	if config.Maze == nil {
		return nil, errors.New("maze record requires a maze")
	}
	if len(config.Solution) == 0 {
		return nil, errors.New("maze record requires a solved path")
	}

	return &MazeRecord{
		ID:        uuid.New(),
		Maze:      config.Maze,
		Solution:  config.Solution,
		CreatedAt: time.Now(),
	}, nil
}
