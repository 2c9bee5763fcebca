package i

import (
	"image"

	dmn "github.com/Sorte1/krunker-maze-generator/domain"
	"github.com/Sorte1/krunker-maze-generator/krunker"
	"github.com/google/uuid"
)

// MazeService orchestrates the generate, solve, render, and export pipeline.
type MazeService interface {
	// Create generates and solves a maze, stores the record, and returns it.
	Create(width, height int, seed *int64) (*dmn.MazeRecord, error)

	// Image rasterizes a stored maze. Zero pixel parameters fall back to
	// the service defaults.
	Image(id uuid.UUID, cellSize, wallThickness int, markers bool) (image.Image, error)

	// LevelMap builds the Krunker document for a stored maze.
	LevelMap(id uuid.UUID, cellSize, wallThickness int) (*krunker.Map, error)
}
