// Package service wires the maze pipeline together: generation, solving,
// rendering, export, and record storage behind one orchestrator.
package service

import (
	"errors"
	"fmt"
	"image"

	dmn "github.com/Sorte1/krunker-maze-generator/domain"
	"github.com/Sorte1/krunker-maze-generator/krunker"
	"github.com/Sorte1/krunker-maze-generator/service/i"
	"github.com/google/uuid"
)

const (
	defaultCellSize      = 40
	defaultWallThickness = 4
)

// Options tune the pixel scale used when a caller does not specify one.
type Options struct {
	CellSize      int
	WallThickness int
}

// MapService runs the generate -> solve -> render/export pipeline and keeps
// the produced records in a store.
type MapService struct {
	generator i.MazeGenerator
	solver    i.PathSolver
	renderer  i.Renderer
	encoder   i.MapEncoder
	store     i.MazeStore
	logger    i.Logger
	opts      *Options
}

// NewMapService creates a MapService. Zero or negative option values fall
// back to the defaults.
func NewMapService(
	generator i.MazeGenerator,
	solver i.PathSolver,
	renderer i.Renderer,
	encoder i.MapEncoder,
	store i.MazeStore,
	logger i.Logger,
	opts *Options,
) (i.MazeService, error) {
	if generator == nil || solver == nil || renderer == nil || encoder == nil || store == nil || logger == nil {
		return nil, errors.New("map service requires all collaborators")
	}

	if opts == nil {
		opts = &Options{}
	}
	if opts.CellSize <= 0 {
		opts.CellSize = defaultCellSize
	}
	if opts.WallThickness <= 0 {
		opts.WallThickness = defaultWallThickness
	}

	return &MapService{
		generator: generator,
		solver:    solver,
		renderer:  renderer,
		encoder:   encoder,
		store:     store,
		logger:    logger,
		opts:      opts,
	}, nil
}

// Create generates a maze, solves it, and stores the record.
func (s *MapService) Create(width, height int, seed *int64) (*dmn.MazeRecord, error) {
	s.logger.Info(fmt.Sprintf("Generating %dx%d maze", width, height))

	m, err := s.generator.Generate(width, height, seed)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Generating maze: %v", err))
		return nil, err
	}

	path, err := s.solver.Solve(m)
	if err != nil {
		// A validated perfect maze is always solvable, so this points at a
		// generator bug rather than bad input.
		s.logger.Error(fmt.Sprintf("Solving generated maze: %v", err))
		return nil, err
	}

	record, err := dmn.NewMazeRecord(dmn.MazeRecordConfig{Maze: m, Solution: path})
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(record); err != nil {
		s.logger.Error(fmt.Sprintf("Saving maze record: %v", err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Maze %s ready, solution length %d", record.ID, len(path)))
	return record, nil
}

// Image rasterizes a stored maze with its solution overlay, optionally
// decorated with spawn markers.
func (s *MapService) Image(id uuid.UUID, cellSize, wallThickness int, markers bool) (image.Image, error) {
	cellSize, wallThickness = s.pixelParams(cellSize, wallThickness)

	record, err := s.store.ByID(id)
	if err != nil {
		return nil, err
	}

	img := s.renderer.Draw(record.Maze, record.Solution, cellSize, wallThickness)
	if markers {
		img, err = s.renderer.Decorate(img, record.Maze, cellSize)
		if err != nil {
			s.logger.Warning(fmt.Sprintf("Decorating maze %s: %v", id, err))
			return nil, err
		}
	}
	return img, nil
}

// LevelMap builds the Krunker document for a stored maze.
func (s *MapService) LevelMap(id uuid.UUID, cellSize, wallThickness int) (*krunker.Map, error) {
	cellSize, wallThickness = s.pixelParams(cellSize, wallThickness)

	record, err := s.store.ByID(id)
	if err != nil {
		return nil, err
	}
	return s.encoder.BuildMap(record.Maze, cellSize, wallThickness), nil
}

func (s *MapService) pixelParams(cellSize, wallThickness int) (int, int) {
	if cellSize <= 0 {
		cellSize = s.opts.CellSize
	}
	if wallThickness <= 0 {
		wallThickness = s.opts.WallThickness
	}
	return cellSize, wallThickness
}
