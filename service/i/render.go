package i

import (
	"image"

	"github.com/Sorte1/krunker-maze-generator/krunker"
	"github.com/Sorte1/krunker-maze-generator/maze"
)

// Renderer rasterizes a maze and its solved path.
type Renderer interface {
	// Draw renders walls and the path overlay at the given pixel scale.
	Draw(m *maze.Maze, path []maze.Cell, cellSize, wallThickness int) *image.RGBA

	// Decorate composites start and goal markers over a rendered maze.
	Decorate(img *image.RGBA, m *maze.Maze, cellSize int) (*image.RGBA, error)
}

// MapEncoder assembles the Krunker level-description document.
type MapEncoder interface {
	BuildMap(m *maze.Maze, cellSize, wallThickness int) *krunker.Map
}
