/*
Package maze provides the wall grid for rectangular mazes and the operations
that carve and validate them.

A maze is stored as two wall registries: vertical walls separating
horizontally adjacent cells and horizontal walls separating vertically
adjacent cells. Boundary walls are part of the registries and stay present
for the lifetime of the maze. Carving with Generate turns the fully walled
grid into a perfect maze, one whose open passages form a spanning tree over
the cells, so every pair of cells is connected by exactly one route.
*/
package maze

import (
	"fmt"
	"strings"
)

// Maze is the wall grid of a width x height maze. The zero value is not
// usable; construct with New.
type Maze struct {
	width  int
	height int

	// vertWalls[y][x] is true iff a wall separates cell (x-1, y) from
	// cell (x, y). Columns 0 and width are the outer boundary.
	vertWalls [][]bool

	// horWalls[y][x] is true iff a wall separates cell (x, y-1) from
	// cell (x, y). Rows 0 and height are the outer boundary.
	horWalls [][]bool
}

// New creates a fully walled maze of the given dimensions.
func New(width, height int) (*Maze, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid maze dimensions %dx%d: both must be at least 1", width, height)
	}
	if (width * height / width) != height {
		return nil, fmt.Errorf("invalid maze dimensions %dx%d: cell count overflows", width, height)
	}

	vertWalls := make([][]bool, height)
	for y := range vertWalls {
		vertWalls[y] = make([]bool, width+1)
		for x := range vertWalls[y] {
			vertWalls[y][x] = true
		}
	}

	horWalls := make([][]bool, height+1)
	for y := range horWalls {
		horWalls[y] = make([]bool, width)
		for x := range horWalls[y] {
			horWalls[y][x] = true
		}
	}

	return &Maze{
		width:     width,
		height:    height,
		vertWalls: vertWalls,
		horWalls:  horWalls,
	}, nil
}

// Width returns the number of cell columns.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the number of cell rows.
func (m *Maze) Height() int {
	return m.height
}

// Start returns the fixed entry cell, the top-left corner.
func (m *Maze) Start() Cell {
	return Cell{X: 0, Y: 0}
}

// Goal returns the fixed exit cell, the bottom-right corner.
func (m *Maze) Goal() Cell {
	return Cell{X: m.width - 1, Y: m.height - 1}
}

// HasVerticalWall reports whether a wall separates cell (x-1, y) from
// cell (x, y). Coordinates outside the registry panic; callers are
// expected to stay in bounds rather than rely on clamping.
func (m *Maze) HasVerticalWall(x, y int) bool {
	return m.vertWalls[y][x]
}

// HasHorizontalWall reports whether a wall separates cell (x, y-1) from
// cell (x, y).
func (m *Maze) HasHorizontalWall(x, y int) bool {
	return m.horWalls[y][x]
}

// RemoveVerticalWall opens the wall between cell (x-1, y) and cell (x, y).
// Only the generator should mutate walls.
func (m *Maze) RemoveVerticalWall(x, y int) {
	m.vertWalls[y][x] = false
}

// RemoveHorizontalWall opens the wall between cell (x, y-1) and cell (x, y).
func (m *Maze) RemoveHorizontalWall(x, y int) {
	m.horWalls[y][x] = false
}

// RemovedWalls counts the open passages across both registries. A perfect
// maze has exactly width*height - 1 of them.
func (m *Maze) RemovedWalls() int {
	count := 0
	for y := range m.vertWalls {
		for x := range m.vertWalls[y] {
			if !m.vertWalls[y][x] {
				count++
			}
		}
	}
	for y := range m.horWalls {
		for x := range m.horWalls[y] {
			if !m.horWalls[y][x] {
				count++
			}
		}
	}
	return count
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	var output strings.Builder

	for y := 0; y < m.height; y++ {
		// Wall row above the cells
		for x := 0; x < m.width; x++ {
			if m.horWalls[y][x] {
				output.WriteString("+---")
			} else {
				output.WriteString("+   ")
			}
		}
		output.WriteString("+\n")

		// Cell row
		for x := 0; x < m.width; x++ {
			if m.vertWalls[y][x] {
				output.WriteString("|   ")
			} else {
				output.WriteString("    ")
			}
		}
		if m.vertWalls[y][m.width] {
			output.WriteString("|\n")
		} else {
			output.WriteString(" \n")
		}
	}

	// Bottom boundary
	for x := 0; x < m.width; x++ {
		if m.horWalls[m.height][x] {
			output.WriteString("+---")
		} else {
			output.WriteString("+   ")
		}
	}
	output.WriteString("+\n")

	return output.String()
}
