package i

import "github.com/Sorte1/krunker-maze-generator/maze"

// MazeGenerator produces carved, validated mazes.
type MazeGenerator interface {
	// Generate carves a perfect maze of the given dimensions. A nil seed
	// means non-deterministic generation; a fixed seed reproduces the same
	// wall layout.
	Generate(width, height int, seed *int64) (*maze.Maze, error)
}

// PathSolver computes shortest corner-to-corner paths.
type PathSolver interface {
	// Solve returns a minimum-length path from the start cell to the goal
	// cell, or an error when the goal is unreachable.
	Solve(m *maze.Maze) ([]maze.Cell, error)
}
