package maze

import (
	"fmt"
	"math/rand"
	"time"
)

// Generator produces carved and validated mazes. It implements the
// service-level maze generator interface.
type Generator struct{}

// NewGenerator creates a maze Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds a fully walled grid, carves it, and validates the result.
// A nil seed draws a fresh seed from the clock; a fixed seed reproduces the
// same wall layout on every call.
func (g *Generator) Generate(width, height int, seed *int64) (*Maze, error) {
	m, err := New(width, height)
	if err != nil {
		return nil, err
	}

	s := time.Now().UnixNano()
	if seed != nil {
		s = *seed
	}
	m.Generate(rand.New(rand.NewSource(s)))

	if err := m.CheckPerfect(); err != nil {
		return nil, fmt.Errorf("generated maze failed validation: %w", err)
	}
	return m, nil
}
