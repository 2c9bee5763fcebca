package i

import (
	"errors"

	dmn "github.com/Sorte1/krunker-maze-generator/domain"
	"github.com/google/uuid"
)

// ErrMazeNotFound reports that no record exists for the requested ID.
// Stores return it so callers can tell a missing maze apart from an
// internal failure.
var ErrMazeNotFound = errors.New("maze not found")

// MazeStore defines the interface for maze record persistence.
type MazeStore interface {
	// Save keeps a record for later retrieval.
	Save(record *dmn.MazeRecord) error

	// ByID retrieves a record by its unique ID.
	// Returns ErrMazeNotFound if the record does not exist.
	ByID(id uuid.UUID) (*dmn.MazeRecord, error)
}
