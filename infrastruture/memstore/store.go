// Package memstore keeps generated maze records in memory for the preview
// API.
package memstore

import (
	"errors"
	"sync"

	dmn "github.com/Sorte1/krunker-maze-generator/domain"
	"github.com/Sorte1/krunker-maze-generator/service/i"
	"github.com/google/uuid"
)

// MazeStore handles the persistence of maze records for one process
// lifetime.
type MazeStore struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*dmn.MazeRecord
}

// NewMazeStore creates an empty in-memory store.
func NewMazeStore() *MazeStore {
	return &MazeStore{
		records: make(map[uuid.UUID]*dmn.MazeRecord),
	}
}

// Save keeps a record, replacing any previous record with the same ID.
func (s *MazeStore) Save(record *dmn.MazeRecord) error {
	if record == nil {
		return errors.New("nil maze record")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.ID] = record
	return nil
}

// ByID retrieves a record by its ID.
// Returns i.ErrMazeNotFound if the record does not exist.
func (s *MazeStore) ByID(id uuid.UUID) (*dmn.MazeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return nil, i.ErrMazeNotFound
	}
	return record, nil
}
