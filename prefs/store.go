package prefs

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Store persists preference records
type Store interface {
	// Load returns the record of `id`, or false when none is stored
	Load(ctx context.Context, id uuid.UUID) (*Record, bool, error)
	Save(ctx context.Context, id uuid.UUID, rec *Record) error
}

// MemoryStore keeps records in memory for the lifetime of the process
type MemoryStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]*Record
}

// NewMemoryStore returns an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[uuid.UUID]*Record{}}
}

// Load implements Store
func (s *MemoryStore) Load(_ context.Context, id uuid.UUID) (*Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, false, nil
	}
	return rec.Clone(), true, nil
}

// Save implements Store
func (s *MemoryStore) Save(_ context.Context, id uuid.UUID, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[id] = rec.Clone()
	return nil
}
