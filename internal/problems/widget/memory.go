package widget

import (
	"context"
	"sync"
)

// MemoryStore keeps widget state in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[Key][]byte
}

// NewMemoryStore returns an empty in-memory state store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: map[Key][]byte{}}
}

// GetState returns a copy of the stored blob for key.
func (s *MemoryStore) GetState(_ context.Context, key Key) ([]byte, bool, error) {
	if err := key.Validate(); err != nil {
		return nil, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.states[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

// PutState stores a copy of data for key.
func (s *MemoryStore) PutState(_ context.Context, key Key, data []byte) error {
	if err := key.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[key] = append([]byte(nil), data...)
	return nil
}

// DeleteState removes key. Missing keys are not an error.
func (s *MemoryStore) DeleteState(_ context.Context, key Key) error {
	if err := key.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, key)
	return nil
}
