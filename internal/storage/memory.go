package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore keeps values for the lifetime of the process only
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, key string, value any) error {
	s.mu.RLock()
	contents, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	if err := json.Unmarshal(contents, value); err != nil {
		return fmt.Errorf("json.Unmarshal(%s) > %w", key, err)
	}
	return nil
}

func (s *MemoryStore) Save(_ context.Context, key string, value any) error {
	contents, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("json.Marshal(%s) > %w", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = contents
	return nil
}
