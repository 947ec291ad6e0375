package store

import (
	"context"
	"slices"
	"strings"
	"sync"
)

// memoryLocalStorage keeps keys in a map. Nothing survives a restart.
type memoryLocalStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryLocalStorage returns an empty in-memory [LocalStorage].
func NewMemoryLocalStorage() LocalStorage {
	return &memoryLocalStorage{items: make(map[string]string)}
}

func (s *memoryLocalStorage) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[key]
	return v, ok, nil
}

func (s *memoryLocalStorage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = value
	return nil
}

func (s *memoryLocalStorage) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	return nil
}

func (s *memoryLocalStorage) Keys(_ context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := []string{}
	for k := range s.items {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys, nil
}

func (s *memoryLocalStorage) Close() error {
	return nil
}
