package cache

import (
	"context"
	"sync"
)

// Memory is an in-process string cache that counts hits.
type Memory struct {
	mu   sync.RWMutex
	db   map[string]string
	hits int
}

// NewMemory creates an empty cache.
func NewMemory() *Memory {
	return &Memory{db: make(map[string]string)}
}

// Get returns the value for key and counts a hit when present.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.db[key]
	if ok {
		m.hits++
	}
	return v, ok, nil
}

// Set stores value under key.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	m.db[key] = value
	m.mu.Unlock()
	return nil
}

// Hits returns how many lookups found a value.
func (m *Memory) Hits() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hits
}

// Len returns the number of stored keys.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.db)
}

// Flush drops every key and resets the hit counter.
func (m *Memory) Flush() {
	m.mu.Lock()
	m.db = make(map[string]string)
	m.hits = 0
	m.mu.Unlock()
}
