package cache

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process Cache safe for concurrent use. A zero TTL keeps
// entries forever.
type Memory struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

type memoryEntry struct {
	Entry
	expires time.Time
}

// NewMemory returns an empty Memory cache.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{ttl: ttl, now: time.Now, entries: make(map[string]memoryEntry)}
}

// Get implements Cache.
func (m *Memory) Get(_ context.Context, key string) (Entry, error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok || (!e.expires.IsZero() && m.now().After(e.expires)) {
		return Entry{}, ErrMiss
	}

	return e.Entry, nil
}

// Set implements Cache.
func (m *Memory) Set(_ context.Context, key string, e Entry) error {
	me := memoryEntry{Entry: e}
	if m.ttl > 0 {
		me.expires = m.now().Add(m.ttl)
	}
	m.mu.Lock()
	m.entries[key] = me
	m.mu.Unlock()

	return nil
}

// Len returns the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}
