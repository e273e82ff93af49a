package kv

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the in-process Store used by tests and by sessions degraded
// to memory-only persistence when the durable store is unavailable.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]memoryEntry
	lists  map[string][][]byte
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time // zero means no expiry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]memoryEntry),
		lists:  make(map[string][][]byte),
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.values[key]
	if !ok || m.expired(entry) {
		delete(m.values, key)
		return nil, ErrNotFound
	}
	out := make([]byte, len(entry.data))
	copy(out, entry.data)
	return out, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = newEntry(value, ttl)
	return nil
}

func (m *MemoryStore) SetNX(_ context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry, ok := m.values[key]; ok && !m.expired(entry) {
		return false, nil
	}
	m.values[key] = newEntry(value, ttl)
	return true, nil
}

func (m *MemoryStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	delete(m.lists, key)
	return nil
}

func (m *MemoryStore) RPush(_ context.Context, key string, value []byte, maxLen int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := append(m.lists[key], value)
	if maxLen > 0 && int64(len(list)) > maxLen {
		list = list[int64(len(list))-maxLen:]
	}
	m.lists[key] = list
	return nil
}

func (m *MemoryStore) PopAll(_ context.Context, key string) ([][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.lists[key]
	delete(m.lists, key)
	return list, nil
}

func newEntry(value []byte, ttl time.Duration) memoryEntry {
	data := make([]byte, len(value))
	copy(data, value)
	entry := memoryEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	return entry
}

func (m *MemoryStore) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt)
}
