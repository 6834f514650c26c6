package prefs

import "sync"

// MemoryKV is an in-memory KV.
type MemoryKV struct {
	mu     sync.Mutex
	values map[string]string
	writes int
}

// NewMemoryKV returns a KV seeded with values.
func NewMemoryKV(values map[string]string) *MemoryKV {
	m := &MemoryKV{values: map[string]string{}}
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

// Get implements KV.
func (m *MemoryKV) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

// Set implements KV.
func (m *MemoryKV) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	m.writes++
}

// Writes returns the number of Set calls.
func (m *MemoryKV) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
