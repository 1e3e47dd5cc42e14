package garden

import (
	"strconv"
	"strings"
	"sync"
)

// BestStore persists the best score as a decimal string under a single key.
// *storage.Store implements it against SQLite.
type BestStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// ParseBest converts a stored value to a score. Anything that is not a
// non-negative decimal integer reads as 0.
func ParseBest(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// FormatBest converts a score to its stored form.
func FormatBest(n int) string {
	return strconv.Itoa(n)
}

// MemoryStore is an in-process BestStore.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the value stored under key.
func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// MonotonicStore wraps a BestStore shared by several games so a write never
// lowers the stored score. A game only knows the best it loaded at start;
// without this, a slower session could overwrite a newer, higher best.
type MonotonicStore struct {
	mu    sync.Mutex
	inner BestStore
}

// NewMonotonicStore wraps inner.
func NewMonotonicStore(inner BestStore) *MonotonicStore {
	return &MonotonicStore{inner: inner}
}

// Get returns the value stored under key.
func (m *MonotonicStore) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inner.Get(key)
}

// Set stores value under key unless the stored score is already higher.
func (m *MonotonicStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok, err := m.inner.Get(key)
	if err != nil {
		return err
	}
	if ok && ParseBest(current) >= ParseBest(value) {
		return nil
	}
	return m.inner.Set(key, value)
}
