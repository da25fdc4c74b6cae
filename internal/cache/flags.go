package cache

import (
	"errors"
	"sync"
)

var ErrNotStored = errors.New("key already present")

// Flags is a best-effort key to boolean store. Implementations may lose
// entries at any time; callers must treat a miss as "unknown".
type Flags interface {
	Get(key string) (value bool, ok bool)
	// Add stores value only if key is absent, ErrNotStored otherwise.
	Add(key string, value bool) error
}

type MemoryFlags struct {
	mu    sync.RWMutex
	flags map[string]bool
}

func NewMemoryFlags() *MemoryFlags {
	return &MemoryFlags{flags: make(map[string]bool)}
}

func (m *MemoryFlags) Get(key string) (bool, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.flags[key]
	return v, ok
}

func (m *MemoryFlags) Add(key string, value bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.flags[key]; ok {
		return ErrNotStored
	}
	m.flags[key] = value
	return nil
}
