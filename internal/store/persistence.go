package store

import (
	"errors"
	"sync"
)

var (
	// ErrNotFound is returned by Persistence.Load when nothing is stored under a key
	ErrNotFound = errors.New("not found")
	// ErrCorrupt wraps a stored palette that cannot be decoded
	ErrCorrupt = errors.New("palette data is corrupt")
)

// Persistence is the durable key/value storage behind the ColorStore
type Persistence interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// MemoryPersistence keeps values in process memory
type MemoryPersistence struct {
	mu     sync.Mutex
	values map[string][]byte
	// LoadErr and SaveErr, when set, are returned by every Load or Save
	LoadErr error
	SaveErr error
}

// NewMemoryPersistence creates an empty in-memory persistence
func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{values: make(map[string][]byte)}
}

func (m *MemoryPersistence) Load(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	data, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemoryPersistence) Save(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveErr != nil {
		return m.SaveErr
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	m.values[key] = stored
	return nil
}
