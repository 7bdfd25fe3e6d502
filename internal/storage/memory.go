package storage

import (
	"context"
	"sync"
)

// Memory is an in-process Store used in tests and as the reference
// implementation of whole-collection replace semantics.
type Memory struct {
	mu          sync.RWMutex
	collections map[Collection][]byte
	failWrites  map[Collection]error
}

func NewMemory() *Memory {
	return &Memory{
		collections: make(map[Collection][]byte),
		failWrites:  make(map[Collection]error),
	}
}

func (m *Memory) Read(_ context.Context, c Collection) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.collections[c]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *Memory) Write(_ context.Context, c Collection, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.failWrites[c]; err != nil {
		return err
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	m.collections[c] = stored
	return nil
}

// FailWrites makes every subsequent Write to the collection return err.
// Pass nil to clear. Tests use this to exercise rollback paths.
func (m *Memory) FailWrites(c Collection, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err == nil {
		delete(m.failWrites, c)
		return
	}
	m.failWrites[c] = err
}

// Seed stores raw collection bytes directly, bypassing failure injection.
func (m *Memory) Seed(c Collection, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[c] = data
}
