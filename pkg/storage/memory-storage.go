package storage

import (
	"context"
	"slices"
	"sync"
)

// MemoryStorage keeps the inventory in process. It is the default when no
// data folder or redis is configured, and what tests run against.
type MemoryStorage struct {
	mu       sync.RWMutex
	snapshot *Snapshot
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) LoadInventory(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.snapshot == nil {
		return Snapshot{}, ErrNotFound
	}
	ret := *m.snapshot
	ret.Items = slices.Clone(m.snapshot.Items)
	return ret, nil
}

func (m *MemoryStorage) UpdateInventory(ctx context.Context, fn UpdateFunc) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var current Snapshot
	found := m.snapshot != nil
	if found {
		current = *m.snapshot
		current.Items = slices.Clone(m.snapshot.Items)
	}
	next, err := fn(current, found)
	if err != nil {
		return Snapshot{}, err
	}
	stored := next
	stored.Items = slices.Clone(next.Items)
	m.snapshot = &stored
	return next, nil
}

func (m *MemoryStorage) SaveInventory(ctx context.Context, snapshot Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	snapshot.Items = slices.Clone(snapshot.Items)
	m.snapshot = &snapshot
	return nil
}
