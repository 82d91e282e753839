package store

import (
	"errors"
	"sync"
)

// ErrQuotaExceeded is returned by a slot that cannot hold the value.
var ErrQuotaExceeded = errors.New("store: quota exceeded")

// Slot is a durable key-value area holding the board document. SetItem is
// synchronous and may fail.
type Slot interface {
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
}

// MemorySlot keeps values in process. A positive quota caps the size of a
// single value in bytes.
type MemorySlot struct {
	mu    sync.Mutex
	items map[string]string
	quota int
	sets  int
}

// NewMemorySlot returns an empty slot; quota <= 0 means unlimited.
func NewMemorySlot(quota int) *MemorySlot {
	return &MemorySlot{items: make(map[string]string), quota: quota}
}

func (m *MemorySlot) GetItem(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *MemorySlot) SetItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.quota > 0 && len(value) > m.quota {
		return ErrQuotaExceeded
	}
	m.items[key] = value
	m.sets++
	return nil
}

// Sets returns how many writes succeeded.
func (m *MemorySlot) Sets() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sets
}
