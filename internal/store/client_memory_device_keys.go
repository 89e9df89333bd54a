package store

import (
	"context"
	"sync"
)

type memoryDeviceKeyCache struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewMemoryDeviceKeyCache returns a [DeviceKeyCache] that lives only as long
// as the process. Used for ephemeral profiles and tests.
func NewMemoryDeviceKeyCache() DeviceKeyCache {
	return &memoryDeviceKeyCache{items: make(map[string][]byte)}
}

func (m *memoryDeviceKeyCache) Put(_ context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = cloneBytes(value)
	return nil
}

func (m *memoryDeviceKeyCache) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.items[key]
	if !ok {
		return nil, nil
	}
	return cloneBytes(value), nil
}

func (m *memoryDeviceKeyCache) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.items)
	return nil
}
