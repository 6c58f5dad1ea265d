package memories

import (
	"context"
	"sync"
)

// MemoryBlobStorage keeps uploaded media in process memory. It backs local
// development when no object store is reachable, and tests.
type MemoryBlobStorage struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryBlobStorage() *MemoryBlobStorage {
	return &MemoryBlobStorage{blobs: make(map[string][]byte)}
}

func (m *MemoryBlobStorage) Put(ctx context.Context, key string, contentType string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	buf := make([]byte, len(data))
	copy(buf, data)
	m.blobs[key] = buf
	return nil
}

func (m *MemoryBlobStorage) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, key)
	return nil
}

func (m *MemoryBlobStorage) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.blobs[key]
	return data, ok
}

func (m *MemoryBlobStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.blobs)
}
