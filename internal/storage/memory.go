package storage

import "sync"

// MemoryStore keeps the blob in process memory. Used for tests and
// ephemeral runs; contents are lost on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	content string
	written bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (ms *MemoryStore) Read() (string, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.content, nil
}

func (ms *MemoryStore) Write(content string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.content = content
	ms.written = true
	return nil
}

func (ms *MemoryStore) Exists() bool {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.written
}
