package settings

import (
	"context"
	"slices"
	"sync"
)

// MemoryBackend keeps documents in process memory.
// Useful for testing or when nothing should outlive the process.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryBackend creates an empty memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: map[string][]byte{}}
}

// NewMemoryStore returns a memory-backed store for profile "default".
func NewMemoryStore() *DocStore {
	return NewDocStore(NewMemoryBackend(), NewDefaultKeyer().SettingsKey("default"))
}

func (b *MemoryBackend) Name() string { return BackendMemory }

func (b *MemoryBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	data, ok := b.data[key]
	return slices.Clone(data), ok, nil
}

func (b *MemoryBackend) Put(ctx context.Context, key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[key] = slices.Clone(data)
	return nil
}

func (b *MemoryBackend) Delete(ctx context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.data, key)
	return nil
}

func (b *MemoryBackend) Location(key string) string { return "memory:" + key }

// Close does nothing for the memory backend.
func (b *MemoryBackend) Close() error { return nil }

// Ensure MemoryBackend implements Backend.
var _ Backend = (*MemoryBackend)(nil)
