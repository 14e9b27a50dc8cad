package localstore

import (
	"context"
	"sync"

	"github.com/heartmarshall/pet-health-journal/internal/domain"
)

// Backend durably stores one serialized collection per namespace.
// Load returns domain.ErrNotFound when nothing was saved yet.
type Backend interface {
	Load(ctx context.Context, namespace string) ([]byte, error)
	Save(ctx context.Context, namespace string, blob []byte) error
}

// MemoryBackend keeps blobs in process memory. Data does not survive a
// restart.
type MemoryBackend struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryBackend creates an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{blobs: make(map[string][]byte)}
}

func (m *MemoryBackend) Load(_ context.Context, namespace string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	blob, ok := m.blobs[namespace]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), blob...), nil
}

func (m *MemoryBackend) Save(_ context.Context, namespace string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blobs[namespace] = append([]byte(nil), blob...)
	return nil
}

func (m *MemoryBackend) Ping(context.Context) error { return nil }
