package blob

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore keeps blobs in a map. Used in tests and local development.
type MemoryStore struct {
	mu        sync.RWMutex
	blobs     map[string][]byte
	container bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs:     make(map[string][]byte),
		container: true,
	}
}

func (s *MemoryStore) Upload(ctx context.Context, path string, data []byte, overwrite bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.blobs[path]; exists && !overwrite {
		return fmt.Errorf("upload %s: blob already exists", path)
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	s.blobs[path] = cp
	return nil
}

func (s *MemoryStore) Download(ctx context.Context, path string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, exists := s.blobs[path]
	if !exists {
		return nil, fmt.Errorf("download %s: blob not found", path)
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (s *MemoryStore) Exists(ctx context.Context, path string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.blobs[path]
	return exists, nil
}

func (s *MemoryStore) ContainerExists(ctx context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.container, nil
}

// SetContainerExists switches what ContainerExists reports.
func (s *MemoryStore) SetContainerExists(exists bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.container = exists
}
