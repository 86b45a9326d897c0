package snapshot

import (
	"context"
	"sync"
)

// MemoryStore is the in-memory DocStore used by tests and ephemeral installs.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

var _ DocStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: map[string][]byte{}}
}

func (s *MemoryStore) Get(_ context.Context, tenantID, collection string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[tenantID+"/"+collection]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(doc))
	copy(cp, doc)
	return cp, true, nil
}

func (s *MemoryStore) Put(_ context.Context, tenantID, collection string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(doc))
	copy(cp, doc)
	s.docs[tenantID+"/"+collection] = cp
	return nil
}
