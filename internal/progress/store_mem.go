package progress

import (
	"context"
	"sort"
	"sync"
)

// MemStore is the in-memory Store used by tests and as the fallback when a
// file store cannot be opened.
type MemStore struct {
	mu   sync.RWMutex
	data map[string]map[int]ModuleProgress // userID -> moduleID -> record
}

func NewMemStore() *MemStore {
	return &MemStore{data: map[string]map[int]ModuleProgress{}}
}

func (s *MemStore) Get(_ context.Context, userID string, moduleID int) (*ModuleProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.data[userID][moduleID]
	if !ok {
		return nil, nil
	}
	cp := p
	return &cp, nil
}

func (s *MemStore) List(_ context.Context, userID string) ([]ModuleProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ModuleProgress, 0, len(s.data[userID]))
	for _, p := range s.data[userID] {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ModuleID < out[j].ModuleID })
	return out, nil
}

func (s *MemStore) Put(_ context.Context, userID string, p ModuleProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data[userID] == nil {
		s.data[userID] = map[int]ModuleProgress{}
	}
	s.data[userID][p.ModuleID] = p
	return nil
}
