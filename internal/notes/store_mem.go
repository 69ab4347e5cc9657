package notes

import (
	"context"
	"sync"
)

type MemStore struct {
	mu   sync.RWMutex
	data map[string][]Note // userID -> notes, oldest first
}

func NewMemStore() *MemStore {
	return &MemStore{data: map[string][]Note{}}
}

func (s *MemStore) Append(_ context.Context, userID string, n Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = append(s.data[userID], n)
	return nil
}

func (s *MemStore) Update(_ context.Context, userID, id string, mutate func(*Note)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs := s.data[userID]
	for i := range recs {
		if recs[i].ID == id {
			mutate(&recs[i])
			return nil
		}
	}
	return nil
}

func (s *MemStore) Delete(_ context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs := s.data[userID]
	for i := range recs {
		if recs[i].ID == id {
			s.data[userID] = append(recs[:i], recs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *MemStore) List(_ context.Context, userID string) ([]Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Note(nil), s.data[userID]...), nil
}
