package notes

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// FileStore mirrors the note collection to a JSON file, with the same
// reset-to-empty recovery policy as the progress store: corrupt or missing
// data starts empty and is logged, never fatal.
type FileStore struct {
	mu   sync.RWMutex
	path string
	log  *zap.SugaredLogger
	data map[string][]Note
}

func NewFileStore(dir string, log *zap.SugaredLogger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	s := &FileStore{
		path: filepath.Join(dir, "notes.json"),
		log:  log,
		data: map[string][]Note{},
	}
	s.load()
	return s, nil
}

func (s *FileStore) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warnw("note store unreadable, starting empty", "path", s.path, "err", err)
		}
		return
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		s.log.Warnw("note store corrupt, starting empty", "path", s.path, "err", err)
		s.data = map[string][]Note{}
	}
}

func (s *FileStore) Append(_ context.Context, userID string, n Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = append(s.data[userID], n)
	return s.persist()
}

func (s *FileStore) Update(_ context.Context, userID, id string, mutate func(*Note)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs := s.data[userID]
	for i := range recs {
		if recs[i].ID == id {
			mutate(&recs[i])
			return s.persist()
		}
	}
	return nil
}

func (s *FileStore) Delete(_ context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs := s.data[userID]
	for i := range recs {
		if recs[i].ID == id {
			s.data[userID] = append(recs[:i], recs[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

func (s *FileStore) List(_ context.Context, userID string) ([]Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Note(nil), s.data[userID]...), nil
}

func (s *FileStore) persist() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
