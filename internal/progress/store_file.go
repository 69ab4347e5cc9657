package progress

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// FileStore keeps the full progress collection in memory and mirrors it to
// a single JSON file, the server-side analog of browser-local storage.
// Missing or corrupt data resets to an empty collection instead of failing:
// cached progress is inconvenient to lose but not catastrophic. Every reset
// is logged so corruption does not pass silently.
type FileStore struct {
	mu   sync.RWMutex
	path string
	log  *zap.SugaredLogger
	data map[string][]ModuleProgress // userID -> records
}

func NewFileStore(dir string, log *zap.SugaredLogger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	s := &FileStore{
		path: filepath.Join(dir, "progress.json"),
		log:  log,
		data: map[string][]ModuleProgress{},
	}
	s.load()
	return s, nil
}

func (s *FileStore) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warnw("progress store unreadable, starting empty", "path", s.path, "err", err)
		}
		return
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		s.log.Warnw("progress store corrupt, starting empty", "path", s.path, "err", err)
		s.data = map[string][]ModuleProgress{}
	}
}

func (s *FileStore) Get(_ context.Context, userID string, moduleID int) (*ModuleProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.data[userID] {
		if p.ModuleID == moduleID {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *FileStore) List(_ context.Context, userID string) ([]ModuleProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]ModuleProgress(nil), s.data[userID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].ModuleID < out[j].ModuleID })
	return out, nil
}

func (s *FileStore) Put(_ context.Context, userID string, p ModuleProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs := s.data[userID]
	replaced := false
	for i := range recs {
		if recs[i].ModuleID == p.ModuleID {
			recs[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		recs = append(recs, p)
	}
	s.data[userID] = recs
	return s.persist()
}

// persist writes the whole collection via a temp file and rename so a crash
// mid-write cannot leave a truncated store.
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
