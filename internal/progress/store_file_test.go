package progress

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewFileStore(dir, zap.NewNop().Sugar())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Put(ctx, "u1", ModuleProgress{ModuleID: 2, LessonCompleted: true}); err != nil {
		t.Fatal(err)
	}

	// A fresh store over the same directory must see the write.
	s2, err := NewFileStore(dir, zap.NewNop().Sugar())
	if err != nil {
		t.Fatal(err)
	}
	p, err := s2.Get(ctx, "u1", 2)
	if err != nil || p == nil || !p.LessonCompleted {
		t.Fatalf("reloaded record = %+v, %v", p, err)
	}
}

func TestFileStoreCorruptResetsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "progress.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := NewFileStore(dir, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("corrupt data must not fail construction: %v", err)
	}
	recs, err := s.List(context.Background(), "u1")
	if err != nil || len(recs) != 0 {
		t.Fatalf("corrupt store should read as empty, got %v, %v", recs, err)
	}
}
