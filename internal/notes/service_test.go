package notes

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/pathlight/courseware/internal/apperr"
	"github.com/pathlight/courseware/internal/catalog"
)

const user = "learner-1"

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Module{
		{
			ID:                  1,
			Title:               "First Module",
			ReflectionQuestions: []string{"Q one?", "Q two?", "Q three?"},
			QuizQuestions: []catalog.QuizQuestion{
				{Question: "a", Options: []string{"x", "y"}, CorrectIndex: 1},
				{Question: "b", Options: []string{"x", "y"}, CorrectIndex: 0},
				{Question: "c", Options: []string{"x", "y", "z"}, CorrectIndex: 0},
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func newTestService(t *testing.T) *Service {
	return NewService(NewMemStore(), testCatalog(t), zap.NewNop().Sugar())
}

func TestSaveReflectionsSkipsEmptyAnswers(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.SaveReflections(ctx, user, 1, []string{"an answer", "  ", ""})
	if err != nil {
		t.Fatal(err)
	}
	if len(created) != 1 {
		t.Fatalf("created %d notes, want 1", len(created))
	}
	n := created[0]
	if n.Type != TypeReflection || n.ModuleTitle != "First Module" {
		t.Fatalf("note = %+v", n)
	}
	if n.QuestionIndex == nil || *n.QuestionIndex != 0 || n.Question != "Q one?" {
		t.Fatalf("question snapshot wrong: %+v", n)
	}
}

func TestReflectionResaveAppendsHistory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	svc.SaveReflections(ctx, user, 1, []string{"first version"})
	svc.SaveReflections(ctx, user, 1, []string{"second version"})

	got, _ := svc.ReflectionNotes(ctx, user, 1)
	if len(got) != 2 {
		t.Fatalf("want 2 historical notes for the same question, got %d", len(got))
	}
	if got[0].Content != "first version" || got[1].Content != "second version" {
		t.Fatalf("insertion order violated: %q, %q", got[0].Content, got[1].Content)
	}
}

func TestRecordQuizAttemptFidelity(t *testing.T) {
	svc := newTestService(t)
	// key is [1,0,0]; answers [1,0,2] score 2 of 3 => 67%
	n, err := svc.RecordQuizAttempt(context.Background(), user, 1, []int{1, 0, 2})
	if err != nil {
		t.Fatal(err)
	}
	if *n.Score != 2 || *n.TotalQuestions != 3 || *n.Percentage != 67 {
		t.Fatalf("score=%d total=%d pct=%d, want 2/3 67", *n.Score, *n.TotalQuestions, *n.Percentage)
	}
	if len(n.Answers) != 3 || n.Answers[2] != 2 {
		t.Fatalf("answer sequence not captured: %v", n.Answers)
	}
}

func TestRecordQuizAttemptValidatesLength(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.RecordQuizAttempt(context.Background(), user, 1, []int{1})
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("err = %v, want validation", err)
	}
}

func TestQuizRetakesAccumulate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	svc.RecordQuizAttempt(ctx, user, 1, []int{1, 0, 0})
	svc.RecordQuizAttempt(ctx, user, 1, []int{0, 0, 0})

	got, _ := svc.QuizNotes(ctx, user, 1)
	if len(got) != 2 {
		t.Fatalf("want cumulative quiz history, got %d notes", len(got))
	}
}

func TestUpdateAndDeleteSemantics(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, _ := svc.SaveReflections(ctx, user, 1, []string{"original"})
	n := created[0]

	later := n.UpdatedAt.Add(time.Hour)
	svc.now = func() time.Time { return later }

	if err := svc.UpdateContent(ctx, user, n.ID, "edited"); err != nil {
		t.Fatal(err)
	}
	got, _ := svc.ReflectionNotes(ctx, user, 1)
	if got[0].Content != "edited" {
		t.Fatalf("content = %q", got[0].Content)
	}
	if got[0].ID != n.ID || got[0].Type != n.Type || !got[0].CreatedAt.Equal(n.CreatedAt) {
		t.Fatal("update must not touch id, type or createdAt")
	}
	if !got[0].UpdatedAt.Equal(later) {
		t.Fatalf("updatedAt = %v, want %v", got[0].UpdatedAt, later)
	}

	// Absent ids are no-ops, not errors.
	if err := svc.UpdateContent(ctx, user, "missing", "x"); err != nil {
		t.Fatalf("update on missing id: %v", err)
	}
	if err := svc.Delete(ctx, user, "missing"); err != nil {
		t.Fatalf("delete on missing id: %v", err)
	}
	if got, _ = svc.ReflectionNotes(ctx, user, 1); len(got) != 1 {
		t.Fatalf("collection changed by no-op operations: %d notes", len(got))
	}

	if err := svc.Delete(ctx, user, n.ID); err != nil {
		t.Fatal(err)
	}
	if got, _ = svc.ReflectionNotes(ctx, user, 1); len(got) != 0 {
		t.Fatal("note not deleted")
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
