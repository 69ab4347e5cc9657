package catalog

import "testing"

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if c.Size() != 13 {
		t.Fatalf("size = %d, want 13", c.Size())
	}
	for i, m := range c.Modules() {
		if m.ID != i+1 {
			t.Errorf("module at position %d has id %d, want %d", i, m.ID, i+1)
		}
		if m.Title == "" || m.Lesson == "" {
			t.Errorf("module %d missing title or lesson", m.ID)
		}
		if len(m.ReflectionQuestions) == 0 {
			t.Errorf("module %d has no reflection questions", m.ID)
		}
		if len(m.QuizQuestions) == 0 {
			t.Errorf("module %d has no quiz questions", m.ID)
		}
		for qi, q := range m.QuizQuestions {
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
				t.Errorf("module %d question %d: correct index %d out of range (%d options)",
					m.ID, qi, q.CorrectIndex, len(q.Options))
			}
		}
	}
}

func TestByID(t *testing.T) {
	c := Default()
	m, ok := c.ByID(7)
	if !ok || m.ID != 7 {
		t.Fatalf("ByID(7) = %+v, %v", m, ok)
	}
	if _, ok := c.ByID(99); ok {
		t.Fatal("ByID(99) should miss")
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New([]Module{{ID: 1}, {ID: 1}})
	if err == nil {
		t.Fatal("expected error for duplicate ids")
	}
}
