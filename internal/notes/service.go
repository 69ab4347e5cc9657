package notes

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pathlight/courseware/internal/apperr"
	"github.com/pathlight/courseware/internal/catalog"
)

type Service struct {
	store   Store
	catalog *catalog.Catalog
	log     *zap.SugaredLogger
	now     func() time.Time
}

func NewService(store Store, cat *catalog.Catalog, log *zap.SugaredLogger) *Service {
	return &Service{store: store, catalog: cat, log: log, now: time.Now}
}

// SaveReflections appends one reflection note per non-empty answer.
// answers is aligned to the module's reflection-question list. Earlier
// saves for the same question are kept untouched: each save is a new
// historical entry, not an upsert.
func (s *Service) SaveReflections(ctx context.Context, userID string, moduleID int, answers []string) ([]Note, error) {
	mod, ok := s.catalog.ByID(moduleID)
	if !ok {
		return nil, apperr.Validation("unknown module %d", moduleID)
	}
	if len(answers) > len(mod.ReflectionQuestions) {
		return nil, apperr.Validation("module %d has %d reflection questions, got %d answers",
			moduleID, len(mod.ReflectionQuestions), len(answers))
	}

	var created []Note
	for i, answer := range answers {
		if strings.TrimSpace(answer) == "" {
			continue
		}
		idx := i
		now := s.now()
		n := Note{
			ID:            NewID(),
			Type:          TypeReflection,
			ModuleID:      moduleID,
			ModuleTitle:   mod.Title,
			Content:       answer,
			CreatedAt:     now,
			UpdatedAt:     now,
			QuestionIndex: &idx,
			Question:      mod.ReflectionQuestions[i],
		}
		if err := s.store.Append(ctx, userID, n); err != nil {
			s.log.Warnw("note append failed", "user", userID, "module", moduleID, "err", err)
			continue
		}
		created = append(created, n)
	}
	return created, nil
}

// RecordQuizAttempt grades answers against the module's quiz and appends
// exactly one quiz note for the attempt. Retakes append further notes;
// quiz history is cumulative.
func (s *Service) RecordQuizAttempt(ctx context.Context, userID string, moduleID int, answers []int) (Note, error) {
	mod, ok := s.catalog.ByID(moduleID)
	if !ok {
		return Note{}, apperr.Validation("unknown module %d", moduleID)
	}
	total := len(mod.QuizQuestions)
	if len(answers) != total {
		return Note{}, apperr.Validation("module %d quiz has %d questions, got %d answers", moduleID, total, len(answers))
	}

	score := 0
	for i, q := range mod.QuizQuestions {
		if answers[i] == q.CorrectIndex {
			score++
		}
	}
	pct := int(math.Round(100 * float64(score) / float64(total)))

	now := s.now()
	n := Note{
		ID:             NewID(),
		Type:           TypeQuiz,
		ModuleID:       moduleID,
		ModuleTitle:    mod.Title,
		Content:        fmt.Sprintf("Quiz result: %d/%d (%d%%)", score, total, pct),
		CreatedAt:      now,
		UpdatedAt:      now,
		Score:          &score,
		TotalQuestions: &total,
		Percentage:     &pct,
		Answers:        append([]int(nil), answers...),
	}
	if err := s.store.Append(ctx, userID, n); err != nil {
		s.log.Warnw("quiz note append failed", "user", userID, "module", moduleID, "err", err)
	}
	return n, nil
}

// UpdateContent replaces a note's content and bumps UpdatedAt. Absent ids
// are a silent no-op; id, type and CreatedAt never change.
func (s *Service) UpdateContent(ctx context.Context, userID, id, content string) error {
	return s.store.Update(ctx, userID, id, func(n *Note) {
		n.Content = content
		n.UpdatedAt = s.now()
	})
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.store.Delete(ctx, userID, id)
}

// ForModule returns the module's notes in insertion order, optionally
// filtered by type ("" means all).
func (s *Service) ForModule(ctx context.Context, userID string, moduleID int, typ Type) ([]Note, error) {
	all, err := s.store.List(ctx, userID)
	if err != nil {
		s.log.Warnw("note list failed, treating as empty", "user", userID, "err", err)
		return nil, nil
	}
	var out []Note
	for _, n := range all {
		if n.ModuleID != moduleID {
			continue
		}
		if typ != "" && n.Type != typ {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (s *Service) ReflectionNotes(ctx context.Context, userID string, moduleID int) ([]Note, error) {
	return s.ForModule(ctx, userID, moduleID, TypeReflection)
}

func (s *Service) QuizNotes(ctx context.Context, userID string, moduleID int) ([]Note, error) {
	return s.ForModule(ctx, userID, moduleID, TypeQuiz)
}
