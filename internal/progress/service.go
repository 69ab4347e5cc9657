package progress

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"
)

// Service enforces the completion invariant over a Store:
// Completed == LessonCompleted && ReflectionCompleted && QuizCompleted,
// recomputed on every write, with CompletedAt stamped exactly once.
//
// Store failures degrade instead of propagating: reads fall back to an
// empty collection and writes keep the in-memory result, both logged. The
// presentation layer must never crash over cached progress.
type Service struct {
	store       Store
	catalogSize int
	log         *zap.SugaredLogger
	now         func() time.Time
}

func NewService(store Store, catalogSize int, log *zap.SugaredLogger) *Service {
	return &Service{store: store, catalogSize: catalogSize, log: log, now: time.Now}
}

// UpdateModuleProgress merges u into the record for moduleID, creating a
// default record if none exists, then re-derives Completed. Repeating the
// same update is a no-op beyond the first application.
func (s *Service) UpdateModuleProgress(ctx context.Context, userID string, moduleID int, u Update) (ModuleProgress, error) {
	cur, err := s.store.Get(ctx, userID, moduleID)
	if err != nil {
		s.log.Warnw("progress read failed, treating as empty", "user", userID, "module", moduleID, "err", err)
	}
	rec := ModuleProgress{ModuleID: moduleID}
	if cur != nil {
		rec = *cur
	}

	if u.LessonCompleted != nil {
		rec.LessonCompleted = *u.LessonCompleted
	}
	if u.ReflectionCompleted != nil {
		rec.ReflectionCompleted = *u.ReflectionCompleted
	}
	if u.QuizCompleted != nil {
		rec.QuizCompleted = *u.QuizCompleted
	}
	if u.QuizScore != nil {
		score := *u.QuizScore
		rec.QuizScore = &score
	}

	rec.Completed = rec.LessonCompleted && rec.ReflectionCompleted && rec.QuizCompleted
	if rec.Completed && rec.CompletedAt == nil {
		t := s.now()
		rec.CompletedAt = &t
	}

	if err := s.store.Put(ctx, userID, rec); err != nil {
		s.log.Warnw("progress write failed, keeping in-memory result", "user", userID, "module", moduleID, "err", err)
	}
	return rec, nil
}

// GetModuleProgress returns nil when the learner has no record for the
// module yet. That is not an error.
func (s *Service) GetModuleProgress(ctx context.Context, userID string, moduleID int) (*ModuleProgress, error) {
	p, err := s.store.Get(ctx, userID, moduleID)
	if err != nil {
		s.log.Warnw("progress read failed, treating as empty", "user", userID, "module", moduleID, "err", err)
		return nil, nil
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, userID string) []ModuleProgress {
	recs, err := s.store.List(ctx, userID)
	if err != nil {
		s.log.Warnw("progress list failed, treating as empty", "user", userID, "err", err)
		return nil
	}
	return recs
}

// CompletedCount is the number of fully completed modules; gating and the
// aggregate percentage both derive from it.
func (s *Service) CompletedCount(ctx context.Context, userID string) int {
	n := 0
	for _, p := range s.List(ctx, userID) {
		if p.Completed {
			n++
		}
	}
	return n
}

// TotalProgress is round(100 * completed / catalogSize). The catalog size
// is a startup constant > 0.
func (s *Service) TotalProgress(ctx context.Context, userID string) int {
	return int(math.Round(100 * float64(s.CompletedCount(ctx, userID)) / float64(s.catalogSize)))
}

func (s *Service) MarkLessonCompleted(ctx context.Context, userID string, moduleID int) (ModuleProgress, error) {
	t := true
	return s.UpdateModuleProgress(ctx, userID, moduleID, Update{LessonCompleted: &t})
}

func (s *Service) MarkReflectionCompleted(ctx context.Context, userID string, moduleID int) (ModuleProgress, error) {
	t := true
	return s.UpdateModuleProgress(ctx, userID, moduleID, Update{ReflectionCompleted: &t})
}

// MarkQuizCompleted records a finished quiz run. quizScore is stored as a
// rounded percentage and may be overwritten by later retakes.
func (s *Service) MarkQuizCompleted(ctx context.Context, userID string, moduleID, score, totalQuestions int) (ModuleProgress, error) {
	t := true
	pct := 0
	if totalQuestions > 0 {
		pct = int(math.Round(100 * float64(score) / float64(totalQuestions)))
	}
	return s.UpdateModuleProgress(ctx, userID, moduleID, Update{QuizCompleted: &t, QuizScore: &pct})
}

// Overview is the single response the frontend renders the course map from.
type Overview struct {
	CompletedCount int            `json:"completed_count"`
	TotalProgress  int            `json:"total_progress"`
	Modules        []ModuleState  `json:"modules"`
	Records        map[int]Record `json:"records,omitempty"`
}

type ModuleState struct {
	ModuleID int   `json:"module_id"`
	State    State `json:"state"`
}

type Record = ModuleProgress

func (s *Service) Overview(ctx context.Context, userID string) Overview {
	count := s.CompletedCount(ctx, userID)
	ov := Overview{
		CompletedCount: count,
		TotalProgress:  s.TotalProgress(ctx, userID),
		Records:        map[int]Record{},
	}
	for i := 1; i <= s.catalogSize; i++ {
		ov.Modules = append(ov.Modules, ModuleState{ModuleID: i, State: StateFor(i, count)})
	}
	for _, rec := range s.List(ctx, userID) {
		ov.Records[rec.ModuleID] = rec
	}
	return ov
}
