// Package progress tracks per-module completion state and derives the
// lock/unlock gating for the course sequence.
package progress

import "time"

// ModuleProgress is one learner's state for one module. Completed is
// derived from the three sub-flags and must never be set independently.
type ModuleProgress struct {
	ModuleID            int        `json:"module_id"`
	Completed           bool       `json:"completed"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
	LessonCompleted     bool       `json:"lesson_completed"`
	ReflectionCompleted bool       `json:"reflection_completed"`
	QuizCompleted       bool       `json:"quiz_completed"`
	QuizScore           *int       `json:"quiz_score,omitempty"` // percentage 0..100
}

// Update is a partial update; nil fields are left unchanged. The derived
// Completed flag and CompletedAt stamp are recomputed by the service, never
// supplied by callers.
type Update struct {
	LessonCompleted     *bool
	ReflectionCompleted *bool
	QuizCompleted       *bool
	QuizScore           *int
}
