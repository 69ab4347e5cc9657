// Package notes is the append-only store of learner-authored artifacts:
// reflection answers and quiz results. Nothing is upserted; re-saving an
// answer or retaking a quiz appends a new historical entry.
package notes

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeReflection Type = "reflection"
	TypeQuiz       Type = "quiz"
)

// Note is a tagged union: the reflection fields are set when Type is
// reflection, the quiz fields when Type is quiz. ModuleTitle and Question
// are denormalized snapshots of the catalog at write time.
type Note struct {
	ID          string    `json:"id"`
	Type        Type      `json:"type"`
	ModuleID    int       `json:"module_id"`
	ModuleTitle string    `json:"module_title"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// reflection
	QuestionIndex *int   `json:"question_index,omitempty"`
	Question      string `json:"question,omitempty"`

	// quiz
	Score          *int  `json:"score,omitempty"`
	TotalQuestions *int  `json:"total_questions,omitempty"`
	Percentage     *int  `json:"percentage,omitempty"`
	Answers        []int `json:"answers,omitempty"`
}

// NewID returns a time-ordered unique id. UUIDv7 combines a millisecond
// timestamp with random bits, so notes created in the same millisecond
// still get distinct ids.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
