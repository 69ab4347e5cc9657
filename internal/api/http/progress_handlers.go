package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/pathlight/courseware/internal/auth"
	"github.com/pathlight/courseware/internal/progress"
)

func moduleIDParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "moduleID"))
	return id, err == nil
}

// GET /progress — the full course overview: counts, gating states and
// per-module records in one response.
func ProgressOverviewHandler(prog *progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.SubjectFromContext(r.Context())
		writeJSON(w, http.StatusOK, prog.Overview(r.Context(), userID))
	}
}

// GET /progress/{moduleID}
func GetModuleProgressHandler(prog *progress.Service, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := moduleIDParam(r)
		if !ok {
			http.Error(w, "bad module id", 400)
			return
		}
		userID := auth.SubjectFromContext(r.Context())
		rec, err := prog.GetModuleProgress(r.Context(), userID, id)
		if err != nil {
			writeError(w, log, err)
			return
		}
		if rec == nil {
			http.Error(w, "no progress recorded", 404)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// PATCH /progress/{moduleID} — partial update of the sub-completion flags.
// The derived completed flag and its timestamp are never accepted from the
// client.
func UpdateModuleProgressHandler(prog *progress.Service, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := moduleIDParam(r)
		if !ok {
			http.Error(w, "bad module id", 400)
			return
		}
		var req struct {
			LessonCompleted     *bool `json:"lesson_completed"`
			ReflectionCompleted *bool `json:"reflection_completed"`
			QuizCompleted       *bool `json:"quiz_completed"`
			QuizScore           *int  `json:"quiz_score"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		// quiz_score is a percentage; nothing outside 0..100 is storable.
		if req.QuizScore != nil && (*req.QuizScore < 0 || *req.QuizScore > 100) {
			http.Error(w, "quiz_score must be between 0 and 100", 400)
			return
		}
		userID := auth.SubjectFromContext(r.Context())
		rec, err := prog.UpdateModuleProgress(r.Context(), userID, id, progress.Update{
			LessonCompleted:     req.LessonCompleted,
			ReflectionCompleted: req.ReflectionCompleted,
			QuizCompleted:       req.QuizCompleted,
			QuizScore:           req.QuizScore,
		})
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// POST /progress/{moduleID}/lesson — mark the lesson portion done.
func MarkLessonHandler(prog *progress.Service, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := moduleIDParam(r)
		if !ok {
			http.Error(w, "bad module id", 400)
			return
		}
		userID := auth.SubjectFromContext(r.Context())
		rec, err := prog.MarkLessonCompleted(r.Context(), userID, id)
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}
