package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/pathlight/courseware/internal/auth"
	"github.com/pathlight/courseware/internal/notes"
	"github.com/pathlight/courseware/internal/progress"
)

// POST /modules/{moduleID}/reflections  { "answers": ["...", ""] }
//
// Saves the non-empty answers as reflection notes and marks the module's
// reflection portion complete. Saving again appends; earlier answers stay.
// A submission with no non-empty answer is rejected and marks nothing.
func SaveReflectionsHandler(nts *notes.Service, prog *progress.Service, log *zap.SugaredLogger) http.HandlerFunc {
	type out struct {
		Notes    []notes.Note            `json:"notes"`
		Progress progress.ModuleProgress `json:"progress"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := moduleIDParam(r)
		if !ok {
			http.Error(w, "bad module id", 400)
			return
		}
		var req struct {
			Answers []string `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		userID := auth.SubjectFromContext(r.Context())
		saved, err := nts.SaveReflections(r.Context(), userID, id, req.Answers)
		if err != nil {
			writeError(w, log, err)
			return
		}
		// Nothing was authored, so nothing gets marked complete.
		if len(saved) == 0 {
			http.Error(w, "at least one non-empty answer required", 400)
			return
		}
		rec, err := prog.MarkReflectionCompleted(r.Context(), userID, id)
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, out{Notes: saved, Progress: rec})
	}
}

// POST /modules/{moduleID}/quiz  { "answers": [1, 0, 2] }
//
// Scores the attempt against the answer key, records it as a quiz note and
// marks the module's quiz portion complete. Retakes append a new note.
func SubmitQuizHandler(nts *notes.Service, prog *progress.Service, log *zap.SugaredLogger) http.HandlerFunc {
	type out struct {
		Result   notes.Note              `json:"result"`
		Progress progress.ModuleProgress `json:"progress"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := moduleIDParam(r)
		if !ok {
			http.Error(w, "bad module id", 400)
			return
		}
		var req struct {
			Answers []int `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		userID := auth.SubjectFromContext(r.Context())
		note, err := nts.RecordQuizAttempt(r.Context(), userID, id, req.Answers)
		if err != nil {
			writeError(w, log, err)
			return
		}
		rec, err := prog.MarkQuizCompleted(r.Context(), userID, id, *note.Score, *note.TotalQuestions)
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, out{Result: note, Progress: rec})
	}
}

// GET /modules/{moduleID}/notes?type=reflection|quiz
func ListNotesHandler(nts *notes.Service, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := moduleIDParam(r)
		if !ok {
			http.Error(w, "bad module id", 400)
			return
		}
		userID := auth.SubjectFromContext(r.Context())

		var (
			out []notes.Note
			err error
		)
		switch notes.Type(r.URL.Query().Get("type")) {
		case notes.TypeReflection:
			out, err = nts.ReflectionNotes(r.Context(), userID, id)
		case notes.TypeQuiz:
			out, err = nts.QuizNotes(r.Context(), userID, id)
		case "":
			out, err = nts.ForModule(r.Context(), userID, id, "")
		default:
			http.Error(w, "bad type", 400)
			return
		}
		if err != nil {
			writeError(w, log, err)
			return
		}
		if out == nil {
			out = []notes.Note{}
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// PATCH /notes/{noteID}  { "content": "..." }
func UpdateNoteHandler(nts *notes.Service, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		userID := auth.SubjectFromContext(r.Context())
		if err := nts.UpdateContent(r.Context(), userID, chi.URLParam(r, "noteID"), req.Content); err != nil {
			writeError(w, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// DELETE /notes/{noteID}
func DeleteNoteHandler(nts *notes.Service, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.SubjectFromContext(r.Context())
		if err := nts.Delete(r.Context(), userID, chi.URLParam(r, "noteID")); err != nil {
			writeError(w, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
