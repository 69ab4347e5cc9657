package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pathlight/courseware/internal/auth"
	"github.com/pathlight/courseware/internal/catalog"
	"github.com/pathlight/courseware/internal/progress"
)

// GET /modules — module summaries plus the caller's gating state for each.
func ListModulesHandler(cat *catalog.Catalog, prog *progress.Service) http.HandlerFunc {
	type item struct {
		ID          int            `json:"id"`
		Title       string         `json:"title"`
		Description string         `json:"description"`
		State       progress.State `json:"state"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.SubjectFromContext(r.Context())
		count := prog.CompletedCount(r.Context(), userID)

		out := make([]item, 0, cat.Size())
		for _, m := range cat.Modules() {
			out = append(out, item{
				ID:          m.ID,
				Title:       m.Title,
				Description: m.Description,
				State:       progress.StateFor(m.ID, count),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// GET /modules/{moduleID} — full module content. Locked modules return 403
// so the lesson body never reaches a learner who has not earned it.
func GetModuleHandler(cat *catalog.Catalog, prog *progress.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "moduleID"))
		if err != nil {
			http.Error(w, "bad module id", 400)
			return
		}
		m, ok := cat.ByID(id)
		if !ok {
			http.Error(w, "module not found", 404)
			return
		}
		userID := auth.SubjectFromContext(r.Context())
		count := prog.CompletedCount(r.Context(), userID)
		if progress.StateFor(id, count) == progress.StateLocked {
			http.Error(w, "module locked", http.StatusForbidden)
			return
		}
		writeJSON(w, http.StatusOK, m)
	}
}
