package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/pathlight/courseware/internal/auth"
	"github.com/pathlight/courseware/internal/catalog"
	"github.com/pathlight/courseware/internal/logging"
	"github.com/pathlight/courseware/internal/progress"
)

func newCatalogRouter(prog *progress.Service) chi.Router {
	cat := catalog.Default()
	r := chi.NewRouter()
	r.Get("/modules", ListModulesHandler(cat, prog))
	r.Get("/modules/{moduleID}", GetModuleHandler(cat, prog))
	return r
}

func getAs(t *testing.T, r chi.Router, userID, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req = req.WithContext(auth.WithSubject(req.Context(), userID))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetModuleGating(t *testing.T) {
	prog := progress.NewService(progress.NewMemStore(), catalog.Default().Size(), logging.NewNop())
	r := newCatalogRouter(prog)

	// Fresh learner: module 1 and 2 are reachable, module 3 is not.
	if w := getAs(t, r, "u1", "/modules/1"); w.Code != http.StatusOK {
		t.Fatalf("module 1: status = %d", w.Code)
	}
	if w := getAs(t, r, "u1", "/modules/2"); w.Code != http.StatusOK {
		t.Fatalf("module 2: status = %d", w.Code)
	}
	if w := getAs(t, r, "u1", "/modules/3"); w.Code != http.StatusForbidden {
		t.Fatalf("module 3: status = %d, want 403", w.Code)
	}

	// Completing module 1 unlocks module 3.
	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()
	if _, err := prog.MarkLessonCompleted(ctx, "u1", 1); err != nil {
		t.Fatal(err)
	}
	if _, err := prog.MarkReflectionCompleted(ctx, "u1", 1); err != nil {
		t.Fatal(err)
	}
	if _, err := prog.MarkQuizCompleted(ctx, "u1", 1, 3, 3); err != nil {
		t.Fatal(err)
	}
	if w := getAs(t, r, "u1", "/modules/3"); w.Code != http.StatusOK {
		t.Fatalf("module 3 after completing module 1: status = %d", w.Code)
	}

	if w := getAs(t, r, "u1", "/modules/99"); w.Code != http.StatusNotFound {
		t.Fatalf("unknown module: status = %d", w.Code)
	}
}

func TestListModulesStates(t *testing.T) {
	prog := progress.NewService(progress.NewMemStore(), catalog.Default().Size(), logging.NewNop())
	r := newCatalogRouter(prog)

	w := getAs(t, r, "u2", "/modules")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{`"state":"unlocked"`, `"state":"locked"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %s: %s", want, body)
		}
	}
}
