package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/pathlight/courseware/internal/auth"
	"github.com/pathlight/courseware/internal/identity"
)

// POST /auth/login  { "email": "...", "password": "..." }
func LoginHandler(ids *identity.Service, tokens *auth.Service, log *zap.SugaredLogger) http.HandlerFunc {
	type out struct {
		AccessToken string        `json:"access_token"`
		User        identity.User `json:"user"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if req.Email == "" || req.Password == "" {
			http.Error(w, "email and password required", 400)
			return
		}
		u, err := ids.SignIn(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, log, err)
			return
		}
		tok, err := tokens.IssueJWT(u.ID, u.Role)
		if err != nil {
			http.Error(w, "issue token", 500)
			return
		}
		writeJSON(w, http.StatusOK, out{AccessToken: tok, User: u})
	}
}

// POST /auth/logout. Tokens are stateless, so there is nothing to revoke
// server-side; the endpoint exists so clients always get a clean 204 and
// can drop their local session unconditionally.
func LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}
}

// GET /auth/me
func MeHandler(ids *identity.Service, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.SubjectFromContext(r.Context())
		if userID == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		u, err := ids.GetUser(r.Context(), userID)
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, u)
	}
}
