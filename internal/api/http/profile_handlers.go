package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/pathlight/courseware/internal/auth"
	"github.com/pathlight/courseware/internal/identity"
)

// GET /profile — lazily created on first read so a freshly provisioned
// account always has one.
func GetProfileHandler(ids *identity.Service, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.SubjectFromContext(r.Context())
		u, err := ids.GetUser(r.Context(), userID)
		if err != nil {
			writeError(w, log, err)
			return
		}
		p, err := ids.EnsureProfile(r.Context(), userID, u.Name)
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// PATCH /profile — partial update; absent fields are left unchanged.
func UpdateProfileHandler(ids *identity.Service, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req identity.ProfileUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		userID := auth.SubjectFromContext(r.Context())
		p, err := ids.UpdateProfile(r.Context(), userID, req)
		if err != nil {
			writeError(w, log, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}
