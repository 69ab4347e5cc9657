// Package http wires the application services to a chi router.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/pathlight/courseware/internal/apperr"
	"github.com/pathlight/courseware/internal/billing"
	"github.com/pathlight/courseware/internal/identity"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the service error taxonomy onto HTTP statuses. Security
// failures get a deliberately generic body so callers cannot probe which
// check failed.
func writeError(w http.ResponseWriter, log *zap.SugaredLogger, err error) {
	switch {
	case errors.Is(err, identity.ErrInvalidCredentials):
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	case apperr.IsKind(err, apperr.KindValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case apperr.IsKind(err, apperr.KindSecurity):
		http.Error(w, "request rejected", http.StatusBadRequest)
	case errors.Is(err, identity.ErrNotFound), errors.Is(err, billing.ErrNotFound),
		apperr.IsKind(err, apperr.KindNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case apperr.IsKind(err, apperr.KindConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case apperr.IsKind(err, apperr.KindConfiguration):
		log.Errorw("request failed on configuration", "err", err)
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	case apperr.IsKind(err, apperr.KindTransient):
		log.Warnw("request failed on upstream", "err", err)
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	default:
		log.Errorw("request failed", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
