package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/pventura/stockroom/internal/kv"
	"github.com/pventura/stockroom/internal/repo"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logrus.WithError(err).Error("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeRepoError maps the repository error taxonomy onto HTTP statuses:
// validation 400, not-found 404, store failures 503, anything else 500.
func writeRepoError(w http.ResponseWriter, err error, notFoundMessage string) {
	var validationErrs repo.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "validation failed", "fields": validationErrs})
	case errors.Is(err, repo.ErrProductNotFound), errors.Is(err, repo.ErrNotificationNotFound):
		writeError(w, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, kv.ErrStoreUnavailable):
		logrus.WithError(err).Error("store unavailable")
		writeError(w, http.StatusServiceUnavailable, "storage temporarily unavailable")
	default:
		logrus.WithError(err).Error("request failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
