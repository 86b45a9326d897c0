package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dominiofast/smartfood-landing-sub000/internal/domain"
)

// writeJSON renders v with the given status.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeProblem renders the simplified problem+json error shape.
func writeProblem(w http.ResponseWriter, code int, typ, detail string) {
	writeJSON(w, code, map[string]any{
		"type":   typ,
		"title":  http.StatusText(code),
		"status": code,
		"detail": detail,
	})
}

// writeError maps domain errors onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeProblem(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}
	var te *domain.InvalidTransitionError
	if errors.As(err, &te) {
		writeProblem(w, http.StatusConflict, "invalid_transition", err.Error())
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		writeProblem(w, http.StatusNotFound, "not_found", err.Error())
		return
	}
	var pe *domain.PersistenceError
	if errors.As(err, &pe) {
		writeProblem(w, http.StatusServiceUnavailable, "persistence_error", err.Error())
		return
	}
	writeProblem(w, http.StatusInternalServerError, "internal_error", err.Error())
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
