package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"streetshine/internal/httperr"
	"streetshine/internal/repository"
	"streetshine/internal/service"
)

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, ErrorResponse{Error: msg})
}

// mapError turns workflow errors into the HTTP taxonomy: NotFound for
// vanished records (a refresh trigger, not a fatal condition), BadRequest for
// rejected input, Unauthorized for bad credentials, and a generic 500 for
// everything else.
func mapError(err error) *httperr.HTTPError {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return httperr.NotFound("Booking not found. It may have been deleted; refresh the list.")
	case errors.Is(err, service.ErrInvalidStatus):
		return httperr.BadRequest("Status must be pending, confirmed or completed.")
	case errors.Is(err, service.ErrInvalidCredentials):
		return httperr.Unauthorized("Invalid credentials")
	default:
		return httperr.Internal("Something went wrong. Please try again.")
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	he := mapError(err)
	writeError(w, he.Code, he.Message)
}
