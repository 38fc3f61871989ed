// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Success responses return the resource itself (a transfer model or a
// list of them). Error responses always use the Response envelope so API
// consumers know what failures look like.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aanand-mishra/academic-api/internal/service"
)

// Response is the standard envelope returned for error cases:
//
//	{ "status": "error", "error": "Student with id 1 not found" }
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes a JSON-encoded response with the given HTTP status code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into our standard Response shape.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// WriteError picks the status code for err and writes the envelope.
// A not-found error becomes 404; anything else is an opaque 500.
func WriteError(w http.ResponseWriter, err error) error {
	status := http.StatusInternalServerError
	if errors.Is(err, service.ErrNotFound) {
		status = http.StatusNotFound
	}
	return WriteJSON(w, status, GeneralError(err))
}
