// Package response provides helpers for writing consistent JSON HTTP
// responses.
//
// Success responses may be any JSON shape (a passenger, a list, a
// breakdown...). Error responses always look like:
//
//	{ "status": "error", "error": "Passenger with ID 7 was not found." }
package response

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aanand-mishra/titanic-api/internal/validation"
)

// Response is the standard envelope returned for error cases.
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`

	// Failures lists each rejected field on validation errors.
	Failures []validation.Failure `json:"failures,omitempty"`
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes data as JSON with the given status code.
// Header() must be set before WriteHeader(); headers are locked after.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any error into the standard Response shape.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ValidationError reports every failed field. The messages are also
// joined into Error so clients reading only that field still get them.
func ValidationError(failures []validation.Failure) Response {
	msgs := make([]string, 0, len(failures))
	for _, f := range failures {
		msgs = append(msgs, f.Message)
	}

	return Response{
		Status:   StatusError,
		Error:    strings.Join(msgs, " "),
		Failures: failures,
	}
}
