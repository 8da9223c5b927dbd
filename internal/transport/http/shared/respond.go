// Package shared holds response helpers used by every HTTP handler.
package shared

import (
	"encoding/json"
	"net/http"

	dErrors "vistoforms/pkg/domain-errors"
)

type errorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	Fields           any    `json:"fields,omitempty"`
}

// WriteJSON serializes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps a coded error to its HTTP status. Internal error messages
// are withheld from clients; every other code returns its description.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	body := errorBody{Error: string(code)}
	if code != dErrors.CodeInternal {
		if de, ok := err.(*dErrors.Error); ok {
			body.ErrorDescription = de.Message
		} else {
			body.ErrorDescription = err.Error()
		}
	}
	WriteJSON(w, dErrors.HTTPStatus(code), body)
}

// WriteValidationError returns a 400 carrying the per-field issue list so
// clients can surface inline errors.
func WriteValidationError(w http.ResponseWriter, issues any) {
	WriteJSON(w, http.StatusBadRequest, errorBody{
		Error:            string(dErrors.CodeValidation),
		ErrorDescription: "one or more fields failed validation",
		Fields:           issues,
	})
}
