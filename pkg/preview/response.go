package preview

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/sigkit/pkg/environment"
	"github.com/dmitrymomot/sigkit/pkg/validator"
)

// JSONResponse is the envelope of every JSON endpoint.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body JSONResponse) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// writeError replaces server error messages with the status text in
// production; the log carries the original.
func writeError(w http.ResponseWriter, r *http.Request, status int, code string, err error) error {
	msg := err.Error()
	if status >= http.StatusInternalServerError && environment.IsProduction(r.Context()) {
		msg = http.StatusText(status)
	}
	return writeJSON(w, status, JSONResponse{Error: &ErrorDetail{Code: code, Message: msg}})
}

// validationDetail groups messages by field.
func validationDetail(errs validator.ValidationErrors) *ErrorDetail {
	detail := &ErrorDetail{
		Code:    "validation_error",
		Message: errs.Error(),
		Details: make(map[string][]string, len(errs)),
	}
	for _, e := range errs {
		detail.Details[e.Field] = append(detail.Details[e.Field], e.Message)
	}
	return detail
}
