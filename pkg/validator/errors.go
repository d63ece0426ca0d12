package validator

import (
	"errors"
	"strings"
)

// FieldError is one failed rule.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrors collects every failed rule of one Apply call, in rule
// order.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(ve))
	for _, e := range ve {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field failed any rule.
func (ve ValidationErrors) Has(field string) bool {
	for _, e := range ve {
		if e.Field == field {
			return true
		}
	}
	return false
}

// Messages returns the messages for field.
func (ve ValidationErrors) Messages(field string) []string {
	var out []string
	for _, e := range ve {
		if e.Field == field {
			out = append(out, e.Message)
		}
	}
	return out
}

// Fields lists failing fields in first-failure order.
func (ve ValidationErrors) Fields() []string {
	var out []string
	seen := make(map[string]struct{}, len(ve))
	for _, e := range ve {
		if _, ok := seen[e.Field]; !ok {
			seen[e.Field] = struct{}{}
			out = append(out, e.Field)
		}
	}
	return out
}

// ExtractValidationErrors returns the ValidationErrors in err's chain, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// IsValidationError reports whether err carries ValidationErrors.
func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}
