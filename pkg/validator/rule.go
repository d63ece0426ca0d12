package validator

import "strings"

// Rule pairs a check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error FieldError
}

func rule(field, code, message string, check func() bool) Rule {
	return Rule{Check: check, Error: FieldError{Field: field, Code: code, Message: message}}
}

// Apply runs every rule and returns ValidationErrors for the failures, or
// nil.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, r := range rules {
		if !r.Check() {
			errs = append(errs, r.Error)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Optional skips r when value is blank. Use it for fields that may be left
// empty but must be well formed when set.
func Optional(value string, r Rule) Rule {
	check := r.Check
	r.Check = func() bool {
		return strings.TrimSpace(value) == "" || check()
	}
	return r
}
