// Package validator builds declarative field checks for the signature form.
//
// A Rule pairs a Check with the FieldError reported when it fails. Apply runs
// a list of rules and collects every failure into ValidationErrors, which is
// an error:
//
//	err := validator.Apply(
//		validator.Required("name", rec.Name),
//		validator.Optional(rec.Email, validator.Email("email", rec.Email)),
//		validator.HexColor("accent_color", accent),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		for _, f := range verrs.Fields() { ... }
//	}
//
// Rules are plain values with no shared state and are safe to build from any
// goroutine.
package validator
