package signature

import (
	"github.com/dmitrymomot/sigkit/pkg/validator"
)

// MaxNameLength bounds the display name.
const MaxNameLength = 100

// ValidateRecord checks a render request the way the form does before
// submission. It is advisory: Generate renders invalid input safely anyway.
// A nil or empty allowedDomains accepts any email domain.
func ValidateRecord(cfg RenderConfig, allowedDomains []string) error {
	data := cfg.Data
	styles := make([]string, 0, len(allStyles))
	for _, s := range allStyles {
		styles = append(styles, s.String())
	}

	rules := []validator.Rule{
		validator.Required("name", data.Name),
		validator.MaxLen("name", data.Name, MaxNameLength),
		validator.Optional(data.Email, validator.Email("email", data.Email)),
		validator.Optional(data.Email, validator.EmailDomain("email", data.Email, allowedDomains)),
		validator.Optional(data.Phone, validator.Phone("phone", data.Phone)),
		validator.Optional(data.Bookings, validator.SafeURL("bookings", data.Bookings)),
		validator.Optional(data.Website, validator.SafeURL("website", data.Website)),
		validator.Optional(cfg.AccentColor, validator.HexColor("accent_color", cfg.AccentColor)),
		validator.Optional(string(cfg.Style), validator.OneOf("style", string(cfg.Style), styles)),
	}
	return validator.Apply(rules...)
}
