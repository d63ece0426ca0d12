package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/sigkit/pkg/sanitizer"
)

var (
	e164Regex       = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)
	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")
)

// Required fails for blank values.
func Required(field, value string) Rule {
	return rule(field, "required", "is required", func() bool {
		return strings.TrimSpace(value) != ""
	})
}

// MaxLen counts runes, so accented names count one per character.
func MaxLen(field, value string, max int) Rule {
	return rule(field, "max_length", fmt.Sprintf("must be at most %d characters", max), func() bool {
		return utf8.RuneCountInString(value) <= max
	})
}

// OneOf requires an exact match with one of options.
func OneOf(field, value string, options []string) Rule {
	return rule(field, "one_of", "must be one of: "+strings.Join(options, ", "), func() bool {
		return slices.Contains(options, value)
	})
}

// Email accepts a bare address whose domain has at least one dot and no
// empty labels. Display-name forms like "Jane <jane@x.com>" are rejected.
func Email(field, value string) Rule {
	return rule(field, "email", "must be a valid email address", func() bool {
		value = strings.TrimSpace(value)
		addr, err := mail.ParseAddress(value)
		if err != nil || addr.Address != value {
			return false
		}
		local, domain, ok := strings.Cut(addr.Address, "@")
		if !ok || local == "" || !strings.Contains(domain, ".") {
			return false
		}
		return !slices.Contains(strings.Split(domain, "."), "")
	})
}

// EmailDomain requires the address's domain to be one of domains, ignoring
// case. An empty list accepts any domain.
func EmailDomain(field, value string, domains []string) Rule {
	return rule(field, "email_domain", "must use one of the domains: "+strings.Join(domains, ", "), func() bool {
		if len(domains) == 0 {
			return true
		}
		domain := sanitizer.ExtractEmailDomain(value)
		return domain != "" && slices.ContainsFunc(domains, func(d string) bool {
			return strings.EqualFold(strings.TrimSpace(d), domain)
		})
	})
}

// Phone ignores spaces, dashes, dots and parentheses, then requires an
// E.164 shaped number of 7 to 15 digits.
func Phone(field, value string) Rule {
	return rule(field, "phone", "must be a phone number in international format", func() bool {
		return e164Regex.MatchString(phoneSeparators.Replace(strings.TrimSpace(value)))
	})
}

// SafeURL accepts what SanitizeURL keeps and, once https:// is assumed for
// bare hosts, parses as an http(s) URL with a host.
func SafeURL(field, value string) Rule {
	return rule(field, "safe_url", "must be a valid http or https link", func() bool {
		safe := sanitizer.SanitizeURL(value)
		if safe == "" {
			return false
		}
		normalized := sanitizer.NormalizeURL(safe)
		// NormalizeURL prefixes anything that is not http(s), so a change
		// here means a foreign scheme such as ftp://.
		if strings.Contains(safe, "://") && normalized != safe {
			return false
		}
		u, err := url.Parse(normalized)
		if err != nil {
			return false
		}
		scheme := strings.ToLower(u.Scheme)
		return (scheme == "http" || scheme == "https") && u.Hostname() != ""
	})
}

// HexColor accepts #RGB and #RRGGBB.
func HexColor(field, value string) Rule {
	return rule(field, "hex_color", "must be a hex colour like #E42527", func() bool {
		return sanitizer.IsHexColor(value)
	})
}
