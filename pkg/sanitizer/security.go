package sanitizer

import (
	"html"
	"strings"
	"unicode"
)

// MaxURLLength is the longest URL SanitizeURL accepts. Longer values are
// treated as hostile and dropped.
const MaxURLLength = 2048

// dangerousSchemes are rejected wherever a value may end up in an href.
var dangerousSchemes = []string{"javascript", "data", "vbscript", "file", "about"}

// EscapeHTML escapes HTML special characters (<, >, &, ' and ") so the result
// is safe as text content and inside double-quoted attributes.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// SanitizeEmail strips whitespace, control characters and the characters
// that could break out of a mailto: href or add query headers to it.
func SanitizeEmail(email string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.IsControl(r) || strings.ContainsRune(`<>"'?&`, r) {
			return -1
		}
		return r
	}, email)
}

// SanitizeURL returns the trimmed url, or an empty string when the value uses
// one of the javascript:, data:, vbscript:, file: or about: schemes.
//
// The check is case-insensitive and runs against a compacted copy of the
// value (entities decoded, whitespace and control characters removed) because
// browsers ignore those when resolving a scheme. A scheme name followed by a
// space or nothing at all ("javascript alert(1)") is rejected as well.
// The function does not add a protocol; see NormalizeURL.
func SanitizeURL(url string) string {
	trimmed := strings.TrimSpace(url)
	if trimmed == "" || len(trimmed) > MaxURLLength {
		return ""
	}

	lower := strings.ToLower(html.UnescapeString(trimmed))
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return -1
		}
		return r
	}, lower)

	for _, scheme := range dangerousSchemes {
		if strings.HasPrefix(compact, scheme+":") {
			return ""
		}
		if rest, ok := strings.CutPrefix(lower, scheme); ok {
			if rest == "" || rest[0] == ' ' || rest[0] == '\t' || rest[0] == ':' {
				return ""
			}
		}
	}

	return trimmed
}
