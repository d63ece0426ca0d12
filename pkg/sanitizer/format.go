package sanitizer

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	// LinkedIn vanity names allow hyphens, X handles underscores.
	handleCharsRegex = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	hexColorRegex    = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// SanitizePhone keeps digits and a single leading '+'. The result is meant for
// tel: URIs only; display text should use the original value.
func SanitizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(phone, "+") {
		return "+" + digits
	}
	return digits
}

// NormalizeURL prepends https:// when the value has no http(s):// prefix.
// Empty input stays empty.
func NormalizeURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}

	lower := strings.ToLower(rawURL)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return rawURL
	}
	return "https://" + rawURL
}

// ExtractEmailDomain returns the lowercased part after '@', or "" for malformed input.
func ExtractEmailDomain(email string) string {
	local, domain, ok := strings.Cut(strings.TrimSpace(email), "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return ""
	}
	return strings.ToLower(domain)
}

// ExtractLinkedInUsername accepts a profile URL, an @handle or a bare vanity
// name and returns the bare vanity name.
func ExtractLinkedInUsername(raw string) string {
	return extractHandle(raw, []string{"linkedin.com"}, "in")
}

// ExtractXHandle accepts an x.com or twitter.com URL, an @handle or a bare
// handle and returns the bare handle.
func ExtractXHandle(raw string) string {
	return extractHandle(raw, []string{"x.com", "twitter.com"}, "")
}

func extractHandle(raw string, hosts []string, section string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "@") || !strings.ContainsAny(raw, "/.") {
		return cleanHandle(raw)
	}

	u, err := url.Parse(NormalizeURL(raw))
	if err != nil {
		return ""
	}
	if !matchesHost(u.Hostname(), hosts) {
		return ""
	}

	segments := strings.FieldsFunc(u.Path, func(r rune) bool { return r == '/' })
	if section == "" {
		if len(segments) == 0 {
			return ""
		}
		return cleanHandle(segments[0])
	}
	for i, seg := range segments {
		if strings.EqualFold(seg, section) && i+1 < len(segments) {
			return cleanHandle(segments[i+1])
		}
	}
	return ""
}

func matchesHost(host string, hosts []string) bool {
	host = strings.ToLower(host)
	for _, h := range hosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}

func cleanHandle(s string) string {
	s = strings.TrimPrefix(strings.TrimSpace(s), "@")
	return handleCharsRegex.ReplaceAllString(s, "")
}

// SanitizeHexColor returns color when it is a #RGB or #RRGGBB value and
// fallback otherwise. The result is safe inside a style attribute.
func SanitizeHexColor(color, fallback string) string {
	color = strings.TrimSpace(color)
	if hexColorRegex.MatchString(color) {
		return color
	}
	return fallback
}

// IsHexColor reports whether color is a #RGB or #RRGGBB value.
func IsHexColor(color string) bool {
	return hexColorRegex.MatchString(strings.TrimSpace(color))
}
