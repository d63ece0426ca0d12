package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

type config struct {
	maxLength int
	separator string
}

// Option configures Make.
type Option func(*config)

// MaxLength caps the slug at n runes, cutting at a separator boundary when
// one is available. Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) { c.maxLength = n }
}

// Separator replaces the default "-".
func Separator(s string) Option {
	return func(c *config) { c.separator = s }
}

// ligatures have no decomposition but a common ASCII spelling.
var ligatures = strings.NewReplacer(
	"ß", "ss", "æ", "ae", "Æ", "ae", "œ", "oe", "Œ", "oe",
	"ø", "o", "Ø", "o", "ł", "l", "Ł", "l", "đ", "d", "Đ", "d",
)

// Make lowercases s, strips diacritics and joins the remaining ASCII letter
// and digit runs with the separator. Scripts with no ASCII form are dropped,
// so the result may be empty.
func Make(s string, opts ...Option) string {
	cfg := config{separator: "-"}
	for _, opt := range opts {
		opt(&cfg)
	}

	s = norm.NFKD.String(ligatures.Replace(s))

	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range s {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pendingSep && b.Len() > 0 {
				b.WriteString(cfg.separator)
			}
			pendingSep = false
			b.WriteRune(unicode.ToLower(r))
		default:
			pendingSep = true
		}
	}

	out := b.String()
	if cfg.maxLength > 0 && len(out) > cfg.maxLength {
		out = out[:cfg.maxLength]
		if i := strings.LastIndex(out, cfg.separator); i > 0 && cfg.separator != "" {
			out = out[:i]
		}
		out = strings.TrimSuffix(out, cfg.separator)
	}
	return out
}
