package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// MaxLength cuts s to at most n runes. n <= 0 yields "".
func MaxLength(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// RemoveControlChars drops control characters except tab, CR and LF.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t', r == '\n', r == '\r':
			return r
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

func RemoveNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// NormalizeText prepares a single-line form field for rendering: control
// characters are dropped, runs of whitespace including line breaks become
// one space, and the result is NFC-composed so decomposed accents render the
// same in every mail client.
func NormalizeText(s string) string {
	s = strings.Join(strings.Fields(RemoveControlChars(s)), " ")
	if s == "" {
		return ""
	}
	return norm.NFC.String(s)
}
