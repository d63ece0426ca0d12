package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sigkit/pkg/sanitizer"
)

func TestMaxLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		n     int
		want  string
	}{
		{"cuts title", "Director of Marketing", 8, "Director"},
		{"short value unchanged", "CTO", 5, "CTO"},
		{"exact length unchanged", "Frank", 5, "Frank"},
		{"counts runes", "Zoë Ångström", 5, "Zoë Å"},
		{"keeps emoji whole", "🚀🚀🚀", 2, "🚀🚀"},
		{"zero", "Frank", 0, ""},
		{"negative", "Frank", -3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.MaxLength(tt.input, tt.n))
		})
	}
}

func TestRemoveControlChars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", sanitizer.RemoveControlChars("a\x00b\x07c\x1b"))
	assert.Equal(t, "a\tb\nc\rd", sanitizer.RemoveControlChars("a\tb\nc\rd"))
	assert.Equal(t, "Zoë 🚀", sanitizer.RemoveControlChars("Zoë 🚀"))
	assert.Equal(t, "ab", sanitizer.RemoveNullBytes("a\x00b"))
}

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"composes decomposed accents", "José", "José"},
		{"keeps emoji", "Team 🚀 Lead", "Team 🚀 Lead"},
		{"keeps zwj sequences", "👩‍💻 Engineer", "👩‍💻 Engineer"},
		{"drops control characters", "Jas\x00mine", "Jasmine"},
		{"joins lines", "Director\nof\r\nMarketing", "Director of Marketing"},
		{"collapses spaces", "  Jasmine \t  Frank ", "Jasmine Frank"},
		{"blank", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.NormalizeText(tt.input))
		})
	}
}
