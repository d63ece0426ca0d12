package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sigkit/pkg/sanitizer"
)

func TestSanitizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "international format", input: "+1 (281) 330-8004", expected: "+12813308004"},
		{name: "national format", input: "(281) 330-8004", expected: "2813308004"},
		{name: "only leading plus is kept", input: "+44 +20 7946", expected: "+44207946"},
		{name: "inner plus is dropped", input: "44+20", expected: "4420"},
		{name: "letters only", input: "call me", expected: ""},
		{name: "plus only", input: "+", expected: ""},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.SanitizePhone(tt.input))
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "adds https", input: "zoho.com", expected: "https://zoho.com"},
		{name: "keeps https", input: "https://zoho.com/one", expected: "https://zoho.com/one"},
		{name: "keeps http", input: "http://zoho.com", expected: "http://zoho.com"},
		{name: "keeps uppercase scheme", input: "HTTPS://zoho.com", expected: "HTTPS://zoho.com"},
		{name: "trims whitespace", input: "  zoho.com ", expected: "https://zoho.com"},
		{name: "empty stays empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.NormalizeURL(tt.input))
		})
	}
}

func TestExtractEmailDomain(t *testing.T) {
	assert.Equal(t, "zohocorp.com", sanitizer.ExtractEmailDomain(" jasmine@ZohoCorp.com "))
	assert.Equal(t, "", sanitizer.ExtractEmailDomain("invalid-email"))
	assert.Equal(t, "", sanitizer.ExtractEmailDomain("a@b@c"))
	assert.Equal(t, "", sanitizer.ExtractEmailDomain("@zohocorp.com"))
}

func TestExtractLinkedInUsername(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "full url", input: "https://www.linkedin.com/in/jasmine-frank", expected: "jasmine-frank"},
		{name: "url with trailing slash and query", input: "https://linkedin.com/in/jasmine-frank/?trk=x", expected: "jasmine-frank"},
		{name: "url without protocol", input: "linkedin.com/in/jfrank", expected: "jfrank"},
		{name: "at handle", input: "@jfrank", expected: "jfrank"},
		{name: "bare handle", input: "jfrank", expected: "jfrank"},
		{name: "strips markup", input: `jf"><script>`, expected: "jfscript"},
		{name: "foreign host", input: "https://evil.com/in/jfrank", expected: ""},
		{name: "company page", input: "https://linkedin.com/company/zoho", expected: ""},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.ExtractLinkedInUsername(tt.input))
		})
	}
}

func TestExtractXHandle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "x url", input: "https://x.com/jasmine_f", expected: "jasmine_f"},
		{name: "twitter url", input: "https://twitter.com/jasmine_f", expected: "jasmine_f"},
		{name: "mobile twitter url", input: "mobile.twitter.com/jasmine_f/status/1", expected: "jasmine_f"},
		{name: "at handle", input: "@jasmine_f", expected: "jasmine_f"},
		{name: "bare handle", input: "jasmine_f", expected: "jasmine_f"},
		{name: "lookalike host", input: "https://max.com/jasmine_f", expected: ""},
		{name: "empty", input: "  ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.ExtractXHandle(tt.input))
		})
	}
}

func TestSanitizeHexColor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "six digits", input: "#E42527", expected: "#E42527"},
		{name: "three digits", input: "#fff", expected: "#fff"},
		{name: "trims", input: " #00aaff ", expected: "#00aaff"},
		{name: "missing hash", input: "E42527", expected: "#000000"},
		{name: "css injection", input: "red;background:url(x)", expected: "#000000"},
		{name: "attribute breakout", input: `#fff"><script>`, expected: "#000000"},
		{name: "empty", input: "", expected: "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.SanitizeHexColor(tt.input, "#000000"))
		})
	}

	assert.True(t, sanitizer.IsHexColor("#abc"))
	assert.False(t, sanitizer.IsHexColor("#abcd"))
}
