package vcard

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/sigkit/pkg/sanitizer"
	"github.com/dmitrymomot/sigkit/pkg/signature"
)

// ErrNameRequired is returned when the record has no name.
var ErrNameRequired = errors.New("vcard: name is required")

// maxLineOctets is the folding limit for content lines.
const maxLineOctets = 75

var valueEscaper = strings.NewReplacer(
	`\`, `\\`,
	`,`, `\,`,
	`;`, `\;`,
	"\r\n", `\n`,
	"\n", `\n`,
)

type options struct {
	organization string
	socials      bool
}

// Option customises Build.
type Option func(*options)

// WithOrganization sets the ORG company component. The record's department
// becomes the organizational unit.
func WithOrganization(name string) Option {
	return func(o *options) { o.organization = name }
}

// WithoutSocialProfiles omits the LinkedIn and X profile lines.
func WithoutSocialProfiles() Option {
	return func(o *options) { o.socials = false }
}

// Build returns a vCard 3.0 for the record. Lines end with CRLF and are
// folded at 75 octets.
func Build(r signature.ContactRecord, opts ...Option) (string, error) {
	o := options{organization: signature.DefaultBrandName, socials: true}
	for _, opt := range opts {
		opt(&o)
	}

	r = r.Normalize()
	if r.Name == "" {
		return "", ErrNameRequired
	}

	var b strings.Builder
	write := func(name, value string) {
		b.WriteString(fold(name + ":" + value))
		b.WriteString("\r\n")
	}

	write("BEGIN", "VCARD")
	write("VERSION", "3.0")
	write("N", structuredName(r.Name))
	write("FN", escape(r.Name))
	if r.Title != "" {
		write("TITLE", escape(r.Title))
	}
	if o.organization != "" || r.Department != "" {
		write("ORG", escape(o.organization)+";"+escape(r.Department))
	}
	if email := sanitizer.SanitizeEmail(r.Email); email != "" {
		write("EMAIL;TYPE=INTERNET,WORK", escape(email))
	}
	if tel := sanitizer.SanitizePhone(r.Phone); tel != "" {
		write("TEL;TYPE=WORK,VOICE", tel)
	}
	if u := sanitizer.SanitizeURL(r.Website); u != "" {
		write("URL", escape(sanitizer.NormalizeURL(u)))
	}
	if o.socials {
		if r.LinkedIn != "" {
			write("X-SOCIALPROFILE;TYPE=linkedin", escape("https://www.linkedin.com/in/"+r.LinkedIn))
		}
		if r.Twitter != "" {
			write("X-SOCIALPROFILE;TYPE=twitter", escape("https://x.com/"+r.Twitter))
		}
	}
	write("END", "VCARD")
	return b.String(), nil
}

// structuredName splits a display name into family;given for the N property.
func structuredName(full string) string {
	fields := strings.Fields(full)
	switch len(fields) {
	case 0:
		return ";;;;"
	case 1:
		return ";" + escape(fields[0]) + ";;;"
	}
	last := fields[len(fields)-1]
	given := strings.Join(fields[:len(fields)-1], " ")
	return escape(last) + ";" + escape(given) + ";;;"
}

func escape(s string) string {
	return valueEscaper.Replace(s)
}

// fold splits a content line into 75-octet chunks, continuing each with a
// single space. Multi-byte runes are never split.
func fold(line string) string {
	if len(line) <= maxLineOctets {
		return line
	}
	var b strings.Builder
	limit := maxLineOctets
	n := 0
	for _, r := range line {
		size := len(string(r))
		if n+size > limit {
			b.WriteString("\r\n ")
			n = 0
			limit = maxLineOctets - 1
		}
		b.WriteRune(r)
		n += size
	}
	return b.String()
}
