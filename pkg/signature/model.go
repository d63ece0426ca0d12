package signature

import (
	"slices"

	"github.com/dmitrymomot/sigkit/pkg/sanitizer"
)

// maxFieldLength caps every free-text field after normalization.
const maxFieldLength = 256

// ContactRecord is the subject of a signature. Every field is free text and
// optional except Name; the builders decide whether a value is a URL, a phone
// number or plain text.
type ContactRecord struct {
	Name       string `json:"name" yaml:"name"`
	Title      string `json:"title" yaml:"title"`
	Department string `json:"department" yaml:"department"`
	Email      string `json:"email" yaml:"email"`
	Phone      string `json:"phone" yaml:"phone"`
	LinkedIn   string `json:"linkedin" yaml:"linkedin"`
	Twitter    string `json:"twitter" yaml:"twitter"`
	Bookings   string `json:"bookings" yaml:"bookings"`
	Website    string `json:"website" yaml:"website"`
}

// Normalize returns a copy with every field cleaned for rendering: single
// line, NFC, bounded length, and social handles reduced to bare usernames.
func (r ContactRecord) Normalize() ContactRecord {
	clean := func(s string) string {
		return sanitizer.MaxLength(sanitizer.NormalizeText(s), maxFieldLength)
	}
	return ContactRecord{
		Name:       clean(r.Name),
		Title:      clean(r.Title),
		Department: clean(r.Department),
		Email:      clean(r.Email),
		Phone:      clean(r.Phone),
		LinkedIn:   sanitizer.ExtractLinkedInUsername(clean(r.LinkedIn)),
		Twitter:    sanitizer.ExtractXHandle(clean(r.Twitter)),
		Bookings:   clean(r.Bookings),
		Website:    clean(r.Website),
	}
}

// Style names one of the six fixed layouts.
type Style string

const (
	StyleClassic      Style = "classic"
	StyleProfessional Style = "professional"
	StyleCompact      Style = "compact"
	StyleModern       Style = "modern"
	StyleCreative     Style = "creative"
	StyleMinimal      Style = "minimal"
)

var allStyles = []Style{
	StyleClassic,
	StyleProfessional,
	StyleCompact,
	StyleModern,
	StyleCreative,
	StyleMinimal,
}

// Styles returns the supported styles in display order.
func Styles() []Style {
	return slices.Clone(allStyles)
}

// Valid reports whether s is one of the six supported styles.
func (s Style) Valid() bool {
	return slices.Contains(allStyles, s)
}

func (s Style) String() string { return string(s) }

// Channel identifies a corporate social network.
type Channel string

const (
	ChannelLinkedIn  Channel = "linkedin"
	ChannelTwitter   Channel = "twitter"
	ChannelFacebook  Channel = "facebook"
	ChannelInstagram Channel = "instagram"
	ChannelYouTube   Channel = "youtube"
)

// DisplayType selects labeled text links or glyph-only links.
type DisplayType string

const (
	DisplayText  DisplayType = "text"
	DisplayIcons DisplayType = "icons"
)

// SocialOptions controls the corporate "Follow us" block. Channels keep their
// order; unknown identifiers are ignored.
type SocialOptions struct {
	Enabled     bool        `json:"enabled" yaml:"enabled"`
	Channels    []Channel   `json:"channels" yaml:"channels"`
	DisplayType DisplayType `json:"display_type" yaml:"display_type"`
}

// RenderConfig is the complete input of a generation call.
type RenderConfig struct {
	Data          ContactRecord `json:"data" yaml:"data"`
	Style         Style         `json:"style" yaml:"style"`
	SocialOptions SocialOptions `json:"social_options" yaml:"social_options"`
	AccentColor   string        `json:"accent_color" yaml:"accent_color"`
	IsPreview     bool          `json:"is_preview" yaml:"is_preview"`
}
