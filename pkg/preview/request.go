package preview

import (
	"github.com/dmitrymomot/sigkit/pkg/signature"
)

// Request is the preview form. The same tags serve urlencoded forms, JSON
// bodies, query strings and Datastar signals.
type Request struct {
	Name          string   `json:"name" form:"name" query:"name"`
	Title         string   `json:"title" form:"title" query:"title"`
	Department    string   `json:"department" form:"department" query:"department"`
	Email         string   `json:"email" form:"email" query:"email"`
	Phone         string   `json:"phone" form:"phone" query:"phone"`
	LinkedIn      string   `json:"linkedin" form:"linkedin" query:"linkedin"`
	Twitter       string   `json:"twitter" form:"twitter" query:"twitter"`
	Bookings      string   `json:"bookings" form:"bookings" query:"bookings"`
	Website       string   `json:"website" form:"website" query:"website"`
	Style         string   `json:"style" form:"style" query:"style"`
	AccentColor   string   `json:"accent_color" form:"accent_color" query:"accent_color"`
	SocialEnabled bool     `json:"social_enabled" form:"social_enabled" query:"social_enabled"`
	Channels      []string `json:"social_channels" form:"social_channels" query:"social_channels"`
	DisplayType   string   `json:"social_display" form:"social_display" query:"social_display"`
	Size          int      `json:"size,omitempty" form:"size" query:"size"`
}

// Record returns the contact part of the request.
func (r Request) Record() signature.ContactRecord {
	return signature.ContactRecord{
		Name:       r.Name,
		Title:      r.Title,
		Department: r.Department,
		Email:      r.Email,
		Phone:      r.Phone,
		LinkedIn:   r.LinkedIn,
		Twitter:    r.Twitter,
		Bookings:   r.Bookings,
		Website:    r.Website,
	}
}

// RenderConfig converts the request into generator input.
func (r Request) RenderConfig(isPreview bool) signature.RenderConfig {
	channels := make([]signature.Channel, 0, len(r.Channels))
	for _, ch := range r.Channels {
		if ch != "" {
			channels = append(channels, signature.Channel(ch))
		}
	}
	display := signature.DisplayText
	if signature.DisplayType(r.DisplayType) == signature.DisplayIcons {
		display = signature.DisplayIcons
	}
	return signature.RenderConfig{
		Data:  r.Record(),
		Style: signature.Style(r.Style),
		SocialOptions: signature.SocialOptions{
			Enabled:     r.SocialEnabled,
			Channels:    channels,
			DisplayType: display,
		},
		AccentColor: r.AccentColor,
		IsPreview:   isPreview,
	}
}
