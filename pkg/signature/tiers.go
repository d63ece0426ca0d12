package signature

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrymomot/sigkit/pkg/sanitizer"
)

const (
	linkedInProfileBase = "https://www.linkedin.com/in/"
	xProfileBase        = "https://x.com/"
	bookingsLabel       = "Schedule a Meeting"
)

// PrimaryContactTier renders phone then email, joined by an accent bullet.
// It returns "" when neither is set.
func PrimaryContactTier(data ContactRecord, accent string) string {
	return joinTier(primaryContactItems(data, accent), accent)
}

// CallToActionTier renders the "Schedule a Meeting" link. The bookings URL is
// the field most likely to be pasted from an untrusted source, so anything
// SanitizeURL rejects renders nothing at all.
func CallToActionTier(data ContactRecord, accent string) string {
	return joinTier(callToActionItems(data, accent), accent)
}

// PersonalSocialTier renders LinkedIn then X links rebuilt from bare handles.
func PersonalSocialTier(data ContactRecord, accent string) string {
	return joinTier(personalSocialItems(data, accent), accent)
}

func primaryContactItems(data ContactRecord, accent string) []string {
	var items []string
	if tel := sanitizer.SanitizePhone(data.Phone); tel != "" {
		items = append(items, link("tel:"+tel, sanitizer.EscapeHTML(strings.TrimSpace(data.Phone)), accent, "sig-phone"))
	}
	if email := sanitizer.SanitizeEmail(data.Email); email != "" {
		items = append(items, link("mailto:"+email, sanitizer.EscapeHTML(email), accent, "sig-email"))
	}
	return items
}

func callToActionItems(data ContactRecord, accent string) []string {
	href := sanitizer.SanitizeURL(data.Bookings)
	if href == "" {
		return nil
	}
	return []string{link(sanitizer.NormalizeURL(href), bookingsLabel, accent, "sig-cta")}
}

func personalSocialItems(data ContactRecord, accent string) []string {
	var items []string
	if user := sanitizer.ExtractLinkedInUsername(data.LinkedIn); user != "" {
		items = append(items, link(linkedInProfileBase+url.PathEscape(user), "LinkedIn", accent, "sig-linkedin"))
	}
	if handle := sanitizer.ExtractXHandle(data.Twitter); handle != "" {
		items = append(items, link(xProfileBase+url.PathEscape(handle), "X", accent, "sig-x"))
	}
	return items
}

// link renders an anchor. label must already be escaped; href is escaped here.
func link(href, label, accent, class string) string {
	return fmt.Sprintf(
		`<a href="%s" class="%s" target="_blank" rel="noopener" style="color:%s;text-decoration:none;">%s</a>`,
		sanitizer.EscapeHTML(href), class, accent, label)
}

func separator(accent string) string {
	return fmt.Sprintf(`<span class="sig-bullet" style="color:%s;padding:0 6px;">&bull;</span>`, accent)
}

func joinTier(items []string, accent string) string {
	return strings.Join(items, separator(accent))
}
