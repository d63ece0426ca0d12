package signature

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrymomot/sigkit/pkg/sanitizer"
)

type channelMeta struct {
	url   string
	label string
	icon  string
}

// corporateChannels is the fixed "Follow us" lookup table.
var corporateChannels = map[Channel]channelMeta{
	ChannelTwitter:   {url: "https://x.com/Zoho", label: "X", icon: "&#120143;"},
	ChannelLinkedIn:  {url: "https://www.linkedin.com/company/zoho", label: "LinkedIn", icon: "in"},
	ChannelYouTube:   {url: "https://www.youtube.com/@Zoho", label: "YouTube", icon: "&#9654;"},
	ChannelFacebook:  {url: "https://www.facebook.com/zoho", label: "Facebook", icon: "f"},
	ChannelInstagram: {url: "https://www.instagram.com/zoho", label: "Instagram", icon: "&#9673;"},
}

// SocialLinks renders the corporate "Follow us" block for channels in the
// given order. Unknown channels are skipped. It returns "" when no channel
// produces a link.
func SocialLinks(channels []Channel, displayType DisplayType, accent string) (string, error) {
	if len(channels) == 0 {
		return "", nil
	}

	links := make([]string, 0, len(channels))
	for _, ch := range channels {
		meta, ok := corporateChannels[Channel(strings.ToLower(string(ch)))]
		if !ok {
			continue
		}
		href, err := channelHref(meta.url)
		if err != nil {
			return "", errors.Join(ErrSocialLinks, fmt.Errorf("channel %q: %w", ch, err))
		}

		label := meta.label
		style := fmt.Sprintf("color:%s;text-decoration:none;margin-right:10px;", accent)
		if displayType == DisplayIcons {
			label = meta.icon
			style = fmt.Sprintf("color:%s;text-decoration:none;margin-right:8px;font-weight:bold;font-size:14px;", accent)
		}
		links = append(links, fmt.Sprintf(
			`<a href="%s" title="%s" target="_blank" rel="noopener" style="%s">%s</a>`,
			href, sanitizer.EscapeHTML(meta.label), style, label))
	}
	if len(links) == 0 {
		return "", nil
	}

	return `<div class="sig-social" style="margin-top:12px;padding-top:8px;border-top:1px solid #e5e5e5;font-size:12px;">` +
		`<span class="sig-text" style="color:#777777;margin-right:8px;">Follow us</span>` +
		strings.Join(links, "") +
		`</div>`, nil
}

// channelHref re-encodes a table URL and escapes it for an attribute.
func channelHref(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "https" || u.Host == "" {
		return "", fmt.Errorf("unsupported url %q", raw)
	}
	return sanitizer.EscapeHTML(u.String()), nil
}
