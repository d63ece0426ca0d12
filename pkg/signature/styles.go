package signature

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/sigkit/pkg/sanitizer"
)

// classicLayout: logo column, accent divider, stacked text column.
func classicLayout(in layoutInput) string {
	var b strings.Builder
	b.WriteString(DarkModeStyles(in.isPreview))
	b.WriteString(openTable("font-size:14px;color:#333333;line-height:1.4;"))
	b.WriteString(`<tr>`)
	fmt.Fprintf(&b, `<td style="padding-right:16px;vertical-align:top;">%s</td>`, in.assets.DualLogos(in.websiteURL, 48))
	fmt.Fprintf(&b, `<td class="sig-separator" style="border-left:2px solid %s;padding-left:16px;vertical-align:top;">`, in.accent)
	b.WriteString(nameBlock(in.data, "font-size:18px;font-weight:bold;color:#222222;"))
	b.WriteString(titleBlock(in.data, "font-size:14px;color:#666666;margin-top:2px;"))
	b.WriteString(tierLines(in, "font-size:13px;margin-top:6px;"))
	b.WriteString(in.socialHTML)
	b.WriteString(`</td></tr></table>`)
	return b.String()
}

// professionalLayout: logo on top, text below, accent bar closing the block.
func professionalLayout(in layoutInput) string {
	var b strings.Builder
	b.WriteString(DarkModeStyles(in.isPreview))
	b.WriteString(openTable("font-size:14px;color:#333333;line-height:1.5;"))
	fmt.Fprintf(&b, `<tr><td style="padding-bottom:10px;">%s</td></tr>`, in.assets.DualLogos(in.websiteURL, 40))
	b.WriteString(`<tr><td style="padding-bottom:8px;">`)
	b.WriteString(nameBlock(in.data, "font-size:17px;font-weight:bold;color:#1a1a1a;letter-spacing:0.2px;"))
	b.WriteString(titleBlock(in.data, "font-size:13px;color:#555555;text-transform:uppercase;letter-spacing:0.5px;margin-top:2px;"))
	b.WriteString(`</td></tr>`)
	fmt.Fprintf(&b, `<tr><td class="sig-separator" style="border-top:3px solid %s;padding-top:8px;">`, in.accent)
	b.WriteString(tierItems(in, "font-size:13px;line-height:1.6;"))
	b.WriteString(in.socialHTML)
	b.WriteString(`</td></tr></table>`)
	return b.String()
}

// compactLayout: a single row with a small logo and everything inline.
func compactLayout(in layoutInput) string {
	var b strings.Builder
	b.WriteString(DarkModeStyles(in.isPreview))
	b.WriteString(openTable("font-size:12px;color:#333333;line-height:1.3;"))
	b.WriteString(`<tr>`)
	fmt.Fprintf(&b, `<td style="padding-right:10px;vertical-align:middle;">%s</td>`, in.assets.DualLogos(in.websiteURL, 24))
	fmt.Fprintf(&b, `<td class="sig-separator" style="border-left:1px solid %s;padding-left:10px;vertical-align:middle;">`, in.accent)
	b.WriteString(`<div>`)
	fmt.Fprintf(&b, `<span class="sig-name" style="font-size:13px;font-weight:bold;color:#222222;">%s</span>`, sanitizer.EscapeHTML(in.data.Name))
	if line := titleLine(in.data); line != "" {
		fmt.Fprintf(&b, `<span class="sig-title" style="color:#666666;"> &middot; %s</span>`, line)
	}
	b.WriteString(`</div>`)
	if tiers := tierInline(in); tiers != "" {
		fmt.Fprintf(&b, `<div class="sig-text" style="margin-top:2px;">%s</div>`, tiers)
	}
	b.WriteString(in.socialHTML)
	b.WriteString(`</td></tr></table>`)
	return b.String()
}

// modernLayout: full-height accent bar on the left, logo closing the column.
func modernLayout(in layoutInput) string {
	var b strings.Builder
	b.WriteString(DarkModeStyles(in.isPreview))
	b.WriteString(openTable("font-size:14px;color:#2b2b2b;line-height:1.45;"))
	b.WriteString(`<tr>`)
	fmt.Fprintf(&b, `<td width="4" style="width:4px;background-color:%s;font-size:0;line-height:0;">&nbsp;</td>`, in.accent)
	b.WriteString(`<td style="padding-left:14px;vertical-align:top;">`)
	b.WriteString(nameBlock(in.data, "font-size:20px;font-weight:300;color:#111111;"))
	b.WriteString(titleBlock(in.data, fmt.Sprintf("font-size:13px;font-weight:bold;color:%s;margin-top:2px;", in.accent)))
	b.WriteString(tierLines(in, "font-size:13px;margin-top:6px;"))
	fmt.Fprintf(&b, `<div style="margin-top:10px;">%s</div>`, in.assets.DualLogos(in.websiteURL, 32))
	b.WriteString(in.socialHTML)
	b.WriteString(`</td></tr></table>`)
	return b.String()
}

// creativeLayout: two columns, accent-coloured name, logo on the right.
func creativeLayout(in layoutInput) string {
	var b strings.Builder
	b.WriteString(DarkModeStyles(in.isPreview))
	b.WriteString(openTable("font-size:14px;color:#333333;line-height:1.5;"))
	b.WriteString(`<tr><td style="padding-right:20px;vertical-align:top;">`)
	b.WriteString(nameBlock(in.data, fmt.Sprintf("font-size:22px;font-weight:bold;color:%s;", in.accent)))
	b.WriteString(titleBlock(in.data, "font-size:14px;font-style:italic;color:#666666;margin-top:2px;"))
	fmt.Fprintf(&b, `<div class="sig-separator" style="width:40px;border-top:2px solid %s;margin:8px 0;font-size:0;line-height:0;">&nbsp;</div>`, in.accent)
	b.WriteString(tierItems(in, "font-size:13px;"))
	b.WriteString(`</td>`)
	fmt.Fprintf(&b, `<td style="vertical-align:middle;text-align:center;">%s</td>`, in.assets.DualLogos(in.websiteURL, 56))
	b.WriteString(`</tr>`)
	if in.socialHTML != "" {
		fmt.Fprintf(&b, `<tr><td colspan="2">%s</td></tr>`, in.socialHTML)
	}
	b.WriteString(`</table>`)
	return b.String()
}

// minimalLayout has no images: the brand mark is a plain accent-coloured
// text link and the dark-mode block carries no logo rules.
func minimalLayout(in layoutInput) string {
	var b strings.Builder
	b.WriteString(darkModeStyles(in.isPreview, false))
	b.WriteString(openTable("font-size:13px;color:#333333;line-height:1.5;"))
	b.WriteString(`<tr><td>`)
	b.WriteString(nameBlock(in.data, "font-size:15px;font-weight:bold;color:#222222;"))
	b.WriteString(titleBlock(in.data, "font-size:13px;color:#777777;"))
	if tiers := tierInline(in); tiers != "" {
		fmt.Fprintf(&b, `<div class="sig-text" style="margin-top:4px;">%s</div>`, tiers)
	}
	brand := sanitizer.EscapeHTML(in.assets.brand)
	if href := sanitizer.SanitizeURL(in.websiteURL); href != "" {
		fmt.Fprintf(&b, `<div style="margin-top:6px;"><a href="%s" target="_blank" rel="noopener" style="color:%s;font-weight:bold;text-decoration:none;">%s</a></div>`,
			sanitizer.EscapeHTML(href), in.accent, brand)
	} else {
		fmt.Fprintf(&b, `<div style="margin-top:6px;color:%s;font-weight:bold;">%s</div>`, in.accent, brand)
	}
	b.WriteString(in.socialHTML)
	b.WriteString(`</td></tr></table>`)
	return b.String()
}
