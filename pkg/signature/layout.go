package signature

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/sigkit/pkg/sanitizer"
)

const fontStack = "Arial, Helvetica, sans-serif"

// layoutInput is everything a layout needs. Values are already resolved:
// accent is a valid hex colour, websiteURL is non-empty and socialHTML is
// either a finished block or "".
type layoutInput struct {
	data       ContactRecord
	websiteURL string
	socialHTML string
	accent     string
	isPreview  bool
	assets     Assets
}

// layoutFunc arranges the builder fragments into one signature document.
type layoutFunc func(in layoutInput) string

// layouts is the closed style registry.
var layouts = map[Style]layoutFunc{
	StyleClassic:      classicLayout,
	StyleProfessional: professionalLayout,
	StyleCompact:      compactLayout,
	StyleModern:       modernLayout,
	StyleCreative:     creativeLayout,
	StyleMinimal:      minimalLayout,
}

// titleLine joins title and department with a pipe; "" when both are empty.
func titleLine(data ContactRecord) string {
	parts := make([]string, 0, 2)
	for _, s := range []string{data.Title, data.Department} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, sanitizer.EscapeHTML(s))
		}
	}
	return strings.Join(parts, " | ")
}

func openTable(style string) string {
	return fmt.Sprintf(`<table cellpadding="0" cellspacing="0" border="0" role="presentation" style="border-collapse:collapse;font-family:%s;%s">`, fontStack, style)
}

func nameBlock(data ContactRecord, style string) string {
	return fmt.Sprintf(`<div class="sig-name" style="%s">%s</div>`, style, sanitizer.EscapeHTML(data.Name))
}

func titleBlock(data ContactRecord, style string) string {
	line := titleLine(data)
	if line == "" {
		return ""
	}
	return fmt.Sprintf(`<div class="sig-title" style="%s">%s</div>`, style, line)
}

// tierLines renders each non-empty tier on its own line.
func tierLines(in layoutInput, style string) string {
	var b strings.Builder
	for _, tier := range []string{
		PrimaryContactTier(in.data, in.accent),
		CallToActionTier(in.data, in.accent),
		PersonalSocialTier(in.data, in.accent),
	} {
		if tier != "" {
			fmt.Fprintf(&b, `<div class="sig-text" style="%s">%s</div>`, style, tier)
		}
	}
	return b.String()
}

// tierItems renders every tier item in its own div, for stacked layouts.
func tierItems(in layoutInput, style string) string {
	var b strings.Builder
	groups := [][]string{
		primaryContactItems(in.data, in.accent),
		callToActionItems(in.data, in.accent),
		personalSocialItems(in.data, in.accent),
	}
	for _, items := range groups {
		for _, item := range items {
			fmt.Fprintf(&b, `<div class="sig-text" style="%s">%s</div>`, style, item)
		}
	}
	return b.String()
}

// tierInline renders all tiers on one line separated by accent bullets.
func tierInline(in layoutInput) string {
	var items []string
	items = append(items, primaryContactItems(in.data, in.accent)...)
	items = append(items, callToActionItems(in.data, in.accent)...)
	items = append(items, personalSocialItems(in.data, in.accent)...)
	return joinTier(items, in.accent)
}
