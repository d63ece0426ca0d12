package signature

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/sigkit/pkg/sanitizer"
)

// PreviewPlaceholderText is shown in the preview pane until a name is set.
const PreviewPlaceholderText = "Fill in your name to preview your signature"

// emergencySignature is the last resort of Generate. It uses nothing but
// escaping so it cannot fail for the same reason a layout did.
func emergencySignature(data ContactRecord) string {
	var b strings.Builder
	b.WriteString(`<table cellpadding="0" cellspacing="0" border="0" role="presentation" style="font-family:Arial, Helvetica, sans-serif;font-size:14px;color:#333333;"><tr><td>`)
	fmt.Fprintf(&b, `<div style="font-weight:bold;">%s</div>`, sanitizer.EscapeHTML(data.Name))

	var role []string
	for _, s := range []string{data.Title, data.Department} {
		if s != "" {
			role = append(role, sanitizer.EscapeHTML(s))
		}
	}
	if len(role) > 0 {
		fmt.Fprintf(&b, `<div>%s</div>`, strings.Join(role, " | "))
	}
	if data.Email != "" {
		fmt.Fprintf(&b, `<div>%s</div>`, sanitizer.EscapeHTML(data.Email))
	}
	if data.Phone != "" {
		fmt.Fprintf(&b, `<div>%s</div>`, sanitizer.EscapeHTML(data.Phone))
	}
	b.WriteString(`</td></tr></table>`)
	return b.String()
}

func previewPlaceholder() string {
	return `<table cellpadding="0" cellspacing="0" border="0" role="presentation" style="font-family:Arial, Helvetica, sans-serif;"><tr>` +
		`<td class="sig-placeholder" style="padding:16px;color:#999999;font-size:14px;font-style:italic;">` +
		PreviewPlaceholderText +
		`</td></tr></table>`
}
