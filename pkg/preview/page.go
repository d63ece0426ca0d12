package preview

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/sigkit/pkg/signature"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

type textField struct {
	name  string
	label string
	kind  string
}

var textFields = []textField{
	{"name", "Full name", "text"},
	{"title", "Job title", "text"},
	{"department", "Department", "text"},
	{"email", "Email", "email"},
	{"phone", "Phone", "tel"},
	{"linkedin", "LinkedIn profile", "text"},
	{"twitter", "X handle", "text"},
	{"bookings", "Bookings link", "url"},
	{"website", "Website", "url"},
}

var channelLabels = []struct {
	id    signature.Channel
	label string
}{
	{signature.ChannelLinkedIn, "LinkedIn"},
	{signature.ChannelTwitter, "X"},
	{signature.ChannelFacebook, "Facebook"},
	{signature.ChannelInstagram, "Instagram"},
	{signature.ChannelYouTube, "YouTube"},
}

// Page renders the editor: the form on the left, the live preview on the
// right. preview is rendered inside #signature-preview.
func Page(initial Request, preview templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		signals, err := json.Marshal(initial)
		if err != nil {
			return err
		}

		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString(`<title>Email signature generator</title>`)
		fmt.Fprintf(&b, `<script type="module" src="%s"></script>`, datastarScript)
		b.WriteString(`<style>body{font-family:Arial,Helvetica,sans-serif;margin:0;display:flex;gap:24px;padding:24px}` +
			`form{flex:0 0 340px;display:flex;flex-direction:column;gap:8px}label{font-size:13px;color:#444}` +
			`input,select{width:100%;padding:6px;box-sizing:border-box}.preview-pane{flex:1;padding:24px;border:1px solid #ddd;border-radius:6px;background:#fff}` +
			`.preview-pane.dark-mode{background:#1e1e1e}</style></head><body>`)

		fmt.Fprintf(&b, `<form id="signature-form" method="post" action="/export" data-signals="%s" data-on:input__debounce.250ms="@post('/preview')" data-on:change="@post('/preview')">`,
			templ.EscapeString(string(signals)))

		for _, f := range textFields {
			fmt.Fprintf(&b, `<label for="%[1]s">%[2]s</label><input id="%[1]s" name="%[1]s" type="%[3]s" data-bind:%[1]s>`,
				f.name, templ.EscapeString(f.label), f.kind)
		}

		b.WriteString(`<label for="style">Style</label><select id="style" name="style" data-bind:style>`)
		for _, s := range signature.Styles() {
			selected := ""
			if string(s) == initial.Style {
				selected = " selected"
			}
			fmt.Fprintf(&b, `<option value="%s"%s>%s</option>`, s, selected, strings.ToUpper(string(s[:1]))+string(s[1:]))
		}
		b.WriteString(`</select>`)

		fmt.Fprintf(&b, `<label for="accent_color">Accent colour</label><input id="accent_color" name="accent_color" type="color" value="%s" data-bind:accent_color>`,
			templ.EscapeString(initial.AccentColor))

		b.WriteString(`<fieldset><legend>Follow us links</legend>`)
		b.WriteString(`<label><input type="checkbox" name="social_enabled" value="on" data-bind:social_enabled> Show corporate links</label>`)
		for _, ch := range channelLabels {
			fmt.Fprintf(&b, `<label><input type="checkbox" name="social_channels" value="%s" data-bind:social_channels> %s</label>`, ch.id, ch.label)
		}
		b.WriteString(`<select name="social_display" data-bind:social_display><option value="text">Text</option><option value="icons">Icons</option></select>`)
		b.WriteString(`</fieldset>`)

		b.WriteString(`<button type="submit">Download HTML</button>`)
		b.WriteString(`<button type="button" data-on:click="document.querySelector('.preview-pane').classList.toggle('dark-mode')">Toggle dark preview</button>`)
		b.WriteString(`</form>`)

		fmt.Fprintf(&b, `<main class="preview-pane"><div id="%s">`, strings.TrimPrefix(PreviewTarget, "#"))
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := preview.Render(ctx, w); err != nil {
			return err
		}
		_, err = io.WriteString(w, `</div></main></body></html>`)
		return err
	})
}
