package signature

import "strings"

const (
	darkModeClass = ".dark-mode"
	darkMediaRule = "@media (prefers-color-scheme: dark)"
)

// textOverrides recolour the name, title and separators on dark backgrounds.
var textOverrides = []string{
	"%s .sig-name { color: #ffffff !important; }",
	"%s .sig-title { color: #c7c7c7 !important; }",
	"%s .sig-text { color: #e0e0e0 !important; }",
	"%s .sig-separator { border-color: #5a5a5a !important; }",
	"%s .sig-social { border-top-color: #444444 !important; }",
}

// logoOverrides swap the light logo for the dark one.
var logoOverrides = []string{
	"%s .sig-logo-light { display: none !important; }",
	"%s .sig-logo-dark { display: block !important; }",
}

// DarkModeStyles returns the <style> block with dark-mode overrides.
//
// The preview variant scopes every rule under .dark-mode only, so the live
// preview follows the host page toggle and never the OS preference. The copy
// variant repeats the rules inside @media (prefers-color-scheme: dark) for the
// recipient's mail client, keeps the .dark-mode rules for hosts that toggle a
// class, and hides the dark logo by default.
func DarkModeStyles(isPreview bool) string {
	return darkModeStyles(isPreview, true)
}

func darkModeStyles(isPreview, withLogos bool) string {
	rules := textOverrides
	if withLogos {
		rules = append(append([]string{}, textOverrides...), logoOverrides...)
	}

	var b strings.Builder
	b.WriteString("<style>\n")
	if !isPreview {
		if withLogos {
			b.WriteString(".sig-logo-dark { display: none; }\n")
		}
		b.WriteString(darkMediaRule + " {\n")
		writeRules(&b, rules, "", "  ")
		b.WriteString("}\n")
	}
	writeRules(&b, rules, darkModeClass, "")
	b.WriteString("</style>")
	return b.String()
}

func writeRules(b *strings.Builder, rules []string, scope, indent string) {
	for _, r := range rules {
		line := strings.Replace(r, "%s", scope, 1)
		b.WriteString(indent)
		b.WriteString(strings.TrimSpace(line))
		b.WriteString("\n")
	}
}
