package signature

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/sigkit/pkg/environment"
	"github.com/dmitrymomot/sigkit/pkg/sanitizer"
)

const (
	logoLightFile = "zoho-logo-light.png"
	logoDarkFile  = "zoho-logo-dark.png"
	devAssetDir   = "assets/images/"
)

// LogoURLs holds the light- and dark-background logo locations.
type LogoURLs struct {
	Light string
	Dark  string
}

// Assets resolves brand assets for one environment. Development gets paths
// relative to the host page, every other environment gets absolute URLs
// under baseURL.
type Assets struct {
	env     environment.Environment
	baseURL string
	brand   string
}

// NewAssets returns an asset provider for env. An empty baseURL falls back to
// DefaultAssetBaseURL.
func NewAssets(env environment.Environment, baseURL string) Assets {
	if baseURL == "" {
		baseURL = DefaultAssetBaseURL
	}
	return Assets{env: env, baseURL: baseURL, brand: DefaultBrandName}
}

// Brand is the name used for logo alt text and links.
func (a Assets) Brand() string { return a.brand }

// LogoURLs returns the logo locations for the configured environment.
func (a Assets) LogoURLs() LogoURLs {
	if a.env == environment.Development || a.env == "" {
		return LogoURLs{
			Light: devAssetDir + logoLightFile,
			Dark:  devAssetDir + logoDarkFile,
		}
	}
	base := strings.TrimRight(a.baseURL, "/") + "/"
	return LogoURLs{
		Light: base + logoLightFile,
		Dark:  base + logoDarkFile,
	}
}

// DualLogos emits both logo variants. The light image is visible by default;
// the dark one is hidden inline and revealed by the dark-mode style block.
// Both carry an explicit pixel height because mail clients drop responsive
// CSS. The images are wrapped in a link when websiteURL passes SanitizeURL.
func (a Assets) DualLogos(websiteURL string, height int) string {
	if height <= 0 {
		height = 40
	}
	urls := a.LogoURLs()
	alt := sanitizer.EscapeHTML(a.brand)

	var b strings.Builder
	href := sanitizer.SanitizeURL(websiteURL)
	if href != "" {
		fmt.Fprintf(&b, `<a href="%s" target="_blank" rel="noopener" style="text-decoration:none;display:inline-block;">`, sanitizer.EscapeHTML(href))
	}
	fmt.Fprintf(&b,
		`<img src="%s" alt="%s" height="%d" class="zoho-logo-light sig-logo-light" style="display:block;height:%dpx;width:auto;border:0;outline:none;" />`,
		sanitizer.EscapeHTML(urls.Light), alt, height, height)
	fmt.Fprintf(&b,
		`<img src="%s" alt="%s" height="%d" class="zoho-logo-dark sig-logo-dark" style="display:none;height:%dpx;width:auto;border:0;outline:none;" />`,
		sanitizer.EscapeHTML(urls.Dark), alt, height, height)
	if href != "" {
		b.WriteString(`</a>`)
	}
	return b.String()
}
