package signature

import (
	"log/slog"

	"github.com/dmitrymomot/sigkit/pkg/environment"
)

const (
	DefaultHomepageURL  = "https://www.zoho.com"
	DefaultAssetBaseURL = "https://static.zohocdn.com/signature"
	DefaultBrandName    = "Zoho"
	DefaultAccentColor  = "#E42527"
	DefaultEmailDomain  = "zohocorp.com"
)

// Config holds generator settings loaded from the environment.
type Config struct {
	Environment         string   `env:"SIG_ENV" envDefault:"development"`
	AssetBaseURL        string   `env:"SIG_ASSET_BASE_URL" envDefault:"https://static.zohocdn.com/signature"`
	HomepageURL         string   `env:"SIG_HOMEPAGE_URL" envDefault:"https://www.zoho.com"`
	BrandName           string   `env:"SIG_BRAND_NAME" envDefault:"Zoho"`
	DefaultAccent       string   `env:"SIG_DEFAULT_ACCENT" envDefault:"#E42527"`
	AllowedEmailDomains []string `env:"SIG_ALLOWED_EMAIL_DOMAINS" envSeparator:"," envDefault:"zohocorp.com"`
}

// Option configures a Generator.
type Option func(*Generator)

// WithEnvironment selects development (relative) or production (absolute)
// logo URLs.
func WithEnvironment(env environment.Environment) Option {
	return func(g *Generator) { g.assets.env = env }
}

// WithAssetBaseURL sets the base URL used for logos in production.
func WithAssetBaseURL(base string) Option {
	return func(g *Generator) {
		if base != "" {
			g.assets.baseURL = base
		}
	}
}

// WithHomepage sets the link used when the record has no website.
func WithHomepage(u string) Option {
	return func(g *Generator) {
		if u != "" {
			g.homepage = u
		}
	}
}

// WithBrandName sets the logo alt text and the minimal style's text mark.
func WithBrandName(name string) Option {
	return func(g *Generator) {
		if name != "" {
			g.assets.brand = name
		}
	}
}

// WithDefaultAccent sets the colour used when the caller's accent is not a
// valid hex colour.
func WithDefaultAccent(color string) Option {
	return func(g *Generator) {
		if color != "" {
			g.defaultAccent = color
		}
	}
}

// WithLogger routes fallback diagnostics to l. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// NewFromConfig creates a Generator from cfg. Only non-zero values are
// applied; opts run afterwards and take precedence.
func NewFromConfig(cfg Config, opts ...Option) *Generator {
	configOpts := []Option{
		WithEnvironment(environment.Parse(cfg.Environment)),
		WithAssetBaseURL(cfg.AssetBaseURL),
		WithHomepage(cfg.HomepageURL),
		WithBrandName(cfg.BrandName),
		WithDefaultAccent(cfg.DefaultAccent),
	}
	return New(append(configOpts, opts...)...)
}
