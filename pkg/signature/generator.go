package signature

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/sigkit/pkg/environment"
	"github.com/dmitrymomot/sigkit/pkg/logger"
	"github.com/dmitrymomot/sigkit/pkg/sanitizer"
)

const (
	stageRequested = "requested"
	stageClassic   = "classic"
	stageEmergency = "emergency"
)

// socialFunc builds the corporate social block.
type socialFunc func(channels []Channel, displayType DisplayType, accent string) (string, error)

// Generator turns a RenderConfig into signature HTML. It holds only
// immutable settings, so one value can serve concurrent callers.
type Generator struct {
	assets        Assets
	homepage      string
	defaultAccent string
	log           *slog.Logger
	layouts       map[Style]layoutFunc
	social        socialFunc
}

// New creates a Generator. Without options it renders development asset
// paths, links to DefaultHomepageURL and logs nothing.
func New(opts ...Option) *Generator {
	g := &Generator{
		assets:        NewAssets(environment.Development, DefaultAssetBaseURL),
		homepage:      DefaultHomepageURL,
		defaultAccent: DefaultAccentColor,
		log:           logger.Discard(),
		layouts:       layouts,
		social:        SocialLinks,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.defaultAccent = strings.TrimSpace(g.defaultAccent)
	if !sanitizer.IsHexColor(g.defaultAccent) {
		g.defaultAccent = DefaultAccentColor
	}
	return g
}

// result is the outcome of one guarded layout run.
type result struct {
	html  string
	err   error
	stage string
}

func (r result) ok() bool { return r.err == nil }

// Generate renders cfg in copy or preview mode as cfg.IsPreview says.
// It always returns usable HTML: an unknown style renders as classic, a
// failing style is retried as classic, and a failing classic degrades to a
// plain emergency signature.
func (g *Generator) Generate(ctx context.Context, cfg RenderConfig) string {
	data := cfg.Data.Normalize()
	accent := sanitizer.SanitizeHexColor(cfg.AccentColor, g.defaultAccent)

	style := cfg.Style
	if _, ok := g.layouts[style]; !ok {
		if style != "" {
			g.log.DebugContext(ctx, "falling back to classic",
				logger.Style(style.String()),
				logger.Error(ErrUnknownStyle),
			)
		}
		style = StyleClassic
	}

	in := layoutInput{
		data:       data,
		websiteURL: g.websiteURL(data.Website),
		socialHTML: g.socialBlock(ctx, cfg.SocialOptions, accent),
		accent:     accent,
		isPreview:  cfg.IsPreview,
		assets:     g.assets,
	}

	res := g.run(style, stageRequested, in)
	if res.ok() {
		return res.html
	}
	g.log.WarnContext(ctx, "signature layout failed",
		logger.Style(style.String()),
		logger.Stage(res.stage),
		logger.Error(res.err),
	)

	if style != StyleClassic {
		res = g.run(StyleClassic, stageClassic, in)
		if res.ok() {
			return res.html
		}
		g.log.ErrorContext(ctx, "classic fallback failed",
			logger.Style(StyleClassic.String()),
			logger.Stage(res.stage),
			logger.Error(res.err),
		)
	}

	g.log.ErrorContext(ctx, "rendering emergency signature", logger.Stage(stageEmergency))
	return emergencySignature(data)
}

// Preview renders cfg for the live preview pane. An empty name yields a
// placeholder prompt instead of a half-empty signature.
func (g *Generator) Preview(ctx context.Context, cfg RenderConfig) string {
	if strings.TrimSpace(cfg.Data.Name) == "" {
		return previewPlaceholder()
	}
	cfg.IsPreview = true
	return g.Generate(ctx, cfg)
}

// Component wraps Generate as a templ component so signatures can be
// embedded in templ pages.
func (g *Generator) Component(cfg RenderConfig) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, g.Generate(ctx, cfg))
		return err
	})
}

// PreviewComponent wraps Preview as a templ component.
func (g *Generator) PreviewComponent(cfg RenderConfig) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, g.Preview(ctx, cfg))
		return err
	})
}

// Assets returns the generator's asset provider.
func (g *Generator) Assets() Assets { return g.assets }

// DefaultAccent is the colour used when a request carries no valid accent.
func (g *Generator) DefaultAccent() string { return g.defaultAccent }

// websiteURL prefers the record's website and falls back to the homepage.
func (g *Generator) websiteURL(raw string) string {
	if u := sanitizer.SanitizeURL(raw); u != "" {
		return sanitizer.NormalizeURL(u)
	}
	return g.homepage
}

// socialBlock never fails: errors and panics are logged and replaced by "".
func (g *Generator) socialBlock(ctx context.Context, opts SocialOptions, accent string) (html string) {
	if !opts.Enabled || len(opts.Channels) == 0 {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			g.log.ErrorContext(ctx, "social links panicked",
				logger.Error(errors.Join(ErrSocialLinks, fmt.Errorf("%v", r))))
			html = ""
		}
	}()

	out, err := g.social(opts.Channels, opts.DisplayType, accent)
	if err != nil {
		g.log.WarnContext(ctx, "social links skipped", logger.Error(err))
		return ""
	}
	return out
}

// run executes one layout and converts panics and unusable output into
// errors.
func (g *Generator) run(style Style, stage string, in layoutInput) (res result) {
	res.stage = stage
	defer func() {
		if r := recover(); r != nil {
			res.html = ""
			res.err = errors.Join(ErrLayoutPanic, fmt.Errorf("style %s: %v", style, r))
		}
	}()

	layout, ok := g.layouts[style]
	if !ok {
		res.err = errors.Join(ErrLayoutFailed, ErrUnknownStyle)
		return res
	}
	html := layout(in)
	if html == "" || !strings.Contains(html, "<table") {
		res.err = errors.Join(ErrLayoutFailed, fmt.Errorf("style %s produced no table", style))
		return res
	}
	res.html = html
	return res
}
