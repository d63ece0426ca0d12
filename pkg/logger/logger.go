package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/sigkit/pkg/environment"
)

// Format selects the slog handler New builds.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

type options struct {
	level      slog.Level
	format     Format
	out        io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// Option configures New.
type Option func(*options)

// WithLevel sets the minimum level.
func WithLevel(l slog.Level) Option {
	return func(o *options) { o.level = l }
}

// WithJSONFormatter emits one JSON object per record.
func WithJSONFormatter() Option {
	return func(o *options) { o.format = FormatJSON }
}

// WithTextFormatter emits logfmt-style key=value lines.
func WithTextFormatter() Option {
	return func(o *options) { o.format = FormatText }
}

// WithOutput redirects records to w. A nil writer is ignored.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithAttr attaches attrs to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) { o.attrs = append(o.attrs, attrs...) }
}

// WithContextExtractors registers extractors run on every record.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		for _, ex := range extractors {
			if ex != nil {
				o.extractors = append(o.extractors, ex)
			}
		}
	}
}

// WithEnvironment applies the defaults for env and tags records with the
// service and environment names. Development logs text at debug level;
// staging and production log JSON at info. Options after it still win.
func WithEnvironment(env environment.Environment, service string) Option {
	return func(o *options) {
		switch env {
		case environment.Production, environment.Staging:
			o.format, o.level = FormatJSON, slog.LevelInfo
		default:
			env = environment.Development
			o.format, o.level = FormatText, slog.LevelDebug
		}
		if service != "" {
			o.attrs = append(o.attrs, slog.String("service", service))
		}
		o.attrs = append(o.attrs, slog.String("env", string(env)))
	}
}

// New builds a *slog.Logger. Without options it writes JSON at info level
// to stdout.
func New(opts ...Option) *slog.Logger {
	o := options{level: slog.LevelInfo, format: FormatJSON, out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	ho := &slog.HandlerOptions{Level: o.level}
	var h slog.Handler
	if o.format == FormatText {
		h = slog.NewTextHandler(o.out, ho)
	} else {
		h = slog.NewJSONHandler(o.out, ho)
	}
	if len(o.attrs) > 0 {
		h = h.WithAttrs(o.attrs)
	}
	if len(o.extractors) > 0 {
		h = &contextHandler{Handler: h, extractors: o.extractors}
	}
	return slog.New(h)
}

// ParseLevel maps debug, info, warn and error (any case) onto a slog.Level.
// Anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
