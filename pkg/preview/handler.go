package preview

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/sigkit/pkg/binder"
	"github.com/dmitrymomot/sigkit/pkg/cache"
	"github.com/dmitrymomot/sigkit/pkg/clientip"
	"github.com/dmitrymomot/sigkit/pkg/environment"
	"github.com/dmitrymomot/sigkit/pkg/httpserver"
	"github.com/dmitrymomot/sigkit/pkg/logger"
	"github.com/dmitrymomot/sigkit/pkg/qrcode"
	"github.com/dmitrymomot/sigkit/pkg/ratelimiter"
	"github.com/dmitrymomot/sigkit/pkg/requestid"
	"github.com/dmitrymomot/sigkit/pkg/signature"
	"github.com/dmitrymomot/sigkit/pkg/slug"
	"github.com/dmitrymomot/sigkit/pkg/validator"
	"github.com/dmitrymomot/sigkit/pkg/vcard"
)

const (
	// ExportFilename is the attachment name of exported signatures. Named
	// contacts get it prefixed with a slug of their name.
	ExportFilename = "signature.html"

	// MaxQRSize bounds the edge of generated QR images.
	MaxQRSize = 1024

	qrCacheSize = 256
)

// Handler serves the signature editor.
type Handler struct {
	gen            *signature.Generator
	log            *slog.Logger
	env            environment.Environment
	allowedDomains []string
	assets         fs.FS
	checks         []httpserver.Check
	limiter        *ratelimiter.Bucket
	resolver       clientip.Resolver
	qrCache        *cache.LRU[string, []byte]
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger for request and render failures.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithEnvironment sets the environment attached to request contexts.
func WithEnvironment(env environment.Environment) Option {
	return func(h *Handler) { h.env = env }
}

// WithAllowedDomains restricts email domains accepted by /validate.
// No domains accepts any.
func WithAllowedDomains(domains ...string) Option {
	return func(h *Handler) { h.allowedDomains = domains }
}

// WithAssets serves fsys under /assets/, which is where development logo
// paths point.
func WithAssets(fsys fs.FS) Option {
	return func(h *Handler) { h.assets = fsys }
}

// WithHealthChecks adds readiness checks to /health.
func WithHealthChecks(checks ...httpserver.Check) Option {
	return func(h *Handler) { h.checks = append(h.checks, checks...) }
}

// WithRateLimit limits /export and /vcard.png per client address.
func WithRateLimit(b *ratelimiter.Bucket) Option {
	return func(h *Handler) { h.limiter = b }
}

// WithTrustedProxyHeaders makes client addresses come from these headers,
// in order. Without it only the TCP peer is used.
func WithTrustedProxyHeaders(headers ...string) Option {
	return func(h *Handler) { h.resolver = clientip.NewResolver(headers...) }
}

// New creates a Handler around gen.
func New(gen *signature.Generator, opts ...Option) *Handler {
	h := &Handler{
		gen: gen,
		log: logger.Discard(),
		env: environment.Development,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With(logger.Component("preview"))
	h.qrCache, _ = cache.New[string, []byte](qrCacheSize)
	return h
}

// Routes returns the editor's router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware(h.resolver))
	r.Use(environment.Middleware(h.env))
	r.Use(requestLogger(h.log))
	r.Use(middleware.Recoverer)

	r.Get("/", h.index)
	r.Post("/preview", h.preview)
	r.Post("/validate", h.validate)
	r.Get("/styles", h.styles)
	r.Get("/health", httpserver.HealthCheckHandler(h.log, h.checks...))

	r.Group(func(r chi.Router) {
		if h.limiter != nil {
			r.Use(ratelimiter.Middleware(h.limiter, ratelimiter.ByClientIP,
				ratelimiter.WithLogger(h.log),
				ratelimiter.WithDeniedHandler(http.HandlerFunc(h.tooManyRequests)),
			))
		}
		r.Post("/export", h.export)
		r.Get("/vcard.png", h.vcard)
	})

	if h.assets != nil {
		r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServerFS(h.assets)))
	}
	return r
}

// defaults is the form state of a fresh editor.
func (h *Handler) defaults() Request {
	return Request{
		Style:       signature.StyleClassic.String(),
		AccentColor: h.gen.DefaultAccent(),
		Channels:    []string{},
		DisplayType: string(signature.DisplayText),
	}
}

// decode reads Datastar signals or, for plain clients, the query string,
// form or JSON body.
func (h *Handler) decode(r *http.Request) (Request, error) {
	req := h.defaults()
	var err error
	if IsDataStar(r) {
		err = datastar.ReadSignals(r, &req)
	} else {
		err = binder.Request()(r, &req)
	}
	return req, err
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	req := h.defaults()
	if err := binder.Query()(r, &req); err != nil {
		h.log.DebugContext(r.Context(), "ignoring bad prefill query", logger.Error(err))
		req = h.defaults()
	}

	page := Page(req, h.gen.PreviewComponent(req.RenderConfig(true)))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(r.Context(), w); err != nil {
		h.log.ErrorContext(r.Context(), "render page", logger.Error(err))
	}
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	req, err := h.decode(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	c := h.gen.PreviewComponent(req.RenderConfig(true))
	if err := renderFragment(w, r, c, PreviewTarget); err != nil {
		h.log.ErrorContext(r.Context(), "render preview", logger.Error(err))
	}
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	req, err := h.decode(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}
	cfg := req.RenderConfig(false)
	html := h.gen.Generate(r.Context(), cfg)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename(cfg.Data.Name)+`"`)
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write([]byte(html)); err != nil {
		h.log.ErrorContext(r.Context(), "write export", logger.Error(err))
	}
}

// ValidationResult is the body of a successful /validate call.
type ValidationResult struct {
	Valid bool `json:"valid"`
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	req, err := h.decode(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	err = signature.ValidateRecord(req.RenderConfig(false), h.allowedDomains)
	switch {
	case err == nil:
		_ = writeJSON(w, http.StatusOK, JSONResponse{Data: ValidationResult{Valid: true}})
	case validator.IsValidationError(err):
		_ = writeJSON(w, http.StatusUnprocessableEntity, JSONResponse{
			Data:  ValidationResult{Valid: false},
			Error: validationDetail(validator.ExtractValidationErrors(err)),
		})
	default:
		h.log.ErrorContext(r.Context(), "validate", logger.Error(err))
		_ = writeError(w, r, http.StatusInternalServerError, "internal_error", err)
	}
}

func (h *Handler) styles(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, JSONResponse{Data: signature.Styles()})
}

func (h *Handler) vcard(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := binder.Query()(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	card, err := vcard.Build(req.Record(), vcard.WithOrganization(h.gen.Assets().Brand()))
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	size := req.Size
	if size <= 0 {
		size = qrcode.DefaultSize
	}
	size = min(size, MaxQRSize)

	key := strconv.Itoa(size) + "\x00" + card
	png, err := h.qrCache.GetOrLoad(key, func() ([]byte, error) {
		return qrcode.Generate(card, size)
	})
	if err != nil {
		if errors.Is(err, qrcode.ErrContentTooLong) {
			h.badRequest(w, r, err)
			return
		}
		h.log.ErrorContext(r.Context(), "generate qr code", logger.Error(err))
		_ = writeError(w, r, http.StatusInternalServerError, "internal_error", err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(png)
}

func (h *Handler) tooManyRequests(w http.ResponseWriter, r *http.Request) {
	h.log.WarnContext(r.Context(), "rate limited", logger.Path(r.URL.Path))
	_ = writeError(w, r, http.StatusTooManyRequests, "rate_limited", errors.New(http.StatusText(http.StatusTooManyRequests)))
}

// exportFilename names the download after the contact.
func exportFilename(name string) string {
	if s := slug.Make(name, slug.MaxLength(60)); s != "" {
		return s + "-" + ExportFilename
	}
	return ExportFilename
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	h.log.DebugContext(r.Context(), "bad request", logger.Error(err))
	_ = writeError(w, r, http.StatusBadRequest, "bad_request", err)
}
