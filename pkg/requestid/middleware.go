package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

var validIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type config struct {
	header    string
	generate  func() string
	trustPeer bool
}

// Option customises the middleware.
type Option func(*config)

// WithHeader reads and echoes the id under a different header name.
func WithHeader(name string) Option {
	return func(c *config) {
		if name != "" {
			c.header = name
		}
	}
}

// WithGenerator replaces the UUIDv4 generator.
func WithGenerator(fn func() string) Option {
	return func(c *config) {
		if fn != nil {
			c.generate = fn
		}
	}
}

// IgnoreIncoming always generates a fresh id, even when the client sent one.
func IgnoreIncoming() Option {
	return func(c *config) { c.trustPeer = false }
}

// New returns the request-id middleware configured by opts.
func New(opts ...Option) func(http.Handler) http.Handler {
	cfg := config{header: Header, generate: uuid.NewString, trustPeer: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(cfg.header)
			if !cfg.trustPeer || !isValidRequestID(id) {
				id = cfg.generate()
			}
			w.Header().Set(cfg.header, id)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}

// Middleware is New with defaults: reuse a valid X-Request-ID, else a UUIDv4.
func Middleware(next http.Handler) http.Handler {
	return New()(next)
}

func isValidRequestID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	return validIDRegex.MatchString(id)
}
