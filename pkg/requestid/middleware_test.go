package requestid_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sigkit/pkg/logger"
	"github.com/dmitrymomot/sigkit/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{"none sent", "", false},
		{"plain id", "abc123", true},
		{"uuid", "550e8400-e29b-41d4-a716-446655440000", true},
		{"underscores and dashes", "ABC-123_xyz", true},
		{"at and hash", "req@preview#1", false},
		{"spaces", "req preview 1", false},
		{"slashes", "req/preview", false},
		{"markup", "<script>alert(1)</script>", false},
		{"too long", strings.Repeat("a", 129), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var seen string
			h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = requestid.FromContext(r.Context())
			}))
			req := httptest.NewRequest(http.MethodPost, "/preview", nil)
			if tt.incoming != "" {
				req.Header.Set(requestid.Header, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(requestid.Header))
			if tt.reused {
				assert.Equal(t, tt.incoming, seen)
			} else {
				assert.NotEqual(t, tt.incoming, seen)
			}
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "req-7", requestid.FromContext(requestid.WithContext(context.Background(), "req-7")))
	assert.Empty(t, requestid.FromContext(context.Background()))
}

func TestNew_Options(t *testing.T) {
	t.Parallel()

	t.Run("custom header and generator", func(t *testing.T) {
		t.Parallel()
		mw := requestid.New(
			requestid.WithHeader("X-Correlation-ID"),
			requestid.WithGenerator(func() string { return "fixed-id" }),
		)
		handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "fixed-id", requestid.FromContext(r.Context()))
		}))

		req := httptest.NewRequest(http.MethodPost, "/preview", nil)
		req.Header.Set(requestid.Header, "ignored-header")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "fixed-id", rec.Header().Get("X-Correlation-ID"))
		assert.Empty(t, rec.Header().Get(requestid.Header))
	})

	t.Run("ignore incoming", func(t *testing.T) {
		t.Parallel()
		handler := requestid.New(requestid.IgnoreIncoming())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestid.Header, "client-id")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.NotEqual(t, "client-id", rec.Header().Get(requestid.Header))
		assert.NotEmpty(t, rec.Header().Get(requestid.Header))
	})
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithJSONFormatter(),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	log.InfoContext(requestid.WithContext(context.Background(), "req-42"), "rendered")
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)

	buf.Reset()
	log.InfoContext(context.Background(), "rendered")
	assert.NotContains(t, buf.String(), "request_id")
}
