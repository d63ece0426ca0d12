package environment_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sigkit/pkg/environment"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  environment.Environment
	}{
		{name: "development environment", env: environment.Development},
		{name: "production environment", env: environment.Production},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got environment.Environment
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = environment.FromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			environment.Middleware(tt.env)(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.env, got)
		})
	}
}
