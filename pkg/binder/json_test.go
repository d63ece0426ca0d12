package binder_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sigkit/pkg/binder"
)

func TestJSON_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        string
		want        error
	}{
		{"unknown field", "application/json", `{"name":"J","fax":"1"}`, binder.ErrInvalidJSON},
		{"trailing data", "application/json", `{"name":"J"}{"name":"K"}`, binder.ErrInvalidJSON},
		{"empty body", "application/json", ``, binder.ErrInvalidJSON},
		{"wrong type", "application/json", `{"size":"large"}`, binder.ErrInvalidJSON},
		{"too large", "application/json", `{"name":"` + strings.Repeat("a", binder.DefaultMaxJSONSize) + `"}`, binder.ErrInvalidJSON},
		{"form media type", "application/x-www-form-urlencoded", `name=J`, binder.ErrUnsupportedMediaType},
		{"missing content type", "", `{"name":"J"}`, binder.ErrMissingContentType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodPost, "/export", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			var got signatureForm
			err := binder.JSON()(req, &got)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestJSON_KeepsTabsAndNewlines(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Line one\nLine\ttwo"}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	var got signatureForm
	assert.NoError(t, binder.JSON()(req, &got))
	assert.Equal(t, "Line one\nLine\ttwo", got.Name)
}
