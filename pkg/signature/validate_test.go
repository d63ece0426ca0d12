package signature_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sigkit/pkg/signature"
	"github.com/dmitrymomot/sigkit/pkg/validator"
)

func TestValidateRecord(t *testing.T) {
	t.Parallel()

	domains := []string{signature.DefaultEmailDomain}

	t.Run("valid record", func(t *testing.T) {
		t.Parallel()
		cfg := signature.RenderConfig{
			Data:        fullRecord(),
			Style:       signature.StyleCreative,
			AccentColor: "#E42527",
		}
		assert.NoError(t, signature.ValidateRecord(cfg, domains))
	})

	t.Run("only name is required", func(t *testing.T) {
		t.Parallel()
		cfg := signature.RenderConfig{Data: signature.ContactRecord{Name: "Jasmine"}}
		assert.NoError(t, signature.ValidateRecord(cfg, domains))
	})

	tests := []struct {
		name   string
		mutate func(*signature.RenderConfig)
		field  string
	}{
		{"missing name", func(c *signature.RenderConfig) { c.Data.Name = " " }, "name"},
		{"long name", func(c *signature.RenderConfig) { c.Data.Name = strings.Repeat("a", 101) }, "name"},
		{"malformed email", func(c *signature.RenderConfig) { c.Data.Email = "jasmine" }, "email"},
		{"foreign domain", func(c *signature.RenderConfig) { c.Data.Email = "jasmine@gmail.com" }, "email"},
		{"short phone", func(c *signature.RenderConfig) { c.Data.Phone = "12345" }, "phone"},
		{"dangerous bookings", func(c *signature.RenderConfig) { c.Data.Bookings = "javascript:alert(1)" }, "bookings"},
		{"ftp website", func(c *signature.RenderConfig) { c.Data.Website = "ftp://files.zoho.com" }, "website"},
		{"bad accent", func(c *signature.RenderConfig) { c.AccentColor = "red" }, "accent_color"},
		{"unknown style", func(c *signature.RenderConfig) { c.Style = "fancy" }, "style"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := signature.RenderConfig{Data: fullRecord(), Style: signature.StyleClassic, AccentColor: "#fff"}
			tt.mutate(&cfg)

			err := signature.ValidateRecord(cfg, domains)
			require.Error(t, err)
			errs := validator.ExtractValidationErrors(err)
			assert.True(t, errs.Has(tt.field), "fields: %v", errs.Fields())
		})
	}

	t.Run("empty allow list accepts any domain", func(t *testing.T) {
		t.Parallel()
		cfg := signature.RenderConfig{Data: signature.ContactRecord{Name: "A", Email: "a@example.org"}}
		assert.NoError(t, signature.ValidateRecord(cfg, nil))
		assert.Error(t, signature.ValidateRecord(cfg, domains))
	})
}
