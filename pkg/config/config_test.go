package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sigkit/pkg/config"
)

type signatureEnv struct {
	Env      string        `env:"TEST_SIG_ENV" envDefault:"development"`
	Homepage string        `env:"TEST_SIG_HOMEPAGE"`
	Domains  []string      `env:"TEST_SIG_DOMAINS" envSeparator:","`
	Accent   string        `env:"TEST_SIG_ACCENT"`
	Override string        `env:"TEST_SIG_OVERRIDE_ONLY"`
	Timeout  time.Duration `env:"TEST_SIG_TIMEOUT" envDefault:"5s"`
}

type requiredEnv struct {
	Asset string `env:"ASSET_BASE_URL,required"`
}

func unsetSignatureEnv(t *testing.T) {
	t.Helper()
	unset := func() {
		for _, k := range []string{
			"TEST_SIG_ENV", "TEST_SIG_HOMEPAGE", "TEST_SIG_DOMAINS",
			"TEST_SIG_ACCENT", "TEST_SIG_OVERRIDE_ONLY",
		} {
			_ = os.Unsetenv(k)
		}
	}
	unset()
	t.Cleanup(unset)
}

func TestLoad_FromMap(t *testing.T) {
	t.Parallel()

	var cfg signatureEnv
	require.NoError(t, config.Load(&cfg, config.FromMap(map[string]string{
		"TEST_SIG_DOMAINS": "zohocorp.com,zoho.com",
		"TEST_SIG_TIMEOUT": "250ms",
	})))
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, []string{"zohocorp.com", "zoho.com"}, cfg.Domains)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
}

func TestLoad_Prefix(t *testing.T) {
	t.Parallel()

	var cfg requiredEnv
	require.NoError(t, config.Load(&cfg,
		config.WithPrefix("SIG_"),
		config.FromMap(map[string]string{"SIG_ASSET_BASE_URL": "https://cdn.example.com"}),
	))
	assert.Equal(t, "https://cdn.example.com", cfg.Asset)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	var cfg requiredEnv
	assert.ErrorIs(t, config.Load(&cfg, config.FromMap(map[string]string{})), config.ErrParsingConfig)

	var bad signatureEnv
	err := config.Load(&bad, config.FromMap(map[string]string{"TEST_SIG_TIMEOUT": "soon"}))
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	var nilCfg *requiredEnv
	assert.ErrorIs(t, config.Load(nilCfg), config.ErrNilPointer)

	assert.Panics(t, func() { config.MustLoad(&cfg, config.FromMap(map[string]string{})) })
}

func TestLoadEnv(t *testing.T) {
	unsetSignatureEnv(t)

	require.NoError(t, config.LoadEnv("testdata/.env.signature"))
	var cfg signatureEnv
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "https://www.zoho.com/one", cfg.Homepage)
	assert.Equal(t, "#E42527", cfg.Accent)
	assert.Empty(t, cfg.Override)

	require.NoError(t, config.LoadEnv("testdata/.env.signature", "testdata/.env.override"))
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "https://www.zoho.com/crm", cfg.Homepage)
	assert.Equal(t, "enabled", cfg.Override)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	t.Parallel()
	assert.ErrorIs(t, config.LoadEnv("testdata/missing.env"), config.ErrLoadingEnvFile)
}
