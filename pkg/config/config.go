package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option adjusts how Load reads variables.
type Option func(*env.Options)

// WithPrefix prepends prefix to every variable name, so `env:"ADDR"` reads
// PREFIX_ADDR when prefix is "PREFIX_".
func WithPrefix(prefix string) Option {
	return func(o *env.Options) { o.Prefix = prefix }
}

// FromMap reads variables from m instead of the process environment.
func FromMap(m map[string]string) Option {
	return func(o *env.Options) { o.Environment = m }
}

// Load fills v from environment variables described by `env` and
// `envDefault` struct tags. Every call parses afresh, so a later LoadEnv is
// picked up.
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}
	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}
	if err := env.ParseWithOptions(v, o); err != nil {
		return fmt.Errorf("%w: %w", ErrParsingConfig, err)
	}
	return nil
}

// MustLoad is Load for configuration a program cannot start without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(err)
	}
}

// LoadEnv copies the variables in the given .env files into the process
// environment, overriding what the shell exported. Later files win. With no
// paths it reads ./.env.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Overload(p); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrLoadingEnvFile, p, err)
		}
	}
	return nil
}
