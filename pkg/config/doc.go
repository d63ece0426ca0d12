// Package config loads typed configuration from environment variables with
// github.com/caarlos0/env and reads .env files with github.com/joho/godotenv.
//
//	type Config struct {
//		AssetBaseURL string   `env:"SIG_ASSET_BASE_URL" envDefault:"https://static.zohocdn.com/signature"`
//		Domains      []string `env:"SIG_ALLOWED_EMAIL_DOMAINS" envSeparator:","`
//	}
//
//	_ = config.LoadEnv("deploy/.env") // optional
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Tests can pass FromMap to read a fixed set of variables.
package config
