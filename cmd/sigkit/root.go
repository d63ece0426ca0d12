package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sigkit/pkg/clientip"
	"github.com/dmitrymomot/sigkit/pkg/config"
	"github.com/dmitrymomot/sigkit/pkg/environment"
	"github.com/dmitrymomot/sigkit/pkg/logger"
	"github.com/dmitrymomot/sigkit/pkg/requestid"
	"github.com/dmitrymomot/sigkit/pkg/signature"
)

const defaultEnvFile = ".env"

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"sigkit"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

type rootFlags struct {
	env      string
	logLevel string
	envFile  string
}

// app is what every subcommand needs: resolved settings, a logger and a
// generator.
type app struct {
	env       environment.Environment
	cfg       appConfig
	signature signature.Config
	log       *slog.Logger
	gen       *signature.Generator
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "sigkit",
		Short:         "Generate HTML email signatures",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.env, "env", "", "Environment: development, staging or production (overrides APP_ENV)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides LOG_LEVEL)")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "Load variables from this .env file")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newStylesCmd())
	cmd.AddCommand(newVCardCmd(flags))
	cmd.AddCommand(newServeCmd(flags))

	return cmd
}

func loadApp(cmd *cobra.Command, flags *rootFlags) (*app, error) {
	if err := loadEnvFile(flags.envFile); err != nil {
		return nil, err
	}

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return nil, fmt.Errorf("load app config: %w", err)
	}
	var sigCfg signature.Config
	if err := config.Load(&sigCfg); err != nil {
		return nil, fmt.Errorf("load signature config: %w", err)
	}

	env := environment.Parse(cfg.Env)
	if flags.env != "" {
		env = environment.Parse(flags.env)
	}
	level := cfg.LogLevel
	if flags.logLevel != "" {
		level = flags.logLevel
	}

	log := logger.New(
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithEnvironment(env, cfg.ServiceName),
		logger.WithLevel(logger.ParseLevel(level)),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	)

	genOpts := []signature.Option{signature.WithLogger(log)}
	if flags.env != "" {
		genOpts = append(genOpts, signature.WithEnvironment(env))
	}

	return &app{
		env:       env,
		cfg:       cfg,
		signature: sigCfg,
		log:       log,
		gen:       signature.NewFromConfig(sigCfg, genOpts...),
	}, nil
}

// loadEnvFile loads path, or ./.env when path is empty and the file exists.
func loadEnvFile(path string) error {
	if path != "" {
		return config.LoadEnv(path)
	}
	if _, err := os.Stat(defaultEnvFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return config.LoadEnv(defaultEnvFile)
}
