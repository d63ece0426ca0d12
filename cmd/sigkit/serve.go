package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sigkit/pkg/config"
	"github.com/dmitrymomot/sigkit/pkg/httpserver"
	"github.com/dmitrymomot/sigkit/pkg/preview"
	"github.com/dmitrymomot/sigkit/pkg/ratelimiter"
)

// serveConfig holds editor settings beyond the HTTP listener.
type serveConfig struct {
	TrustedProxyHeaders []string `env:"HTTP_TRUSTED_PROXY_HEADERS" envSeparator:","`
	RateLimitEnabled    bool     `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
}

type serveOptions struct {
	addr   string
	assets string
}

func newServeCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the signature editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, rootFlags)
			if err != nil {
				return err
			}
			return runServe(cmd, a, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (overrides HTTP_ADDR)")
	cmd.Flags().StringVar(&opts.assets, "assets", "", "Serve this directory under /assets/ for development logos")

	return cmd
}

func runServe(cmd *cobra.Command, a *app, opts *serveOptions) error {
	var httpCfg httpserver.Config
	if err := config.Load(&httpCfg); err != nil {
		return fmt.Errorf("load http config: %w", err)
	}
	if opts.addr != "" {
		httpCfg.Addr = opts.addr
	}
	var srvCfg serveConfig
	if err := config.Load(&srvCfg); err != nil {
		return fmt.Errorf("load serve config: %w", err)
	}

	handlerOpts := []preview.Option{
		preview.WithLogger(a.log),
		preview.WithEnvironment(a.env),
		preview.WithAllowedDomains(a.signature.AllowedEmailDomains...),
		preview.WithTrustedProxyHeaders(srvCfg.TrustedProxyHeaders...),
	}

	if srvCfg.RateLimitEnabled {
		var rlCfg ratelimiter.Config
		if err := config.Load(&rlCfg); err != nil {
			return fmt.Errorf("load rate limit config: %w", err)
		}
		store := ratelimiter.NewMemoryStore()
		defer store.Close()
		bucket, err := ratelimiter.NewBucket(store, rlCfg)
		if err != nil {
			return err
		}
		handlerOpts = append(handlerOpts, preview.WithRateLimit(bucket))
	}

	if opts.assets != "" {
		info, err := os.Stat(opts.assets)
		if err != nil {
			return fmt.Errorf("assets directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("assets path %s is not a directory", opts.assets)
		}
		handlerOpts = append(handlerOpts, preview.WithAssets(os.DirFS(opts.assets)))
	}

	h := preview.New(a.gen, handlerOpts...)
	srv := httpserver.New(httpCfg,
		httpserver.WithLogger(a.log),
		httpserver.WithStartHook(func(l *slog.Logger, addr string) {
			l.Info("signature editor ready", slog.String("url", "http://"+addr+"/"))
		}),
	)
	return srv.Run(cmd.Context(), h.Routes())
}
