// Package httpserver runs the preview server with timeouts from the
// environment and graceful shutdown on context cancellation.
//
//	var cfg httpserver.Config
//	_ = config.Load(&cfg)
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	err := srv.Run(ctx, router)
//
// Run returns nil after a clean shutdown. Listen failures wrap ErrStart and
// failed shutdowns wrap ErrShutdown.
//
// HealthCheckHandler serves a liveness probe, or a readiness probe when
// checks are given.
package httpserver
