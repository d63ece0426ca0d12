// Package logger builds *slog.Logger values for sigkit commands and the
// preview server.
//
// New takes functional options. WithEnvironment picks the per-environment
// defaults (text at debug level in development, JSON at info elsewhere) and
// WithContextExtractors adds request-scoped attributes such as the request id
// and client IP to every record logged with a request context:
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "sigkit"),
//		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "signature rendered", logger.Style("classic"))
//
// The attribute helpers keep key names consistent across packages.
package logger
