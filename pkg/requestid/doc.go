// Package requestid tags every preview-server request with a correlation id.
//
// The middleware reuses a well-formed X-Request-ID header (letters, digits,
// '-' and '_', at most 128 bytes) or generates a UUIDv4. The id is stored in
// the request context, echoed in the response header and picked up by the
// logger through LoggerExtractor.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
