// Package clientip resolves the originating client address of an HTTP
// request.
//
// A Resolver checks an explicit list of trusted proxy headers and falls back
// to RemoteAddr. The zero Resolver trusts nothing, which is right for a
// server exposed directly. Behind a proxy, list only the headers the proxy
// overwrites:
//
//	res := clientip.NewResolver(clientip.HeaderForwardedFor)
//	r.Use(clientip.Middleware(res))
//
// Handlers then read clientip.FromContext(r.Context()). LoggerExtractor adds
// the address to every log record written with the request context, and the
// rate limiter keys buckets by it.
package clientip
