// Package environment models the deployment environment (development,
// staging, production) as an explicit value.
//
// The signature generator never reads the environment from process state:
// callers parse it once with Parse and inject it.
//
// # Usage
//
//	env := environment.Parse(os.Getenv("SIG_ENV")) // "prod" -> Production
//	if env.IsProduction() {
//	    // absolute CDN asset URLs
//	}
//
// The preview server attaches it to every request so JSON error responses
// can hide server error details in production:
//
//	r := chi.NewRouter()
//	r.Use(environment.Middleware(env))
package environment
