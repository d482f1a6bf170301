// Package middlewares provides net/http middleware used by the consumer's
// route group and reusable by the hosting application: session exposure,
// request IDs, and panic recovery.
//
// All middleware follows the standard func(http.Handler) http.Handler
// shape, so it composes with chi and plain http.ServeMux alike.
package middlewares
