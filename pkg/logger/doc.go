// Package logger provides slog factories used across the library: a JSON
// stdout logger, an optional Sentry-backed dual logger, and a no-op logger
// for when logging is not configured.
//
// Context extractors add request-scoped attributes (such as request IDs)
// to every record:
//
//	log := logger.New(middlewares.RequestIDExtractor())
//	log.InfoContext(r.Context(), "login committed")
package logger
