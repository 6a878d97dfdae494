// Package logger builds the service's structured slog logger.
//
// Records are written as JSON (or text for local development) and are
// enriched per call by [ContextExtractor]s, so request-scoped values such as
// the request id appear on every line logged with a request context:
//
//	log, flush := logger.New(cfg, middlewares.RequestIDExtractor())
//	defer flush(context.Background())
//	log.InfoContext(ctx, "submission received", slog.String("kind", "redemption"))
//
// When Config.Sentry.DSN is set, records are also forwarded to Sentry:
// errors become issues and warnings are kept as searchable logs. An empty DSN
// silently disables forwarding, so the same wiring runs in every environment.
package logger
