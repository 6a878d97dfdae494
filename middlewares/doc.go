// Package middlewares provides the HTTP middleware of the relay service.
//
// # Request ID
//
// RequestID reuses an upstream X-Request-ID (or X-Correlation-ID) header or
// generates a ULID, stores it in the request context and echoes it back.
// Pair it with RequestIDExtractor so every log record carries request_id:
//
//	log, flush := logger.New(cfg, middlewares.RequestIDExtractor())
//
// # Recover
//
// Recover turns a panic into a *PanicError for the app's ErrorHandler.
//
// # Request logging
//
// RequestLogger writes one record per request with method, path, status,
// response size and duration.
//
// # CORS
//
// CORS answers preflight requests and sets Access-Control-* headers for the
// configured origins:
//
//	middlewares.CORS(middlewares.WithAllowOrigins("https://www.pacassetmanagement.com"))
//
// # Limits
//
// BodyLimit caps request bodies, Timeout bounds handler run time and returns a
// *TimeoutError, RateLimit throttles each client with a token bucket, and
// SecureHeaders sets conservative response headers.
//
// Register them globally in this order:
//
//	web.WithMiddleware(
//	    middlewares.RequestID(),
//	    middlewares.RequestLogger(),
//	    middlewares.Recover(),
//	    middlewares.SecureHeaders(),
//	    middlewares.CORS(),
//	    middlewares.BodyLimit(50<<20),
//	    middlewares.Timeout(60*time.Second),
//	)
package middlewares
