// Package web is the HTTP kernel of the relay service.
//
// It wraps chi with a small Context-based handler model: handlers implement
// [Handler] and declare routes on a [Router], middleware wraps [HandlerFunc],
// and any error a handler returns is routed to the configured [ErrorHandler].
//
//	app := web.New(
//	    web.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    web.WithErrorHandler(handlers.ErrorHandler),
//	    web.WithHandlers(handlers.NewSubmissions(orchestrator)),
//	    web.WithHealthChecks(),
//	)
//	err := app.Run(":3001", web.Logger(log))
//
// Run listens for SIGINT/SIGTERM and drains in-flight requests before
// returning.
package web
