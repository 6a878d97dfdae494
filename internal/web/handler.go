package web

import "net/http"

// Handler declares routes on a router.
//
//	type Submissions struct{ orchestrator *submission.Orchestrator }
//
//	func (h *Submissions) Routes(r web.Router) {
//	    r.POST("/redemption/submit", h.submit)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// Returning a non-nil error hands control to the app's ErrorHandler.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting behaviour.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler renders errors returned from handlers.
type ErrorHandler func(Context, error) error

// HTTPHandler adapts a plain http.Handler, such as a health endpoint, to a HandlerFunc.
func HTTPHandler(h http.Handler) HandlerFunc {
	return func(c Context) error {
		h.ServeHTTP(c.Response(), c.Request())
		return nil
	}
}
