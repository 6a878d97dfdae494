package middlewares_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pacam/formrelay/internal/web"
)

type routes func(r web.Router)

func (f routes) Routes(r web.Router) { f(r) }

type served struct {
	rec *httptest.ResponseRecorder
	err error
}

// serve runs req through an app with mw as global middleware and h on "/".
// The error handler records the error and answers with its HTTP status.
func serve(t *testing.T, req *http.Request, h web.HandlerFunc, mw ...web.Middleware) served {
	t.Helper()

	var got error
	app := web.New(
		web.WithMiddleware(mw...),
		web.WithErrorHandler(func(c web.Context, err error) error {
			got = err
			code := http.StatusInternalServerError
			if he := web.AsHTTPError(err); he != nil {
				code = he.Code
			}
			return c.JSON(code, map[string]string{"message": err.Error()})
		}),
		web.WithHandlers(routes(func(r web.Router) {
			r.GET("/", h)
			r.POST("/", h)
		})),
	)

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return served{rec: rec, err: got}
}

func ok(c web.Context) error {
	return text(c, http.StatusOK, "ok")
}

// text writes a plain body so assertions can compare it verbatim.
func text(c web.Context, code int, s string) error {
	c.Response().WriteHeader(code)
	_, err := io.WriteString(c.Response(), s)
	return err
}
