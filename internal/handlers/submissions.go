package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/pacam/formrelay/internal/submission"
	"github.com/pacam/formrelay/internal/web"
	"github.com/pacam/formrelay/pkg/health"
)

const validationFailed = "Form validation failed"

// Submissions serves the submit, validate and health routes of every kind.
type Submissions struct {
	orchestrator *submission.Orchestrator
	now          func() time.Time
	kinds        []submission.Kind
	submitMW     []web.Middleware
}

// SubmissionsOption configures Submissions.
type SubmissionsOption func(*Submissions)

// WithClock replaces time.Now in health responses.
func WithClock(now func() time.Time) SubmissionsOption {
	return func(s *Submissions) {
		if now != nil {
			s.now = now
		}
	}
}

// WithKinds limits the routes to the given kinds.
func WithKinds(kinds ...submission.Kind) SubmissionsOption {
	return func(s *Submissions) {
		s.kinds = kinds
	}
}

// WithSubmitMiddleware applies mw to the submit routes only.
//
//	handlers.WithSubmitMiddleware(middlewares.RateLimit(1, 5))
func WithSubmitMiddleware(mw ...web.Middleware) SubmissionsOption {
	return func(s *Submissions) {
		s.submitMW = append(s.submitMW, mw...)
	}
}

// NewSubmissions creates the handler.
func NewSubmissions(o *submission.Orchestrator, opts ...SubmissionsOption) *Submissions {
	s := &Submissions{
		orchestrator: o,
		now:          time.Now,
		kinds:        submission.Kinds(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Routes implements web.Handler.
func (s *Submissions) Routes(r web.Router) {
	for _, kind := range s.kinds {
		label := kind.String()
		if entry, err := s.orchestrator.Catalog().Entry(kind); err == nil {
			label = entry.Label
		}

		r.Route("/"+kind.String(), func(r web.Router) {
			r.POST("/submit", s.submit(kind, label), s.submitMW...)
			r.POST("/validate", s.validate(kind, label))
			r.GET("/health", web.HTTPHandler(health.ServiceHandler(kind.String(), s.now)))
		})
	}
}

type submitResponse struct {
	Message     string `json:"message"`
	ReferenceID string `json:"referenceId"`
	Success     bool   `json:"success"`
}

func (s *Submissions) submit(kind submission.Kind, label string) web.HandlerFunc {
	return func(c web.Context) error {
		var env submission.Envelope
		if err := c.BindJSON(&env); err != nil {
			return err
		}

		res, err := s.orchestrator.Submit(c.Context(), kind, &env)
		if err != nil {
			return submissionError(label, err)
		}

		return c.JSON(http.StatusCreated, submitResponse{
			Success:     true,
			Message:     res.Message,
			ReferenceID: res.ReferenceID,
		})
	}
}

type validateRequest struct {
	FormData json.RawMessage `json:"formData"`
}

func (s *Submissions) validate(kind submission.Kind, label string) web.HandlerFunc {
	return func(c web.Context) error {
		var req validateRequest
		if err := c.BindJSON(&req); err != nil {
			return err
		}

		res, err := s.orchestrator.ValidateForm(kind, req.FormData)
		if err != nil {
			return submissionError(label, err)
		}
		return c.JSON(http.StatusOK, res)
	}
}

// submissionError maps pipeline errors to HTTP errors. Only structural and
// validation messages reach the caller; anything else is logged and replaced
// by a generic message.
func submissionError(label string, err error) error {
	var se *submission.StructuralError
	if errors.As(err, &se) {
		return web.ErrBadRequest(se.Message, web.WithError(err))
	}
	if ve, ok := submission.AsValidation(err); ok {
		return web.ErrBadRequest(validationFailed, web.WithErrors(ve.Errors...), web.WithError(err))
	}
	return web.ErrInternal("Internal server error while processing "+label, web.WithError(err))
}
