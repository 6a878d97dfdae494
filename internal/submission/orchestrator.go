package submission

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pacam/formrelay/internal/notification"
	"github.com/pacam/formrelay/pkg/logger"
	"github.com/pacam/formrelay/pkg/mailer"
)

// Dispatcher makes one delivery attempt and reports the outcome without failing.
type Dispatcher interface {
	Dispatch(ctx context.Context, email *mailer.Email) mailer.Outcome
}

// Renderer turns a document into a message.
type Renderer interface {
	Render(doc *notification.Document) (*notification.Message, error)
}

// Delivery is the outcome of one dispatch made for a submission.
type Delivery struct {
	Role      Role           `json:"role"`
	Recipient string         `json:"recipient"`
	Outcome   mailer.Outcome `json:"outcome"`
}

// Result describes a completed submission.
type Result struct {
	ReferenceID string     `json:"referenceId"`
	Message     string     `json:"message"`
	Deliveries  []Delivery `json:"-"`
}

// Orchestrator runs a submission through validation, composition and
// dispatch. It holds no per-submission state and is safe for concurrent use.
type Orchestrator struct {
	catalog      *Catalog
	composer     *Composer
	renderer     Renderer
	dispatcher   Dispatcher
	logger       *slog.Logger
	now          func() time.Time
	adminDomains []string
	uniqueRefs   bool
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger for submission events.
func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		if now != nil {
			o.now = now
		}
	}
}

// WithUniqueReferences appends a random suffix to every reference id.
func WithUniqueReferences(enabled bool) Option {
	return func(o *Orchestrator) {
		o.uniqueRefs = enabled
	}
}

// WithAdminDomains restricts admin recipients to the given domains.
// An empty list allows any domain.
func WithAdminDomains(domains ...string) Option {
	return func(o *Orchestrator) {
		o.adminDomains = o.adminDomains[:0]
		for _, d := range domains {
			if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
				o.adminDomains = append(o.adminDomains, strings.TrimPrefix(d, "@"))
			}
		}
	}
}

// NewOrchestrator wires the pipeline. The catalog, renderer and dispatcher
// are shared read-only by all submissions.
func NewOrchestrator(catalog *Catalog, renderer Renderer, dispatcher Dispatcher, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		catalog:    catalog,
		composer:   NewComposer(catalog),
		renderer:   renderer,
		dispatcher: dispatcher,
		logger:     logger.NewNope(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Catalog returns the copy catalog the orchestrator composes from.
func (o *Orchestrator) Catalog() *Catalog {
	return o.catalog
}

// Submit processes one envelope of kind.
//
// Structural and validation failures return before anything is sent. The
// admin notice is sent first; client confirmations are attempted only once it
// is delivered, concurrently and independently of each other. The first
// failed dispatch, in recipient order, is returned as a *DispatchError.
func (o *Orchestrator) Submit(ctx context.Context, kind Kind, env *Envelope) (*Result, error) {
	entry, err := o.catalog.Entry(kind)
	if err != nil {
		return nil, err
	}

	sub, err := env.Decode(kind)
	if err != nil {
		o.logger.WarnContext(ctx, "submission rejected",
			slog.String("kind", kind.String()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	if err := o.checkAdminDomain(kind, sub.AdminRecipient); err != nil {
		return nil, err
	}

	if res := Validate(sub.Form); !res.Valid {
		o.logger.InfoContext(ctx, "submission failed validation",
			slog.String("kind", kind.String()),
			slog.Int("errors", len(res.Errors)),
		)
		return nil, res.Err()
	}

	at := o.now()
	st := Stamp{At: at, ReferenceID: newReference(entry.Tag, at, o.uniqueRefs)}
	log := o.logger.With(
		slog.String("kind", kind.String()),
		slog.String("reference_id", st.ReferenceID),
	)
	log.InfoContext(ctx, "submission received", slog.Int("attachments", len(sub.Attachments)))

	adminDoc, err := o.composer.ComposeAdmin(sub, st)
	if err != nil {
		return nil, fmt.Errorf("compose admin notice: %w", err)
	}
	admin, err := o.deliver(ctx, log, kind, Recipient{Role: RoleAdmin, Email: sub.AdminRecipient}, adminDoc)
	if err != nil {
		return nil, err
	}

	if !admin.Outcome.Delivered {
		return nil, &DispatchError{Role: RoleAdmin, Recipient: admin.Recipient, Reason: admin.Outcome.FailureReason}
	}
	result := &Result{
		ReferenceID: st.ReferenceID,
		Message:     entry.Success,
		Deliveries:  []Delivery{admin},
	}

	targets := clientTargets(sub.Form)
	deliveries := make([]Delivery, len(targets))
	errs := make([]error, len(targets))

	var g errgroup.Group
	for i, to := range targets {
		g.Go(func() error {
			doc, err := o.composer.ComposeConfirmation(sub, to, st)
			if err != nil {
				errs[i] = fmt.Errorf("compose %s confirmation: %w", to.Role, err)
				return nil
			}
			deliveries[i], errs[i] = o.deliver(ctx, log, kind, to, doc)
			return nil
		})
	}
	_ = g.Wait()

	for i, d := range deliveries {
		if errs[i] != nil {
			return nil, errs[i]
		}
		result.Deliveries = append(result.Deliveries, d)
	}
	for _, d := range deliveries {
		if !d.Outcome.Delivered {
			return nil, &DispatchError{Role: d.Role, Recipient: d.Recipient, Reason: d.Outcome.FailureReason}
		}
	}

	log.InfoContext(ctx, "submission completed", slog.Int("dispatches", len(result.Deliveries)))
	return result, nil
}

// ValidateForm runs field validation on raw form data only. Nothing is composed or sent.
func (o *Orchestrator) ValidateForm(kind Kind, raw []byte) (ValidationResult, error) {
	if _, err := o.catalog.Entry(kind); err != nil {
		return ValidationResult{}, err
	}
	form, err := DecodeForm(kind, raw)
	if err != nil {
		return ValidationResult{}, err
	}
	return Validate(form), nil
}

// deliver renders doc and makes one dispatch attempt. Only render failures
// are returned; transport failures are reported in the Delivery.
func (o *Orchestrator) deliver(ctx context.Context, log *slog.Logger, kind Kind, to Recipient, doc *notification.Document) (Delivery, error) {
	msg, err := o.renderer.Render(doc)
	if err != nil {
		return Delivery{}, fmt.Errorf("render %s message: %w", to.Role, err)
	}

	email := doc.Email(msg)
	email.Tags = mailer.Tags{"kind": kind.String(), "role": string(to.Role)}

	out := o.dispatcher.Dispatch(ctx, email)
	if out.Delivered {
		log.InfoContext(ctx, "notification delivered",
			slog.String("role", string(to.Role)),
			slog.String("message_id", out.MessageID),
		)
	} else {
		log.ErrorContext(ctx, "notification not delivered",
			slog.String("role", string(to.Role)),
			slog.String("reason", out.FailureReason),
		)
	}
	return Delivery{Role: to.Role, Recipient: to.Email, Outcome: out}, nil
}

func (o *Orchestrator) checkAdminDomain(kind Kind, addr string) error {
	if len(o.adminDomains) == 0 {
		return nil
	}
	_, domain, _ := strings.Cut(strings.ToLower(addr), "@")
	for _, d := range o.adminDomains {
		if domain == d {
			return nil
		}
	}
	return &StructuralError{Message: adminKey(kind) + " is not an allowed recipient"}
}

// clientTargets drops confirmation recipients without an address.
func clientTargets(f Form) []Recipient {
	all := f.confirmations()
	out := make([]Recipient, 0, len(all))
	for _, r := range all {
		if r.Email = strings.TrimSpace(r.Email); r.Email != "" {
			out = append(out, r)
		}
	}
	return out
}
