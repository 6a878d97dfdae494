package mailer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"time"

	"github.com/pacam/formrelay/pkg/logger"
	"github.com/pacam/formrelay/pkg/validator"
)

// Outcome is the result of one dispatch attempt.
type Outcome struct {
	MessageID     string `json:"messageId,omitempty"`
	FailureReason string `json:"failureReason,omitempty"`
	Delivered     bool   `json:"delivered"`
}

// Err returns the failure as an error, or nil when delivered.
func (o Outcome) Err() error {
	if o.Delivered {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrSendFailed, o.FailureReason)
}

// Gateway wraps a Sender with validation, logging and panic containment.
// It is safe for concurrent use and is meant to be built once at startup.
type Gateway struct {
	sender  Sender
	logger  *slog.Logger
	replyTo string
	tags    Tags
	timeout time.Duration
}

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway)

// WithLogger sets the logger used for dispatch outcomes.
func WithLogger(l *slog.Logger) GatewayOption {
	return func(g *Gateway) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithReplyTo sets a Reply-To for messages that carry none.
func WithReplyTo(addr string) GatewayOption {
	return func(g *Gateway) {
		g.replyTo = addr
	}
}

// WithDefaultTags adds tags to every message, without overriding message tags.
func WithDefaultTags(tags Tags) GatewayOption {
	return func(g *Gateway) {
		g.tags = tags
	}
}

// WithSendTimeout bounds each provider call. Zero leaves the caller's context alone.
func WithSendTimeout(d time.Duration) GatewayOption {
	return func(g *Gateway) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// NewGateway creates a Gateway around sender.
func NewGateway(sender Sender, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		sender: sender,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Dispatch makes exactly one delivery attempt for email.
// Failures, including invalid messages and provider panics, are reported in
// the Outcome and never returned or propagated.
func (g *Gateway) Dispatch(ctx context.Context, email *Email) (out Outcome) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			out = Outcome{FailureReason: fmt.Sprintf("mail transport panic: %v", r)}
		}
		g.log(ctx, email, out, time.Since(start))
	}()

	if err := g.check(email); err != nil {
		return Outcome{FailureReason: err.Error()}
	}

	msg := g.prepare(email)

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	id, err := g.sender.Send(ctx, msg)
	if err != nil {
		return Outcome{FailureReason: err.Error()}
	}
	return Outcome{Delivered: true, MessageID: id}
}

// Healthcheck reports whether the underlying sender is usable.
// Senders may implement Healthcheck(ctx) error themselves.
func (g *Gateway) Healthcheck(ctx context.Context) error {
	if g.sender == nil {
		return ErrNotConfigured
	}
	if hc, ok := g.sender.(interface{ Healthcheck(context.Context) error }); ok {
		return hc.Healthcheck(ctx)
	}
	return nil
}

func (g *Gateway) check(email *Email) error {
	if g.sender == nil {
		return ErrNotConfigured
	}
	if email == nil || len(email.To) == 0 {
		return ErrNoRecipient
	}
	var errs []error
	for _, to := range email.To {
		addr, err := mail.ParseAddress(to)
		if err != nil || !validator.IsEmail(addr.Address) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidRecipient, to))
		}
	}
	if email.Subject == "" {
		errs = append(errs, ErrNoSubject)
	}
	if email.HTML == "" {
		errs = append(errs, ErrNoContent)
	}
	return errors.Join(errs...)
}

// prepare returns a shallow copy with gateway defaults applied.
func (g *Gateway) prepare(email *Email) *Email {
	msg := *email
	if msg.ReplyTo == "" {
		msg.ReplyTo = g.replyTo
	}
	if len(g.tags) > 0 {
		tags := make(Tags, len(g.tags)+len(msg.Tags))
		for k, v := range g.tags {
			tags[k] = v
		}
		for k, v := range msg.Tags {
			tags[k] = v
		}
		msg.Tags = tags
	}
	return &msg
}

func (g *Gateway) log(ctx context.Context, email *Email, out Outcome, took time.Duration) {
	attrs := []any{
		slog.Bool("delivered", out.Delivered),
		slog.Duration("took", took),
	}
	if email != nil {
		attrs = append(attrs,
			slog.Any("to", email.To),
			slog.String("subject", email.Subject),
			slog.Int("attachments", len(email.Attachments)),
		)
	}
	if out.Delivered {
		g.logger.InfoContext(ctx, "email dispatched", append(attrs, slog.String("message_id", out.MessageID))...)
		return
	}
	g.logger.ErrorContext(ctx, "email dispatch failed", append(attrs, slog.String("reason", out.FailureReason))...)
}
