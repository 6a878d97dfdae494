package mailer

import "context"

// Sender delivers one message through an email provider.
// It returns the provider's message id on success.
type Sender interface {
	Send(ctx context.Context, email *Email) (messageID string, err error)
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, email *Email) (string, error)

func (f SenderFunc) Send(ctx context.Context, email *Email) (string, error) {
	return f(ctx, email)
}
