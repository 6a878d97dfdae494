package mailer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogSender logs messages instead of delivering them.
// It is used when no provider credentials are configured or for dry runs.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a LogSender writing to l.
func NewLogSender(l *slog.Logger) *LogSender {
	return &LogSender{logger: l}
}

func (s *LogSender) Send(ctx context.Context, email *Email) (string, error) {
	id := "dryrun-" + uuid.NewString()
	if s.logger != nil {
		names := make([]string, len(email.Attachments))
		for i, a := range email.Attachments {
			names[i] = a.Filename
		}
		s.logger.InfoContext(ctx, "email not sent (dry run)",
			slog.String("message_id", id),
			slog.Any("to", email.To),
			slog.String("subject", email.Subject),
			slog.Int("html_bytes", len(email.HTML)),
			slog.Any("attachments", names),
		)
	}
	return id, nil
}
