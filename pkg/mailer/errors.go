package mailer

import "errors"

var (
	ErrNoRecipient      = errors.New("email must have at least one recipient")
	ErrInvalidRecipient = errors.New("email recipient is not a valid address")
	ErrNoSubject        = errors.New("email must have a subject")
	ErrNoContent        = errors.New("email must have HTML content")
	ErrSendFailed       = errors.New("failed to send email")
	ErrNotConfigured    = errors.New("mail transport is not configured")
)
