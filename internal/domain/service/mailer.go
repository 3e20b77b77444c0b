package service

import "context"

// MailMessage is a single outgoing email.
type MailMessage struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// Mailer delivers email through an external transport.
type Mailer interface {
	// Send delivers the message or returns the transport error.
	Send(ctx context.Context, msg *MailMessage) error
}
