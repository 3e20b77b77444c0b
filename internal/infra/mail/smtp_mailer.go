// Package mail delivers transactional email over SMTP.
package mail

import (
	"context"
	"log/slog"

	"todoez/config"
	deliverycontext "todoez/internal/delivery/context"
	"todoez/internal/domain/service"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// SMTPMailer sends messages through a single SMTP relay.
type SMTPMailer struct {
	dialer     *gomail.Dialer
	from       string
	senderName string
	logger     *slog.Logger
}

// NewMailer returns an SMTP mailer, or a log-only mailer when no relay host
// is configured.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	if cfg.Mail == nil || cfg.Mail.Host == "" {
		logger.Warn("Mail host not configured, emails will only be logged")

		return &LogMailer{logger: logger}
	}

	return NewSMTPMailer(cfg.Mail, logger)
}

// NewSMTPMailer creates a mailer for the given relay.
func NewSMTPMailer(cfg *config.MailConfig, logger *slog.Logger) *SMTPMailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)

	return &SMTPMailer{
		dialer:     dialer,
		from:       cfg.From,
		senderName: cfg.SenderName,
		logger:     logger,
	}
}

// Send implements service.Mailer.
func (m *SMTPMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	message := gomail.NewMessage()
	message.SetAddressHeader("From", m.from, m.senderName)
	message.SetHeader("To", msg.To)
	message.SetHeader("Subject", msg.Subject)
	switch {
	case msg.TextBody != "" && msg.HTMLBody != "":
		message.SetBody("text/plain", msg.TextBody)
		message.AddAlternative("text/html", msg.HTMLBody)
	case msg.HTMLBody != "":
		message.SetBody("text/html", msg.HTMLBody)
	default:
		message.SetBody("text/plain", msg.TextBody)
	}

	logger := deliverycontext.LoggerFrom(ctx, m.logger)
	if err := m.dialer.DialAndSend(message); err != nil {
		logger.Error("Failed to send email",
			slog.String("to", msg.To),
			slog.String("subject", msg.Subject),
			slog.Any("error", err))

		return errors.Wrap(err, "send mail")
	}

	logger.Info("Email sent", slog.String("to", msg.To), slog.String("subject", msg.Subject))

	return nil
}

// LogMailer writes messages to the log instead of sending them.
type LogMailer struct {
	logger *slog.Logger
}

// Send implements service.Mailer.
func (m *LogMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	deliverycontext.LoggerFrom(ctx, m.logger).Info("Email not sent, no relay configured",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.TextBody))

	return nil
}
