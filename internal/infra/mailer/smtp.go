package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"meetgrid/internal/pkg/config"
	"meetgrid/internal/pkg/errs"
	"meetgrid/internal/usecase/shared"
)

// SMTPNotifier delivers notifications as plain-text mail.
type SMTPNotifier struct {
	addr string
	auth smtp.Auth
	from string
}

func NewSMTPNotifier(cfg config.SMTPConfig) *SMTPNotifier {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &SMTPNotifier{
		addr: fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		auth: auth,
		from: cfg.From,
	}
}

func (n *SMTPNotifier) Send(_ context.Context, to, subject, body string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", n.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(n.addr, n.auth, n.from, []string{to}, []byte(msg.String())); err != nil {
		return errs.Wrapf(err, "failed to send mail to %s", to)
	}
	return nil
}

// LogNotifier is the local-development stand-in used when no SMTP host is
// configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Send(_ context.Context, to, subject, body string) error {
	n.logger.Info("notification",
		"to", to,
		"subject", subject,
		"body", body,
	)
	return nil
}

// NewNotifier selects the SMTP transport when a host is configured and the
// log transport otherwise.
func NewNotifier(cfg config.SMTPConfig, logger *slog.Logger) shared.Notifier {
	if cfg.Host == "" {
		return NewLogNotifier(logger)
	}
	return NewSMTPNotifier(cfg)
}
