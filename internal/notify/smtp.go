package notify

import (
	"context"
	"fmt"
	"time"

	gomail "gopkg.in/mail.v2"

	apperrors "buyback-detector/internal/errors"
)

// SMTPConfig holds SMTP channel configuration.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Sender    string
	Recipient string
}

// SMTPNotifier sends email directly over SMTP, as an alternative to the
// SendGrid API for setups with their own mail server.
type SMTPNotifier struct {
	cfg SMTPConfig
}

// NewSMTPNotifier creates an SMTP channel.
func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.Sender == "" {
		cfg.Sender = cfg.Username
	}
	return &SMTPNotifier{cfg: cfg}
}

// Name returns the name of the notifier.
func (s *SMTPNotifier) Name() string {
	return "smtp"
}

// IsEnabled reports whether the channel is configured.
func (s *SMTPNotifier) IsEnabled() bool {
	return s.cfg.Host != "" && s.cfg.Sender != "" && s.cfg.Recipient != ""
}

// Send delivers one plain-text email.
func (s *SMTPNotifier) Send(ctx context.Context, subject, body string) error {
	if !s.IsEnabled() {
		return fmt.Errorf("%w: smtp needs host, sender and recipient", apperrors.ErrMissingEmailCreds)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.Sender)
	m.SetHeader("To", s.cfg.Recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	dialer := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	dialer.Timeout = 10 * time.Second

	done := make(chan error, 1)
	go func() { done <- dialer.DialAndSend(m) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("sending via smtp: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
