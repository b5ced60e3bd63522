package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	apperrors "buyback-detector/internal/errors"
)

// DefaultSendGridURL is the production SendGrid mail-send endpoint.
const DefaultSendGridURL = "https://api.sendgrid.com/v3/mail/send"

// SendGridConfig holds SendGrid channel configuration.
type SendGridConfig struct {
	APIKey    string
	Sender    string // verified sender address
	Recipient string
	URL       string // defaults to DefaultSendGridURL
}

// SendGridNotifier sends email through the SendGrid HTTP API. The body
// is wrapped in <pre> so the plain-text rendering survives HTML mail
// clients.
type SendGridNotifier struct {
	cfg    SendGridConfig
	client *http.Client
}

// NewSendGridNotifier creates a SendGrid channel. Missing credentials do
// not fail construction; they fail the Send, deliberately, so a run with
// nothing to report never trips over notification config.
func NewSendGridNotifier(cfg SendGridConfig) *SendGridNotifier {
	if cfg.URL == "" {
		cfg.URL = DefaultSendGridURL
	}
	return &SendGridNotifier{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Name returns the name of the notifier.
func (s *SendGridNotifier) Name() string {
	return "sendgrid"
}

// IsEnabled reports whether the channel has full credentials.
func (s *SendGridNotifier) IsEnabled() bool {
	return s.cfg.APIKey != "" && s.cfg.Sender != "" && s.cfg.Recipient != ""
}

// Send delivers one email. Any non-2xx response is a delivery failure.
func (s *SendGridNotifier) Send(ctx context.Context, subject, body string) error {
	if !s.IsEnabled() {
		return fmt.Errorf("%w: sendgrid needs api key, sender and recipient", apperrors.ErrMissingEmailCreds)
	}

	payload := map[string]any{
		"personalizations": []map[string]any{
			{"to": []map[string]string{{"email": s.cfg.Recipient}}},
		},
		"from":    map[string]string{"email": s.cfg.Sender},
		"subject": subject,
		"content": []map[string]string{
			{"type": "text/html", "value": "<pre>" + html.EscapeString(body) + "</pre>"},
		},
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshalling sendgrid payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("creating sendgrid request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending via sendgrid: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, detail)
	}

	return nil
}
