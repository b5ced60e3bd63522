// Package notify delivers the aggregated buyback alert. Channels share
// one contract: send a subject and a plain-text body, report failure.
package notify

import "context"

// Notifier defines the interface for a notification channel.
type Notifier interface {
	Name() string
	IsEnabled() bool
	Send(ctx context.Context, subject, body string) error
}
