// Package errors provides sentinel and typed errors for the buyback
// detector.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrMissingAPIKey     = errors.New("finnhub api key not configured")
	ErrMissingEmailCreds = errors.New("email credentials not configured")
	ErrNotifySend        = errors.New("notification delivery failed")
	ErrStoreCorrupt      = errors.New("notified store unreadable")
	ErrConfigInvalid     = errors.New("invalid configuration")
)

// TickerError wraps a failure isolated to one ticker's fetch or
// processing. The poll loop logs it and moves on; it never aborts a run.
type TickerError struct {
	Ticker string
	Op     string
	Err    error
}

func (e *TickerError) Error() string {
	return fmt.Sprintf("ticker %s: %s: %v", e.Ticker, e.Op, e.Err)
}

func (e *TickerError) Unwrap() error {
	return e.Err
}

// NewTickerError creates a new TickerError.
func NewTickerError(ticker, op string, err error) *TickerError {
	return &TickerError{Ticker: ticker, Op: op, Err: err}
}
