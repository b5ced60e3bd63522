// Package poll runs one detection pass: fetch corporate actions per
// ticker, classify buybacks, deduplicate against the notified set, send
// one aggregated alert and persist the new state.
package poll

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"buyback-detector/internal/buyback"
	apperrors "buyback-detector/internal/errors"
	"buyback-detector/internal/logging"
	"buyback-detector/internal/models"
	"buyback-detector/internal/store"
	"buyback-detector/internal/tickers"
)

// Fetcher is the data-fetch capability the loop depends on. The profile
// fetch never fails; absence degrades the percentage computation only.
type Fetcher interface {
	CorporateActions(ctx context.Context, symbol, from, to string) ([]models.CorporateAction, error)
	CompanyProfile(ctx context.Context, symbol string) models.CompanyProfile
}

// Sender is the notification capability.
type Sender interface {
	Send(ctx context.Context, subject, body string) error
}

// Journal records detections for later inspection. It may be nil;
// journal errors are logged and never fail a run.
type Journal interface {
	RecordDetection(ctx context.Context, ev models.BuybackEvent, suppressed bool) error
}

// Options configures one poll loop.
type Options struct {
	APIKey       string
	LookbackDays int
	TickersFile  string
	NotifiedFile string
}

// Loop orchestrates a single pass. One ticker at a time, one external
// call at a time; the only shared state is owned by the pass itself.
type Loop struct {
	opts    Options
	fetcher Fetcher
	sender  Sender
	journal Journal
	logger  zerolog.Logger
	now     func() time.Time
}

// TickerResult is the outcome for one ticker: either its new events or
// the error that made it drop out of this pass.
type TickerResult struct {
	Ticker string
	Events []models.BuybackEvent
	Err    error
}

// Summary describes a completed pass.
type Summary struct {
	RunDate        string
	TickersChecked int
	TickersFailed  int
	NewEvents      int
	Notified       bool
}

// New creates a Loop. journal may be nil.
func New(opts Options, fetcher Fetcher, sender Sender, journal Journal, logger zerolog.Logger) *Loop {
	return &Loop{
		opts:    opts,
		fetcher: fetcher,
		sender:  sender,
		journal: journal,
		logger:  logger,
		now:     time.Now,
	}
}

// WithClock overrides the loop's clock, for tests.
func (l *Loop) WithClock(now func() time.Time) *Loop {
	l.now = now
	return l
}

// Run executes one pass. Per-ticker failures are contained; errors that
// would corrupt dedup guarantees (unreadable notified set, failed send,
// failed save) abort the pass.
func (l *Loop) Run(ctx context.Context) (Summary, error) {
	if l.opts.APIKey == "" {
		return Summary{}, apperrors.ErrMissingAPIKey
	}

	toDate := l.now().UTC()
	fromDate := toDate.AddDate(0, 0, -l.opts.LookbackDays)
	from, to := fromDate.Format("2006-01-02"), toDate.Format("2006-01-02")
	summary := Summary{RunDate: to}

	list, err := tickers.Load(l.opts.TickersFile)
	if err != nil {
		return summary, err
	}
	if len(list) == 0 {
		l.logger.Info().Str("file", l.opts.TickersFile).Msg("no tickers configured, nothing to do")
		return summary, nil
	}

	notified, err := store.OpenNotified(l.opts.NotifiedFile)
	if err != nil {
		return summary, err
	}

	l.logger.Info().
		Int("tickers", len(list)).
		Str("from", from).
		Str("to", to).
		Msg("starting buyback check")

	var events []models.BuybackEvent
	for _, ticker := range list {
		res := l.checkTicker(ctx, ticker, from, to, notified)
		summary.TickersChecked++
		if res.Err != nil {
			summary.TickersFailed++
			l.logger.Error().Err(res.Err).Str("ticker", res.Ticker).Msg("ticker check failed, continuing")
			continue
		}
		events = append(events, res.Events...)
	}

	summary.NewEvents = len(events)
	if len(events) == 0 {
		l.logger.Info().
			Int("tickers", summary.TickersChecked).
			Int("failed", summary.TickersFailed).
			Msg("run complete: no new buybacks detected")
		return summary, nil
	}

	subject := buyback.RenderSubject(len(events), to)
	body := buyback.RenderBody(events)

	if err := l.sender.Send(ctx, subject, body); err != nil {
		// No state is persisted on a failed send: every event stays
		// eligible for re-notification on the next run.
		return summary, fmt.Errorf("%w: %v", apperrors.ErrNotifySend, err)
	}
	summary.Notified = true

	sentAt := l.now().UTC()
	for _, ev := range events {
		notified.Record(ev.ID, sentAt)
	}
	if err := notified.Save(); err != nil {
		return summary, fmt.Errorf("saving notified set: %w", err)
	}

	l.logger.Info().
		Int("tickers", summary.TickersChecked).
		Int("failed", summary.TickersFailed).
		Int("events", summary.NewEvents).
		Msg("run complete: events notified and recorded")

	return summary, nil
}

func (l *Loop) checkTicker(ctx context.Context, ticker, from, to string, notified *store.NotifiedStore) TickerResult {
	logger := logging.WithTicker(l.logger, ticker)
	logger.Info().Str("from", from).Str("to", to).Msg("checking ticker")

	actions, err := l.fetcher.CorporateActions(ctx, ticker, from, to)
	if err != nil {
		return TickerResult{Ticker: ticker, Err: apperrors.NewTickerError(ticker, "fetch corporate actions", err)}
	}

	profile := l.fetcher.CompanyProfile(ctx, ticker)
	var marketCap *float64
	if mc, ok := profile.MarketCapitalization.Value(); ok {
		marketCap = &mc
	}

	var events []models.BuybackEvent
	for _, rec := range actions {
		cls, ok := buyback.Classify(rec, to)
		if !ok {
			continue
		}

		var amount *float64
		if cls.HasAmount {
			amount = &cls.AmountHint
		} else if v, ok := buyback.ParseMoney(cls.Description); ok {
			amount = &v
		}

		ev := models.BuybackEvent{
			ID:                 buyback.EventID(ticker, cls.Date, cls.Description),
			Ticker:             ticker,
			Date:               cls.Date,
			Description:        cls.Description,
			Amount:             amount,
			PercentOfMarketCap: buyback.PercentOfMarketCap(amount, marketCap),
			URL:                rec.URL,
		}

		suppressed := notified.Contains(ev.ID)
		l.recordDetection(ctx, logger, ev, suppressed)
		if suppressed {
			logger.Debug().Str("event_id", ev.ID).Msg("already notified, skipping")
			continue
		}

		ev.Text = buyback.RenderEvent(ev)
		logger.Info().Str("event_id", ev.ID).Str("date", ev.Date).Msg("new buyback detected")
		events = append(events, ev)
	}

	return TickerResult{Ticker: ticker, Events: events}
}

func (l *Loop) recordDetection(ctx context.Context, logger zerolog.Logger, ev models.BuybackEvent, suppressed bool) {
	if l.journal == nil {
		return
	}
	if err := l.journal.RecordDetection(ctx, ev, suppressed); err != nil {
		logger.Warn().Err(err).Str("event_id", ev.ID).Msg("journal write failed")
	}
}
