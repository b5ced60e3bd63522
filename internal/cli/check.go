package cli

import (
	"github.com/spf13/cobra"

	"buyback-detector/internal/finnhub"
	"buyback-detector/internal/notify"
	"buyback-detector/internal/poll"
	"buyback-detector/internal/store"
)

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run one detection pass over the configured tickers",
		RunE: func(cmd *cobra.Command, args []string) error {
			loop, cleanup := buildLoop(app)
			defer cleanup()

			_, err := loop.Run(cmd.Context())
			return err
		},
	}
}

// buildLoop wires the poll loop from configuration. The returned cleanup
// closes the journal, if one was opened.
func buildLoop(app *App) (*poll.Loop, func()) {
	cfg := app.Config

	fetcher := finnhub.NewClient(finnhub.Config{APIKey: cfg.Finnhub.APIKey})
	sender := newNotifier(app)

	var journal poll.Journal
	cleanup := func() {}
	if cfg.Detector.JournalFile != "" {
		j, err := store.OpenJournal(cfg.Detector.JournalFile)
		if err != nil {
			app.Logger.Warn().Err(err).Str("path", cfg.Detector.JournalFile).Msg("journal unavailable, continuing without it")
		} else {
			journal = j
			cleanup = func() { j.Close() }
		}
	}

	loop := poll.New(poll.Options{
		APIKey:       cfg.Finnhub.APIKey,
		LookbackDays: cfg.Detector.LookbackDays,
		TickersFile:  cfg.Detector.TickersFile,
		NotifiedFile: cfg.Detector.NotifiedFile,
	}, fetcher, sender, journal, app.Logger)

	return loop, cleanup
}

// newNotifier picks the delivery channel: SMTP when a host is
// configured, SendGrid otherwise.
func newNotifier(app *App) notify.Notifier {
	email := app.Config.Email

	if email.SMTPHost != "" {
		return notify.NewSMTPNotifier(notify.SMTPConfig{
			Host:      email.SMTPHost,
			Port:      email.SMTPPort,
			Username:  email.SMTPUser,
			Password:  email.SMTPPass,
			Sender:    email.Sender,
			Recipient: email.Recipient,
		})
	}

	return notify.NewSendGridNotifier(notify.SendGridConfig{
		APIKey:    email.SendGridAPIKey,
		Sender:    email.Sender,
		Recipient: email.Recipient,
	})
}
