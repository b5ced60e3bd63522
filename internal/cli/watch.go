package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	apperrors "buyback-detector/internal/errors"
)

func newWatchCmd(app *App) *cobra.Command {
	var schedule string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run detection passes on a cron schedule until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Config.Finnhub.APIKey == "" {
				return apperrors.ErrMissingAPIKey
			}
			if schedule == "" {
				schedule = app.Config.Watch.Schedule
			}

			loop, cleanup := buildLoop(app)
			defer cleanup()

			ctx := cmd.Context()
			run := func() {
				if _, err := loop.Run(ctx); err != nil {
					// One failed pass must not kill the scheduler; the
					// next pass re-detects anything that failed to send.
					app.Logger.Error().Err(err).Msg("scheduled pass failed")
				}
			}

			c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
			if _, err := c.AddFunc(schedule, run); err != nil {
				return err
			}

			app.Logger.Info().Str("schedule", schedule).Msg("watch mode started")
			c.Start()
			defer c.Stop()

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			select {
			case s := <-sig:
				app.Logger.Info().Str("signal", s.String()).Msg("shutting down")
			case <-ctx.Done():
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&schedule, "schedule", "", "cron expression (default from config, @daily)")

	return cmd
}
