package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"buyback-detector/internal/store"
)

func newJournalCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "List recent detections from the local journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := store.OpenJournal(app.Config.Detector.JournalFile)
			if err != nil {
				return err
			}
			defer j.Close()

			entries, err := j.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("journal is empty")
				return nil
			}

			for _, e := range entries {
				status := "notified"
				if e.Suppressed {
					status = "suppressed"
				}
				line := fmt.Sprintf("%s  %-6s %s  %s", e.DetectedAt.Format("2006-01-02 15:04"), e.Ticker, e.Date, status)
				if e.Amount != nil {
					line += fmt.Sprintf("  %.0f USD", *e.Amount)
				}
				if e.Percent != nil {
					line += fmt.Sprintf("  (%.2f%% of mcap)", *e.Percent)
				}
				fmt.Println(line)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries to show")

	return cmd
}
