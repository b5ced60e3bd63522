// Package cli provides the command-line interface for the buyback
// detector.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"buyback-detector/internal/config"
	apperrors "buyback-detector/internal/errors"
	"buyback-detector/internal/logging"
)

// Version information
const Version = "1.0.0"

// Exit codes. The scheduling layer around this binary distinguishes a
// failed delivery (retry next run) from a misconfigured credential
// (page someone).
const (
	ExitOK            = 0
	ExitNotifyFailure = 1
	ExitMissingAPIKey = 2
)

// App holds the application dependencies shared by the commands.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	app := &App{}

	var (
		configFile string
		debug      bool
	)

	rootCmd := &cobra.Command{
		Use:           "buyback-detector",
		Short:         "Detects share-buyback announcements and emails an aggregated alert",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			app.Config = cfg

			logCfg := logging.Config{
				Level:    cfg.Log.Level,
				Console:  true,
				File:     cfg.Log.FilePath != "",
				FilePath: cfg.Log.FilePath,
				MaxSize:  50,
				MaxAge:   30,
			}
			if debug {
				logCfg.Level = "debug"
			}
			app.Logger = logging.New(logCfg)

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to config.toml (optional)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newCheckCmd(app))
	rootCmd.AddCommand(newWatchCmd(app))
	rootCmd.AddCommand(newJournalCmd(app))

	return rootCmd
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCode(err)
	}
	return ExitOK
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrMissingAPIKey):
		return ExitMissingAPIKey
	default:
		return ExitNotifyFailure
	}
}
