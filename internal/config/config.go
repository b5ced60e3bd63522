// Package config provides configuration for the buyback detector: an
// optional TOML file overridden by the environment variables the
// deployment has always used.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	apperrors "buyback-detector/internal/errors"
)

// Config holds all application configuration, built once at startup and
// passed by value into the components that need it.
type Config struct {
	Finnhub  FinnhubConfig  `mapstructure:"finnhub"`
	Detector DetectorConfig `mapstructure:"detector"`
	Email    EmailConfig    `mapstructure:"email"`
	Log      LogConfig      `mapstructure:"log"`
	Watch    WatchConfig    `mapstructure:"watch"`
}

// FinnhubConfig holds data-source credentials.
type FinnhubConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// DetectorConfig holds the detection-pipeline settings.
type DetectorConfig struct {
	LookbackDays int    `mapstructure:"lookback_days" validate:"gte=1,lte=365"`
	TickersFile  string `mapstructure:"tickers_file" validate:"required"`
	NotifiedFile string `mapstructure:"notified_file" validate:"required"`
	JournalFile  string `mapstructure:"journal_file"`
}

// EmailConfig holds notification settings. SendGrid is the default
// channel; configuring an SMTP host switches to direct SMTP delivery.
type EmailConfig struct {
	SendGridAPIKey string `mapstructure:"sendgrid_api_key"`
	Sender         string `mapstructure:"sender" validate:"omitempty,email"`
	Recipient      string `mapstructure:"recipient" validate:"omitempty,email"`
	SMTPHost       string `mapstructure:"smtp_host"`
	SMTPPort       int    `mapstructure:"smtp_port" validate:"gte=0,lte=65535"`
	SMTPUser       string `mapstructure:"smtp_user"`
	SMTPPass       string `mapstructure:"smtp_pass"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level    string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	FilePath string `mapstructure:"file_path"`
}

// WatchConfig holds the watch-mode schedule.
type WatchConfig struct {
	Schedule string `mapstructure:"schedule" validate:"required"`
}

// Load builds the configuration: defaults, then the optional TOML file
// at configFile (ignored when empty or absent), then environment
// overrides. The Finnhub key being absent is not a load error; the poll
// loop reports it at startup with its own exit status.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	v.SetDefault("detector.lookback_days", 7)
	v.SetDefault("detector.tickers_file", "empresas.txt")
	v.SetDefault("detector.notified_file", "notified.json")
	v.SetDefault("detector.journal_file", "buybacks.db")
	v.SetDefault("email.smtp_port", 587)
	v.SetDefault("log.level", "info")
	v.SetDefault("watch.schedule", "@daily")

	// Environment names predate this implementation and stay stable
	// across deployments.
	bindings := map[string]string{
		"finnhub.api_key":        "FINNHUB_API_KEY",
		"detector.lookback_days": "LOOKBACK_DAYS",
		"detector.tickers_file":  "TICKERS_FILE",
		"detector.notified_file": "NOTIFIED_FILE",
		"detector.journal_file":  "JOURNAL_FILE",
		"email.sendgrid_api_key": "SENDGRID_API_KEY",
		"email.sender":           "SENDGRID_SENDER",
		"email.recipient":        "ALERT_EMAIL",
		"email.smtp_host":        "SMTP_HOST",
		"email.smtp_port":        "SMTP_PORT",
		"email.smtp_user":        "SMTP_USER",
		"email.smtp_pass":        "SMTP_PASS",
		"log.level":              "LOG_LEVEL",
		"log.file_path":          "LOG_FILE",
		"watch.schedule":         "WATCH_SCHEDULE",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration's structural constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var details []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				details = append(details, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", apperrors.ErrConfigInvalid, strings.Join(details, ", "))
		}
		return fmt.Errorf("%w: %v", apperrors.ErrConfigInvalid, err)
	}
	return nil
}
