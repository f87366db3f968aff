package config

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the storefront's root logger. Component loggers are
// derived from it with With(), so every line carries the shared level
// and format. The level string has already passed Validate; if the two
// ever drift, fall back to info rather than dying.
func NewLogger(cfg LoggerConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		return zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
