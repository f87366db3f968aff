package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel zerolog.Level
	}{
		{name: "Debug", level: "debug", wantLevel: zerolog.DebugLevel},
		{name: "Warn", level: "warn", wantLevel: zerolog.WarnLevel},
		{name: "Error", level: "error", wantLevel: zerolog.ErrorLevel},
		{name: "Unknown falls back to info", level: "verbose", wantLevel: zerolog.InfoLevel},
		{name: "Empty falls back to info", level: "", wantLevel: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			NewLogger(LoggerConfig{Level: tt.level, Format: "json"})
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestNewLogger_ConsoleFormat(t *testing.T) {
	logger := NewLogger(LoggerConfig{Level: "info", Format: "console"})
	logger.Debug().Msg("suppressed below the global level")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
