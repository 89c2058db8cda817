package logging

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestSetupLoggerLevels(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	tests := []struct {
		verbosity int
		level     zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		SetupLogger(tt.verbosity)
		if got := zerolog.GlobalLevel(); got != tt.level {
			t.Errorf("verbosity %d: expected level %s, got %s", tt.verbosity, tt.level, got)
		}
	}
}

func TestGetLogger(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	SetupLogger(0)

	logger := GetLogger("compose")
	// Must be usable without panicking; component field is attached.
	logger.Debug().Msg("test message")
}
