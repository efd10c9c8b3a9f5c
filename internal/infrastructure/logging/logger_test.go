package logging_test

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cabriolet/internal/infrastructure/logging"
)

func TestSetupLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logging.Setup(tt.level, "json")
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestConsoleWriterWithoutTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "log")
	require.NoError(t, err)
	defer f.Close()

	w, ok := logging.ConsoleWriter(f).(zerolog.ConsoleWriter)
	require.True(t, ok)
	assert.True(t, w.NoColor)
	assert.Nil(t, w.FormatPrepare)
}
