package log

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"trace": LevelTrace,
		"debug": slog.LevelDebug,
		"":      slog.LevelInfo,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestSetupLoggerConsoleAndFile(t *testing.T) {
	var console bytes.Buffer
	file := filepath.Join(t.TempDir(), "export.log")

	logger, closers, err := setupLogger(&console, "warn", file)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("identify timed out", "timeout", time.Second)
	for _, c := range closers {
		require.NoError(t, c.Close())
	}

	assert.NotContains(t, console.String(), "hidden")
	assert.Contains(t, console.String(), "identify timed out")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "identify timed out")
	assert.NotContains(t, string(data), "hidden")
}

func TestRawLogger(t *testing.T) {
	var buf bytes.Buffer
	r := NewRaw(&buf).(*rawLogger)
	r.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	r.Log(true, []byte{0xab, 0x08, 0xad})
	r.Log(false, nil)
	r.Log(false, []byte{0x01})

	assert.Equal(t,
		"2024/05/01 12:00:00.000 H->D frame: 3 bytes, hex: ab 08 ad\n"+
			"2024/05/01 12:00:00.000 D->H frame: 1 bytes, hex: 01\n",
		buf.String())
}

func TestRawLoggerNilWriter(t *testing.T) {
	assert.NotPanics(t, func() { NewRaw(nil).Log(true, []byte{1, 2, 3}) })
}
