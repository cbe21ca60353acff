package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel(""))
	assert.Equal(t, slog.LevelWarn, ParseLogLevel("WARNING"))
	assert.Equal(t, slog.LevelError, ParseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("chatty"))
}

func TestAutoFormatIsJSONForBuffers(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.LevelInfo, &buf)

	logger.Debug("hidden")
	logger.Info("status picked", "status", "3")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "status picked", entry["msg"])
	assert.Equal(t, "3", entry["status"])
}

func TestConsoleFormatWrites(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithFormat(slog.LevelDebug, &buf, FormatConsole)
	logger.Info("hello console")
	assert.Contains(t, buf.String(), "hello console")
}
