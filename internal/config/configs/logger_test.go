package configs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_SlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, Logger{Level: in}.SlogLevel(), "level %q", in)
	}
}

func TestLogger_NewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := Logger{Level: "warn", Format: "JSON"}.New(&buf, "strategy_service")

	logger.Info("dropped")
	logger.Warn("kept", slog.String("request_id", "abc"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "strategy_service", line["service"])
	assert.Equal(t, "abc", line["request_id"])
}

func TestLogger_NewText(t *testing.T) {
	var buf bytes.Buffer
	Logger{Format: "yaml"}.New(&buf, "svc").Info("hello")

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "service=svc")
}
