package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"studel/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.ParseLevel(tt.in))
		})
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New("info", &buf)

	logger.Debug("hidden")
	logger.Info("order status changed", "order_id", "o-1", "to", "Accepted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "order status changed", entry["msg"])
	assert.Equal(t, "o-1", entry["order_id"])
	assert.NotContains(t, buf.String(), "hidden")
}
