package observability_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel_booking/internal/adapters/observability"
)

func TestNewLogger_JSONAtLevel(t *testing.T) {
	var buf bytes.Buffer
	l := observability.NewLogger("prod", "info", &buf)

	l.Debug().Msg("hidden")
	l.Info().Str("room", "101").Msg("room held")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), "one JSON line expected, got %q", buf.String())
	assert.Equal(t, "room held", line["message"])
	assert.Equal(t, "101", line["room"])
	assert.Contains(t, line, "time")
}

func TestNewLogger_BadLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	l := observability.NewLogger("prod", "chatty", &buf)

	l.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewLogger_DevUsesConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	l := observability.NewLogger("dev", "info", &buf)
	l.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())), "console output should not be JSON")
}
