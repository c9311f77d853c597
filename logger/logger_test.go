package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, Level(false, false))
	assert.Equal(t, zerolog.DebugLevel, Level(false, true))
	assert.Equal(t, zerolog.WarnLevel, Level(true, false))
	assert.Equal(t, zerolog.WarnLevel, Level(true, true))
}

func TestNewJSON_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSON(&buf, zerolog.InfoLevel)

	l.Info().Str("path", "/tmp/x.json").Msg("saved")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "saved", entry["message"])
	assert.Equal(t, "/tmp/x.json", entry["path"])
	assert.Contains(t, entry, "time")
}

func TestNewJSON_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSON(&buf, zerolog.WarnLevel)

	l.Info().Msg("hidden")
	l.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, zerolog.DebugLevel)

	l.Debug().Str("name", "wordpress").Msg("replacing entry")

	out := buf.String()
	assert.Contains(t, out, "replacing entry")
	assert.Contains(t, out, "wordpress")
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Error().Msg("nothing")
	})
}
