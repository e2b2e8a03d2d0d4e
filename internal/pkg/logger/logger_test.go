package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestFromSettings(t *testing.T) {
	cfg := FromSettings(" DEBUG ", "json")
	assert.Equal(t, DebugLevel, cfg.Level)
	assert.False(t, cfg.Pretty)

	assert.True(t, FromSettings("info", "console").Pretty)
}

func TestConfigure_WritesJSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &buf})
	t.Cleanup(func() { Configure(Config{Level: InfoLevel, Pretty: true}) })

	Info().Msg("dropped")
	l := Component("votes")
	l.Warn().Msg("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"component":"votes"`)
	assert.Contains(t, out, `"service":"studx"`)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
