// SPDX-License-Identifier: MIT
package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/katalvlaran/safepath/internal/config"
	"github.com/katalvlaran/safepath/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := logging.ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(config.LogConfig{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("kept", "source", "Mall")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "Mall", rec["source"])
	assert.Equal(t, "safepath", rec["service"])
}

func TestNew_BadFormat(t *testing.T) {
	_, err := logging.New(config.LogConfig{Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}
