package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/zenquiz/internal/config"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zapcore.InfoLevel)

	logger.Debug("hidden")
	logger.Info("level finished", zap.Int("level_id", 2), zap.Bool("passed", true))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1, "debug must be filtered at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "level finished", entry["msg"])
	assert.Equal(t, float64(2), entry["level_id"])
	assert.Equal(t, true, entry["passed"])
}

func TestNew_EmptyFileIsNop(t *testing.T) {
	logger, closeFn, err := New(config.LogConfig{})
	require.NoError(t, err)
	logger.Info("dropped")
	assert.NoError(t, closeFn())
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "zq.log")
	logger, closeFn, err := New(config.LogConfig{File: path, Level: "debug", MaxSizeMB: 1})
	require.NoError(t, err)

	logger.Debug("journal opened")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "journal opened")
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{File: filepath.Join(t.TempDir(), "zq.log"), Level: "loud"})
	assert.Error(t, err)
}
