package iologger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/railcat/railcat/pkg/config"
	"github.com/railcat/railcat/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in  string
		out slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, v := range tests {
		assert.Equal(t, v.out, parseLevel(v.in), v.in)
	}
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer
	h := newHandler(&buf, config.LogConfig{Format: "text", Level: "warn"})
	log := slog.New(h)
	log.Info("hidden")
	log.Warn("shown", "station", "Radom")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "station=Radom")

	buf.Reset()
	h = newHandler(&buf, config.LogConfig{Format: "json", Level: "info"})
	slog.New(h).Info("added", "train_id", 1001)
	assert.Contains(t, buf.String(), `"train_id":1001`)
}

func TestInitFile(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping file system test in short mode")
	}
	defer slog.SetDefault(slog.Default())

	dir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}
	require.NoError(t, Init(dir, cfg))
	slog.Info("first run")
	require.NoError(t, Init(dir, cfg))
	slog.Info("second run")

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "first run")
	assert.Contains(t, string(data), "second run")

	err = Init(filepath.Join(dir, "missing"), cfg)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
}
