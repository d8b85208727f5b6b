package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		option string
		want   slog.Leveler
		ok     bool
	}{
		{"", nil, true},
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"Warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.option, func(t *testing.T) {
			got, ok := level(tt.option)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newWithStdout(&Options{Level: "debug", Format: "json"}, &buf)
	logger.Debug("contact added", "contact_id", "ABC")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "contact added", record["msg"])
	assert.Equal(t, "ABC", record["contact_id"])
}

func TestNewFallbacks(t *testing.T) {
	t.Run("level", func(t *testing.T) {
		var buf bytes.Buffer
		options := &Options{Level: "loud", Format: "text"}
		newWithStdout(options, &buf)
		assert.Empty(t, options.Level)
		assert.Contains(t, buf.String(), "could not parse logger level")
	})

	t.Run("format", func(t *testing.T) {
		var buf bytes.Buffer
		options := &Options{Format: "xml"}
		newWithStdout(options, &buf)
		assert.Equal(t, "text", options.Format)
		assert.Contains(t, buf.String(), "could not parse logger format")
	})

	t.Run("file", func(t *testing.T) {
		var buf bytes.Buffer
		options := &Options{File: filepath.Join(t.TempDir(), "missing", "app.log"), Format: "text"}
		newWithStdout(options, &buf)
		assert.Empty(t, options.File)
		assert.Contains(t, buf.String(), "could not open logger file")
	})
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger := New(&Options{File: path, Format: "text"})
	logger.Info("hello")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "msg=hello")
}

func TestNewDevNull(t *testing.T) {
	logger := New(&Options{File: os.DevNull})
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}
