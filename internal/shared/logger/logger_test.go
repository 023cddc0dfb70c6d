package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/config"
)

func TestConditionalSourceHandler(t *testing.T) {
	warnAndError := []slog.Level{slog.LevelWarn, slog.LevelError}
	all := []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}

	tests := []struct {
		name       string
		level      slog.Level
		levels     []slog.Level
		wantSource bool
	}{
		{"info is quiet by default", slog.LevelInfo, warnAndError, false},
		{"warn carries source", slog.LevelWarn, warnAndError, true},
		{"error carries source", slog.LevelError, warnAndError, true},
		{"info carries source in debug mode", slog.LevelInfo, all, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			log := slog.New(NewConditionalSourceHandler(base, tt.levels...))

			log.Log(context.Background(), tt.level, "ticket saved", "ticket_id", 7)

			out := buf.String()
			assert.Contains(t, out, "ticket_id=7")
			assert.Equal(t, tt.wantSource, bytes.Contains(buf.Bytes(), []byte("source=")), out)
		})
	}
}

func TestConditionalSourceHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	log := slog.New(NewConditionalSourceHandler(base, slog.LevelError)).
		With("user_id", 3).
		WithGroup("request")

	log.Info("handled", "path", "/api/tickets")

	out := buf.String()
	assert.Contains(t, out, "user_id=3")
	assert.Contains(t, out, "request.path=/api/tickets")
	assert.NotContains(t, out, "source=")
}

func TestInit_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	cfg := &config.LoggerConfig{Level: "debug", Format: "json", OutputPath: path, MaxSizeMB: 1}

	require.NoError(t, Init(cfg, "release"))
	t.Cleanup(func() { Logger = nil })

	Logger.Debug("asset imported", "count", 2)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"asset imported"`)
	assert.Contains(t, string(data), `"count":2`)
}

func TestInit_BadPath(t *testing.T) {
	cfg := &config.LoggerConfig{OutputPath: filepath.Join(t.TempDir(), "missing", "app.log")}
	assert.Error(t, Init(cfg, "release"))
}
