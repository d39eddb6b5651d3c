package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFormatAndLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Format: "json"}, &buf)

	log.Info().Msg("hidden")
	log.Warn().Str("k", "v").Msg("shown")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "v", entry["k"])
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "loud", Format: "json"}, &buf)

	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
	assert.Contains(t, buf.String(), "invalid log level")
}

func TestSetup_ConsoleOnly(t *testing.T) {
	log, cleanup, err := Setup(Config{Level: "debug"})
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
}

func TestSetup_FileEnabled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "forcedeck.log")

	log, cleanup, err := Setup(Config{
		Level:  "info",
		Format: "json",
		File: FileConfig{
			Enabled:    true,
			Path:       path,
			MaxSize:    1,
			MaxBackups: 1,
			MaxAge:     1,
		},
	})
	require.NoError(t, err)

	log.Info().Msg("to file")
	cleanup()

	assert.FileExists(t, path)
}

func TestWithFallback(t *testing.T) {
	var fallback, scoped bytes.Buffer
	fallbackLog := New(Config{Format: "json"}, &fallback)

	ctx := WithFallback(context.Background(), fallbackLog)
	log := zerowrap.FromCtx(ctx)
	log.Info().Msg("from fallback")
	assert.Contains(t, fallback.String(), "from fallback")

	ctx = zerowrap.WithCtx(context.Background(), New(Config{Format: "json"}, &scoped))
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{zerowrap.FieldRequestID: "req-1"})
	ctx = WithFallback(ctx, fallbackLog)
	log = zerowrap.FromCtx(ctx)
	log.Info().Msg("kept scoped")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(scoped.Bytes()), &entry))
	assert.Equal(t, "req-1", entry[zerowrap.FieldRequestID])
	assert.NotContains(t, fallback.String(), "kept scoped")
}

func TestWithFallback_DisabledLoggerIsReplaced(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerowrap.WithCtx(context.Background(), zerowrap.Logger{Logger: zerolog.Nop()})

	ctx = WithFallback(ctx, New(Config{Format: "json"}, &buf))
	log := zerowrap.FromCtx(ctx)
	log.Info().Msg("visible")

	assert.Contains(t, buf.String(), "visible")
}
