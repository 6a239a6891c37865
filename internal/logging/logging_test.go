package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagelist/internal/logging"
)

// TestNewWriterLogger_JSON verifies level filtering and the component field.
func TestNewWriterLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewWriterLogger(logging.Config{Level: "info", Format: logging.FormatJSON}, &buf)
	l = logging.ComponentLogger(l, "test")

	l.Debug().Msg("hidden")
	l.Info().Msg("shown")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var event map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &event))
	assert.Equal(t, "shown", event["message"])
	assert.Equal(t, "test", event[logging.FieldComponent])
	assert.Equal(t, "info", event["level"])
}

// TestNewWriterLogger_InvalidLevel verifies unknown levels fall back to info.
func TestNewWriterLogger_InvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewWriterLogger(logging.Config{Level: "chatty", Format: logging.FormatJSON}, &buf)

	l.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	l.Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

// TestTraceHook verifies events logged with a context get its trace ID.
func TestTraceHook(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewWriterLogger(logging.Config{Level: "debug", Format: logging.FormatJSON}, &buf)

	ctx := logging.ContextWithTraceID(context.Background(), "trace-123")
	l.Info().Ctx(ctx).Msg("with trace")

	var event map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &event))
	assert.Equal(t, "trace-123", event[logging.FieldTraceID])
}

// TestGetOrGenerateTraceID verifies reuse and ULID generation.
func TestGetOrGenerateTraceID(t *testing.T) {
	ctx := logging.ContextWithTraceID(context.Background(), "existing")
	assert.Equal(t, "existing", logging.GetOrGenerateTraceID(ctx))

	id := logging.GetOrGenerateTraceID(context.Background())
	_, err := ulid.Parse(id)
	require.NoError(t, err)
	assert.Empty(t, logging.TraceIDFromContext(context.Background()))
}

// TestFromContext verifies a disabled logger is returned for a bare context.
func TestFromContext(t *testing.T) {
	l := logging.FromContext(context.Background())
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("dropped") })

	var buf bytes.Buffer
	stored := logging.NewWriterLogger(logging.Config{Level: "info", Format: logging.FormatJSON}, &buf)
	ctx := stored.WithContext(context.Background())
	logging.FromContext(ctx).Info().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

// TestNewLoggerWithPath_File verifies file output and Close.
func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pagelist.log")

	result := logging.NewLoggerWithPath(logging.Config{
		Level:  "info",
		Format: logging.FormatJSON,
		Output: logging.OutputFile,
		File:   path,
	})
	require.True(t, result.UsingFile)
	assert.False(t, result.FallbackUsed)
	assert.Equal(t, path, result.FilePath)

	result.Logger.Info().Msg("to file")
	require.NoError(t, result.Close())
	require.NoError(t, result.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

// TestNewLoggerWithPath_Fallback verifies an unopenable file falls back to stderr.
func TestNewLoggerWithPath_Fallback(t *testing.T) {
	dir := t.TempDir()

	result := logging.NewLoggerWithPath(logging.Config{
		Level:  "info",
		Format: logging.FormatJSON,
		Output: logging.OutputFile,
		File:   dir,
	})
	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.NotEmpty(t, result.FallbackReason)
	assert.NoError(t, result.Close())
}

// TestPrintMessages verifies the user-facing log notices.
func TestPrintMessages(t *testing.T) {
	var buf bytes.Buffer
	logging.PrintLogPathMessage(&buf, "/tmp/x.log")
	logging.PrintFallbackWarning(&buf, "permission denied")

	assert.Contains(t, buf.String(), "Logging to: /tmp/x.log")
	assert.Contains(t, buf.String(), "permission denied")
}
