package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Logger = (*SlogLogger)(nil)
	_ Logger = (*ZerologLogger)(nil)
)

func newSlogTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_LevelsAndAttrs(t *testing.T) {
	ctx := context.Background()
	log, buf := newSlogTestLogger(t)

	log.Info(ctx, "hello", "k", "v")
	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "msg=hello")
	assert.Contains(t, out, "k=v")

	buf.Reset()
	log.Error(ctx, "bad")
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestSlogLogger_WithAddsFields(t *testing.T) {
	ctx := context.Background()
	log, buf := newSlogTestLogger(t)

	child := log.With("component", "heartbeat")
	child.Warn(ctx, "slow probe")

	out := buf.String()
	assert.Contains(t, out, "component=heartbeat")
	assert.Contains(t, out, "slow probe")
}

func TestZerologLogger_LevelsAndAttrs(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf))

	log.Info(ctx, "hello", "k", "v")
	line := buf.String()
	assert.Contains(t, line, `"level":"info"`)
	assert.Contains(t, line, `"message":"hello"`)
	assert.Contains(t, line, `"k":"v"`)

	buf.Reset()
	log.Error(ctx, "bad")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestZerologLogger_WithAddsFields(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf))

	child := log.With("component", "monitor")
	child.Warn(ctx, "tick skipped")

	require.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), `"component":"monitor"`)
}
