package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleHandler_Line(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewConsoleHandler(&buf, nil))

	l.Info("decided", slog.Int("turn", 12), slog.String("move", "up"), slog.Float64("value", 3.5))
	line := buf.String()
	assert.True(t, strings.HasSuffix(line, "\n"))
	assert.Contains(t, line, "INFO  decided turn=12 move=up value=3.5")
}

func TestConsoleHandler_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewConsoleHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	l.Info("hidden")
	l.Debug("hidden")
	assert.Empty(t, buf.String())
	l.Warn("shown")
	assert.Contains(t, buf.String(), "WARN  shown")
}

func TestConsoleHandler_AttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewConsoleHandler(&buf, nil)).With("game", "g1").WithGroup("search")
	l.Info("done", slog.Int("nodes", 40), slog.Group("best", slog.String("move", "left")))
	assert.Contains(t, buf.String(), "done game=g1 search.nodes=40 search.best.move=left")
}

func TestConsoleHandler_QuotesSpaces(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewConsoleHandler(&buf, nil))
	l.Info("shout", slog.String("text", "hello there"), slog.String("empty", ""))
	assert.Contains(t, buf.String(), `text="hello there" empty=""`)
}

func TestNew_Formats(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, Options{Format: "json", Level: "debug"})
	require.NoError(t, err)
	l.Debug("hi", slog.Int("n", 1))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "hi", got["msg"])
	assert.Equal(t, float64(1), got["n"])

	_, err = New(&buf, Options{Format: "xml"})
	require.Error(t, err)
	_, err = New(&buf, Options{Level: "loud"})
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, l)

	l, err = ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)
}
