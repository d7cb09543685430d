package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleHandler_AttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewConsoleHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}, false))

	l.With("control", "slider").Debug("commit", "value", 0.5)
	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "control=slider")
	assert.Contains(t, out, "value=0.5")

	buf.Reset()
	l.WithGroup("option").With("kind", "number").Info("clamped")
	assert.Contains(t, buf.String(), "option.kind=number")
}

func TestConsoleHandler_ComponentPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewConsoleHandler(&buf, nil, false))

	l.With("component", "options").Warn("number input rejected", "input", "abc")
	out := buf.String()
	assert.Contains(t, out, "WARN  [options] number input rejected input=abc")
	assert.NotContains(t, out, "component=")
}

func TestConsoleHandler_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewConsoleHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}, false))

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown")
	assert.True(t, strings.Contains(buf.String(), "shown"))
}

func TestShortenHome(t *testing.T) {
	saved := homeDir
	homeDir = "/home/alice"
	t.Cleanup(func() { homeDir = saved })

	a := ShortenHome(nil, slog.String("path", filepath.Join("/home/alice", "Games", "bg.png")))
	assert.Equal(t, "~/Games/bg.png", a.Value.String())

	a = ShortenHome(nil, slog.String("title", "/home/alice/x"))
	assert.Equal(t, "/home/alice/x", a.Value.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestInit_WritesJSONToFile(t *testing.T) {
	var file bytes.Buffer
	Init(slog.LevelInfo, &file)
	t.Cleanup(func() { Init(slog.LevelInfo, nil) })

	With("drawer").Info("projected", "mode", "expanded")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(file.Bytes()), &rec))
	assert.Equal(t, "projected", rec["msg"])
	assert.Equal(t, "drawer", rec["component"])
	assert.Equal(t, "expanded", rec["mode"])
}
