package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mvnconf/internal/adapters/logger"
)

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		level slog.Level
		want  string
	}{
		{level: slog.LevelInfo, want: "msg\n"},
		{level: slog.LevelWarn, want: "! msg\n"},
		{level: slog.LevelError, want: "✗ msg\n"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			h := logger.NewPrettyHandler(buf, nil)
			require.NoError(t, h.Handle(context.Background(), slog.NewRecord(time.Now(), tt.level, "msg", 0)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_AttrsAndGroup(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, nil).
		WithAttrs([]slog.Attr{slog.String("file", "mvnconf.yaml")}).
		WithGroup("config")

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "loaded", 0)
	r.AddAttrs(slog.Int("keys", 2))
	require.NoError(t, h.Handle(context.Background(), r))

	want := "loaded\n" +
		"    file: mvnconf.yaml\n" +
		"    config.keys: 2\n"
	assert.Equal(t, want, buf.String())
}

func TestPrettyHandler_Details(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, nil)

	r := slog.NewRecord(time.Now(), slog.LevelError, "Error: failed to load options\n\n  Caused by:\n    → missing", 0)
	r.AddAttrs(
		slog.String("path", "/work/mvnconf.yaml"),
		slog.String("proxy", ""),
		slog.String("repo", " padded "),
		slog.Group("probe", slog.Int("status", 502), slog.String("via", "http://proxy:3128")),
		slog.Attr{},
	)
	require.NoError(t, h.Handle(context.Background(), r))

	want := strings.Join([]string{
		"✗ Error: failed to load options",
		"",
		"  Caused by:",
		"    → missing",
		"    path: /work/mvnconf.yaml",
		`    proxy: ""`,
		`    repo: " padded "`,
		"    probe.status: 502",
		"    probe.via: http://proxy:3128",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestPrettyHandler_NestedGroups(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, nil).
		WithGroup("resolver").
		WithAttrs([]slog.Attr{slog.String("policy", "daily")}).
		WithGroup("remote")

	r := slog.NewRecord(time.Now(), slog.LevelWarn, "slow", 0)
	r.AddAttrs(slog.Int("count", 2))
	require.NoError(t, h.Handle(context.Background(), r))

	assert.Equal(t, "! slow\n    resolver.policy: daily\n    resolver.remote.count: 2\n", buf.String())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}
