// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/mvnconf/internal/core/ports"
	"go.trai.ch/mvnconf/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// FormatEnvVar selects the log format: "json" or "pretty".
const FormatEnvVar = "MVNCONF_LOG_FORMAT"

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger writing to stderr. JSON output is chosen when
// requested through FormatEnvVar, or when running in CI without a terminal.
func New() ports.Logger {
	l := &Logger{}
	l.jsonMode = preferJSON(os.Getenv, term.IsTerminal(int(os.Stderr.Fd())))
	l.SetOutput(os.Stderr)
	return l
}

func preferJSON(getenv func(string) string, isTTY bool) bool {
	switch strings.ToLower(getenv(FormatEnvVar)) {
	case "json":
		return true
	case "pretty":
		return false
	}

	ci := getenv("CI")
	return !isTTY && (ci == "true" || ci == "1")
}

// SetOutput updates the logger's output destination.
// It preserves the current JSON mode setting.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(l.newHandler())
}

// SetJSON switches between JSON and pretty logging.
// The output destination is preserved from SetOutput calls.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	if l.output == nil {
		l.output = os.Stderr
	}
	l.logger = slog.New(l.newHandler())
}

func (l *Logger) newHandler() slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if l.jsonMode {
		return slog.NewJSONHandler(l.output, opts)
	}
	return NewPrettyHandler(l.output, opts)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error. In pretty mode the wrapped causes are listed under a
// "Caused by" header; in both modes the metadata attached along the chain is
// written as attributes.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	attrs := errorMetadata(err)

	if l.jsonMode {
		attrs = append([]slog.Attr{slog.String("error", err.Error())}, attrs...)
		l.logger.LogAttrs(context.Background(), slog.LevelError, "operation failed", attrs...)
		return
	}

	l.logger.LogAttrs(context.Background(), slog.LevelError, formatErrorChain(collectErrorChain(err)), attrs...)
}

// collectErrorChain walks the error chain. zerr errors contribute their own
// message, skipping the empty ones zerr.With creates around standard errors;
// the first standard error contributes its full text and ends the walk.
func collectErrorChain(err error) []string {
	var messages []string
	current := err

	for current != nil {
		m, ok := current.(messager)
		if !ok {
			messages = append(messages, current.Error())
			break
		}
		if msg := m.Message(); msg != "" {
			messages = append(messages, msg)
		}
		current = errors.Unwrap(current)
	}

	return messages
}

// errorMetadata gathers zerr metadata along the chain, sorted by key. When a
// key repeats, the outermost value wins.
func errorMetadata(err error) []slog.Attr {
	seen := make(map[string]any)
	for current := err; current != nil; current = errors.Unwrap(current) {
		z, ok := current.(*zerr.Error)
		if !ok {
			continue
		}
		for k, v := range z.Metadata() {
			if _, dup := seen[k]; !dup {
				seen[k] = v
			}
		}
	}

	attrs := make([]slog.Attr, 0, len(seen))
	for _, k := range slices.Sorted(maps.Keys(seen)) {
		attrs = append(attrs, slog.Any(k, seen[k]))
	}
	return attrs
}

func formatErrorChain(messages []string) string {
	var lines []string

	for i, msg := range messages {
		parts := strings.Split(msg, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+parts[0])
			for _, line := range parts[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    "+style.Arrow+" "+parts[0])
		for _, line := range parts[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}
