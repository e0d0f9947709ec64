// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// go-vault-sync server and client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a production-ready *Logger for the given role label
// (e.g. "server", "client").
//
// The logger is configured with:
//   - global log level parsed from level (Debug when empty or unknown);
//   - a "role" field set to role;
//   - a timestamp field added to every log entry;
//   - a "func" caller field holding the fully-qualified function name.
//
// Output is written to os.Stdout in JSON format.
func NewLogger(role, level string) *Logger {
	return newLogger(os.Stdout, role, level)
}

// NewClientLogger constructs a *Logger for the client daemon writing to
// logPath. An empty path selects a "logs" file next to the executable.
// Stdout is used when the file cannot be opened.
func NewClientLogger(role, logPath, level string) *Logger {
	if logPath == "" {
		execPath, _ := os.Executable()
		logPath = filepath.Join(filepath.Dir(execPath), "logs")
	}

	var out io.Writer = os.Stdout
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err == nil {
		out = logFile
	}

	return newLogger(out, role, level)
}

func newLogger(out io.Writer, role, level string) *Logger {
	zerolog.SetGlobalLevel(parseLevel(level))
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

func parseLevel(level string) zerolog.Level {
	if level == "" {
		return zerolog.DebugLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.DebugLevel
	}
	return lvl
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default
// logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
