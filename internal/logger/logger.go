// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the go-fhevm server and CLI. Request and
// call scoped loggers travel in the context and are recovered with
// [FromContext] or [FromRequest].
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TraceField is the name of the field set by [Logger.WithTrace].
const TraceField = "trace_id"

// Logger embeds zerolog.Logger so the whole zerolog API is available.
type Logger struct {
	zerolog.Logger
}

func init() {
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}
}

// NewLogger returns the server logger: JSON lines on stdout, every level
// enabled, each record stamped with role, time and the calling function.
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	return &Logger{zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// NewClientLogger returns the CLI logger. stdout belongs to command output,
// so records go to w (stderr when nil) in console form, and below warn only
// when verbose is set.
func NewClientLogger(role string, w io.Writer, verbose bool) *Logger {
	if w == nil {
		w = os.Stderr
	}
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.TimeOnly}
	return &Logger{zerolog.New(out).Level(level).With().
		Str("role", role).
		Timestamp().
		Logger()}
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithTrace derives a logger that tags records with traceID and returns it
// together with a copy of ctx that carries it. l is left untouched.
func (l *Logger) WithTrace(ctx context.Context, traceID string) (context.Context, *Logger) {
	child := &Logger{l.With().Str(TraceField, traceID).Logger()}
	return child.WithContext(ctx), child
}

// FromRequest returns the logger attached to r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, or zerolog's default
// logger when there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
