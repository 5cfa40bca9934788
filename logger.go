// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package chart

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so call sites
// never pay for attribute formatting while logging is off.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the active logger behind an atomic pointer, so swapping
// it races safely with logging from render goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger installs the logger used across the module, including the
// backend sub-packages. The module is silent until one is installed; a
// nil argument switches back to the silent default.
//
// Diagnostics such as per-frame buffer and draw counts go out at debug
// level, backend and device lifecycle at info, and anything that cost a
// frame (drops, tier fallback, device loss) at warn. Wiring in
// slog.Default() is enough to see the warn and info traffic.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger installed by SetLogger. The backend packages
// route their output through this accessor rather than importing a
// logger of their own.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
