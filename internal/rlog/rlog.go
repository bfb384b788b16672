// Package rlog provides the process-wide structured logger for the
// rendering core. By default it is silent; callers opt in with Set.
// No third-party logging library fits a CPU-bound rendering core, so
// log/slog is used directly rather than introduced as a dependency
// (see DESIGN.md).
package rlog

import (
	"context"
	"log/slog"
	"sync/atomic"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(nopHandler{}))
}

// Set installs the logger used by the rendering core (the root package's
// texture reservation path and internal/parallel's job dispatch). Pass
// nil to restore silence. Safe for concurrent use.
func Set(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	current.Store(l)
}

// Get returns the currently installed logger.
func Get() *slog.Logger {
	return current.Load()
}

var countPrinter = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators for log fields that
// can otherwise run into unreadable digit runs (job counts, texel
// counts across a large framebuffer).
func FormatCount(n int) string {
	return countPrinter.Sprintf("%v", number.Decimal(n))
}
