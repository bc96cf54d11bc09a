package gradient

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// silentHandler drops every record. Enabled reports false, so slog skips
// building the record and a disabled call costs one atomic load.
type silentHandler struct{}

func (silentHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (silentHandler) Handle(context.Context, slog.Record) error { return nil }
func (silentHandler) WithAttrs([]slog.Attr) slog.Handler        { return silentHandler{} }
func (silentHandler) WithGroup(string) slog.Handler             { return silentHandler{} }

var (
	silent  = slog.New(silentHandler{})
	current atomic.Pointer[slog.Logger]
)

func init() {
	current.Store(silent)
}

// SetLogger routes log output of gradient and gradient/gpu to l.
// Nil restores the default, which discards everything. It may be called
// while other goroutines are logging.
//
// Records emitted:
//   - [slog.LevelDebug]: "gradient: normalized" (colors, segments,
//     first_added, last_added), gpu program compiles, uniform flushes and
//     unresolved uniform names
//   - [slog.LevelWarn]: "gradient: coincident stops treated as hard
//     transitions" (segments)
//
// Example:
//
//	gradient.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}
