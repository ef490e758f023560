package logger

import (
	"context"
	"log/slog"
	"runtime"
)

// sourceByLevelHandler wraps a handler and attaches source location only for
// selected levels. The wrapped handler must be constructed with
// AddSource: false; this wrapper records the caller frame itself for the
// levels it is configured with, which keeps info/debug lines compact in
// production while warn/error stay debuggable.
type sourceByLevelHandler struct {
	inner  slog.Handler
	levels map[slog.Level]struct{}
}

// NewSourceByLevelHandler wraps handler so that source location is emitted
// only for the given levels.
func NewSourceByLevelHandler(handler slog.Handler, levels ...slog.Level) slog.Handler {
	set := make(map[slog.Level]struct{}, len(levels))
	for _, l := range levels {
		set[l] = struct{}{}
	}
	return &sourceByLevelHandler{inner: handler, levels: set}
}

func (h *sourceByLevelHandler) Handle(ctx context.Context, r slog.Record) error {
	if _, ok := h.levels[r.Level]; ok {
		// Skip this frame plus the slog internal frame to reach the call site.
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		frame, _ := runtime.CallersFrames(pcs[:]).Next()
		r.AddAttrs(slog.Attr{
			Key: slog.SourceKey,
			Value: slog.AnyValue(&slog.Source{
				Function: frame.Function,
				File:     frame.File,
				Line:     frame.Line,
			}),
		})
	}
	return h.inner.Handle(ctx, r)
}

func (h *sourceByLevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceByLevelHandler{inner: h.inner.WithAttrs(attrs), levels: h.levels}
}

func (h *sourceByLevelHandler) WithGroup(name string) slog.Handler {
	return &sourceByLevelHandler{inner: h.inner.WithGroup(name), levels: h.levels}
}

func (h *sourceByLevelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}
