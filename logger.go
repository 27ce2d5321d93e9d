package glint

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Because Enabled is always false, slog never
// builds the attributes of a disabled call.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var (
	silent = slog.New(discard{})
	active atomic.Pointer[slog.Logger] // nil means silent
)

// SetLogger routes glint's diagnostics to l. glint, glint/kage and glint/ecs
// all log through it. Nothing is logged until a logger is set, and passing
// nil turns logging off again.
//
// Debug records cover a transition's life: play, supersede, complete and
// abandon, instances created and destroyed, properties a shader lacks, and
// slots skipped during Apply. A failed settings reload is logged at warn
// level.
//
//	glint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//		&slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	active.Store(l)
}

// Logger returns the logger set with SetLogger, or a silent one. It may be
// called from any goroutine, including the settings watcher.
func Logger() *slog.Logger {
	if l := active.Load(); l != nil {
		return l
	}
	return silent
}
