package reticle

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record and reports every level disabled, so
// callers never build the attributes.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

var silentLogger = slog.New(discardHandler{})

var activeLogger atomic.Pointer[slog.Logger]

func init() { activeLogger.Store(silentLogger) }

// SetLogger routes the module's logs, including render and batch, to l.
// A nil l silences them again, which is also the starting state.
//
// Debug records cover each scene and artifact, Info records summarize a
// batch, and Warn records flag skipped profile files:
//
//	reticle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silentLogger
	}
	activeLogger.Store(l)
}

// Logger returns the logger set by SetLogger. It may be called from any
// goroutine.
func Logger() *slog.Logger { return activeLogger.Load() }
