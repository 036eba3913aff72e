// Package compat adapts *ember.Engine to the logging interfaces third-party
// frameworks in the retrieval pack's dependency surface expect, so a single
// engine can back both application logging and a library's internal
// diagnostics.
package compat

import (
	"os"

	"github.com/embergo/ember"
)

// GnetAdapter wraps an *ember.Engine to implement gnet/v2's logging.Logger
// interface (Debugf/Infof/Warnf/Errorf/Fatalf), grounded on the teacher's
// compat/gnet.go.
type GnetAdapter struct {
	engine       *ember.Engine
	fatalHandler func(msg string)
}

// GnetOption customizes adapter behavior.
type GnetOption func(*GnetAdapter)

// WithFatalHandler overrides what runs after Fatalf has synced the engine.
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) { a.fatalHandler = handler }
}

// NewGnetAdapter wraps engine for gnet. Its default fatal handler is
// os.Exit(1), matching gnet's own expectations for its logger's Fatalf.
func NewGnetAdapter(engine *ember.Engine, opts ...GnetOption) *GnetAdapter {
	a := &GnetAdapter{
		engine:       engine,
		fatalHandler: func(string) { os.Exit(1) },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *GnetAdapter) Debugf(format string, args ...any) { a.engine.Logf(ember.Debug, format, args...) }
func (a *GnetAdapter) Infof(format string, args ...any)  { a.engine.Logf(ember.Info, format, args...) }
func (a *GnetAdapter) Warnf(format string, args ...any)  { a.engine.Logf(ember.Warn, format, args...) }
func (a *GnetAdapter) Errorf(format string, args ...any) { a.engine.Logf(ember.Error, format, args...) }

// Fatalf logs at Error, syncs the engine so the record is durable, then runs
// the configured fatal handler rather than exiting immediately out from
// under the drain goroutine.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	a.engine.Logf(ember.Error, format, args...)
	_ = a.engine.Sync()
	a.fatalHandler(ember.Sprintf(format, args...))
}
