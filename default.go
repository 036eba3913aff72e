package ember

import (
	"os"
	"sync"

	"github.com/embergo/ember/sink"
)

var (
	defaultMu     sync.Mutex
	defaultEngine *Engine
)

// defaultInit lazily constructs the package-level default Engine the first
// time a package-level convenience function is called, writing to
// ./ember.log at Debug level. Init replaces it with an explicitly
// configured Engine.
func defaultInit() *Engine {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultEngine != nil {
		return defaultEngine
	}
	e, err := New(WithFilePath("./ember.log"), WithLevel(Debug))
	if err != nil {
		// Construction failure for the zero-configuration default path has
		// nowhere safe to go but a console sink, matching spec.md §7's
		// "nothing in the hot path fails visibly" principle extended to
		// the package-level convenience functions.
		e, _ = New(WithSink(sink.NewConsole(os.Stderr, nil)), WithLevel(Debug))
	}
	defaultEngine = e
	return defaultEngine
}

// Init replaces the package-level default Engine with one built from opts,
// closing any previously running default Engine first.
func Init(opts ...Option) error {
	e, err := New(opts...)
	if err != nil {
		return err
	}
	defaultMu.Lock()
	prev := defaultEngine
	defaultEngine = e
	defaultMu.Unlock()
	if prev != nil {
		_ = prev.Close()
	}
	return nil
}

// Shutdown closes the package-level default Engine, if one has been started.
func Shutdown() error {
	defaultMu.Lock()
	e := defaultEngine
	defaultEngine = nil
	defaultMu.Unlock()
	if e == nil {
		return nil
	}
	return e.Close()
}

func Debugf(template string, args ...any) { defaultInit().logf(Debug, template, args...) }
func Infof(template string, args ...any)  { defaultInit().logf(Info, template, args...) }
func Warnf(template string, args ...any)  { defaultInit().logf(Warn, template, args...) }
func Errorf(template string, args ...any) { defaultInit().logf(Error, template, args...) }
func Fatalf(template string, args ...any) { defaultInit().Fatalf(template, args...) }

// Sync flushes the package-level default Engine.
func Sync() error { return defaultInit().Sync() }
