package ember

import (
	"github.com/embergo/ember/caller"
	"github.com/embergo/ember/sanitizer"
)

// Log is the wait-free producer path of spec.md §4.3: a level check, then a
// ring enqueue, then a notify of the drain goroutine. msg is taken by
// reference into the Record — callers that cannot guarantee its lifetime
// outlives formatting should copy it first (spec.md §9).
func (e *Engine) Log(level Severity, file string, line int, msg []byte) {
	if level < Severity(e.level.Load()) {
		return
	}
	if e.stopped.Load() {
		return
	}

	ok := e.ring.TryEnqueue(Record{Level: level, File: file, Line: line, Message: msg})
	if !ok {
		e.droppedLogs.Add(1)
		return
	}

	e.queueMu.Lock()
	e.nonEmpty.Signal()
	e.queueMu.Unlock()
}

// Logf formats template against args with the engine's MessageFormatter and
// enqueues the result at level, tagging the record with the immediate
// caller's file and line via the caller package (Go's substitute for the
// __FILE__/__LINE__ macros of the original C++ backend).
func (e *Engine) Logf(level Severity, template string, args ...any) {
	if level < Severity(e.level.Load()) {
		return
	}
	file, line := caller.Info(1)
	e.Log(level, file, line, []byte(e.formatter(template, args...)))
}

// Debugf logs at Debug severity.
func (e *Engine) Debugf(template string, args ...any) { e.logf(Debug, template, args...) }

// Infof logs at Info severity.
func (e *Engine) Infof(template string, args ...any) { e.logf(Info, template, args...) }

// Warnf logs at Warn severity.
func (e *Engine) Warnf(template string, args ...any) { e.logf(Warn, template, args...) }

// Errorf logs at Error severity.
func (e *Engine) Errorf(template string, args ...any) { e.logf(Error, template, args...) }

// Fatalf logs at Fatal severity, synchronously syncs the engine so the
// record is durable, then invokes the configured FatalHandler (default
// os.Exit(1)). Grounded on the teacher's compat/gnet.go Fatalf, which syncs
// before exiting rather than relying on the drain goroutine to flush in
// time.
func (e *Engine) Fatalf(template string, args ...any) {
	e.logf(Fatal, template, args...)
	_ = e.Sync()
	e.onFatal()
}

// logf is Logf with an extra caller.Info skip frame so the convenience
// methods above report their own caller rather than themselves.
func (e *Engine) logf(level Severity, template string, args ...any) {
	if level < Severity(e.level.Load()) {
		return
	}
	file, line := caller.Info(2)
	e.Log(level, file, line, []byte(e.formatter(template, args...)))
}

// LogRaw logs args as a raw, space-joined dump, bypassing the
// MessageFormatter/template contract entirely: strings and []byte values
// pass through unchanged, and any other value is rendered with go-spew.
// Grounded on the teacher's Logger.Write, an escape hatch for logging
// arbitrary typed values (structs, maps, slices) without a format string.
func (e *Engine) LogRaw(level Severity, args ...any) {
	if level < Severity(e.level.Load()) {
		return
	}
	file, line := caller.Info(1)

	var buf []byte
	for i, a := range args {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = sanitizer.AppendRawValue(buf, a)
	}
	e.Log(level, file, line, buf)
}
