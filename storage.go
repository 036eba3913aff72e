package ember

import "github.com/embergo/ember/sink"

// rotate closes the active sink and reopens a fresh one against the same
// path in append mode, preserving existing content, per spec.md §4.3 and
// the Open Question spec.md §9 resolves explicitly: "This specification
// chooses re-open in append because it loses no data." This is deliberately
// NOT the teacher's rotateLogFile, which renames the current file to a
// timestamped archive name before opening an empty replacement — see
// DESIGN.md for the divergence.
//
// Called under fileMu; it is the caller's responsibility to hold it.
func (e *Engine) rotate() error {
	if e.filePath == "" {
		// Sink has no backing path (console, or caller-supplied via
		// WithSink) — nothing to reopen.
		return nil
	}

	if err := e.activeSink.Close(); err != nil {
		return fmtErrorf("closing %q before rotation: %w", e.filePath, err)
	}

	f, err := sink.NewFile(e.filePath, e.onError)
	if err != nil {
		return fmtErrorf("reopening %q after rotation: %w", e.filePath, err)
	}

	e.activeSink = f
	e.currentSize = 0
	e.totalRotations.Add(1)
	return nil
}
