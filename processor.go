package ember

import (
	"time"

	"github.com/embergo/ember/linefmt"
)

// render turns a Record into its final line bytes, including the trailing
// newline: "TIMESTAMP [LEVEL] basename:line message\n" per spec.md §6, with
// non-printable bytes stripped from message by linefmt.Render.
func render(rec Record, when time.Time) []byte {
	return linefmt.Render(nil, when, rec.Level.String(), rec.File, rec.Line, rec.Message)
}

// drain is the consumer goroutine body of spec.md §4.4: wait on nonEmpty
// until stopped or the ring is non-empty, pull a bounded batch out under
// queueMu, release it, then format+write the batch without holding it.
func (e *Engine) drain() {
	defer close(e.drainDone)

	batch := make([]Record, 0, e.batchSize)
	for {
		e.queueMu.Lock()
		for !e.stopped.Load() && e.ring.IsEmpty() {
			e.nonEmpty.Wait()
		}
		stop := e.stopped.Load()

		batch = batch[:0]
		for len(batch) < e.batchSize {
			rec, ok := e.ring.TryDequeue()
			if !ok {
				break
			}
			batch = append(batch, rec)
		}
		e.queueMu.Unlock()

		for _, rec := range batch {
			e.process(rec)
		}

		if len(batch) > 0 {
			e.emptyMu.Lock()
			if e.ring.IsEmpty() {
				e.empty.Broadcast()
			}
			e.emptyMu.Unlock()
		}

		if stop && e.ring.IsEmpty() {
			return
		}
	}
}

// process renders one record into its final on-disk line, strips
// non-printable bytes, rotates if the write would exceed maxFileSize, then
// writes the line and a trailing newline under fileMu. Timestamping happens
// here, in the consumer, not the producer, per spec.md §4.4.
func (e *Engine) process(rec Record) {
	line := render(rec, time.Now()) // includes the trailing newline
	payloadLen := int64(len(line) - 1)

	e.fileMu.Lock()
	if e.maxFileSize > 0 && e.currentSize+payloadLen > e.maxFileSize {
		if err := e.rotate(); err != nil {
			e.onError(fmtErrorf("rotating %q: %w", e.filePath, err))
		}
	}

	if err := e.activeSink.Write(line); err != nil {
		e.onError(fmtErrorf("writing record: %w", err))
		e.fileMu.Unlock()
		return
	}
	e.currentSize += payloadLen
	e.fileMu.Unlock()

	e.totalLogsProcessed.Add(1)
}
