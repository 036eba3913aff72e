package ember

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/embergo/ember/ring"
	"github.com/embergo/ember/sink"
)

// New constructs an Engine: it opens the configured sink, spawns the drain
// goroutine, and returns immediately. Per spec.md §3's lifecycle, the
// returned Engine is already Running.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	s := cfg.sink
	path := cfg.filePath
	if s == nil {
		if path == "" {
			return nil, fmtErrorf("no sink configured: pass WithFilePath or WithSink")
		}
		f, err := sink.NewFile(path, cfg.onError)
		if err != nil {
			return nil, fmtErrorf("opening file sink %q: %w", path, err)
		}
		s = f
	}

	e := &Engine{
		ring:        ring.New[Record](cfg.ringCapacity),
		activeSink:  s,
		filePath:    path,
		maxFileSize: cfg.maxFileSize,
		formatter:   cfg.formatter,
		onError:     cfg.onError,
		onFatal:     cfg.onFatal,
		batchSize:   cfg.batchSize,
		startTime:   time.Now(),
		drainDone:   make(chan struct{}),

		heartbeatLevel:    cfg.heartbeatLevel,
		heartbeatInterval: cfg.heartbeatInterval,
	}
	e.level.Store(int32(cfg.level))
	e.nonEmpty = sync.NewCond(&e.queueMu)
	e.empty = sync.NewCond(&e.emptyMu)
	if e.onError == nil {
		e.onError = func(err error) {
			fmt.Fprintf(os.Stderr, "ember: %v\n", err)
		}
	}
	if e.onFatal == nil {
		e.onFatal = func() { os.Exit(1) }
	}
	if e.batchSize <= 0 {
		e.batchSize = defaultBatchSize
	}

	go e.drain()

	if e.heartbeatLevel > 0 {
		e.startHeartbeat()
	}

	return e, nil
}

// SetLevel atomically replaces the engine's severity threshold, per spec.md
// §4.3. The effect is eventual: producers already past the level check on
// another core may emit one more record at the previous threshold.
func (e *Engine) SetLevel(level Severity) {
	e.level.Store(int32(level))
}

// Sync drains the ring from the calling thread until it observes it empty,
// then flushes the sink, per spec.md §4.3's sync protocol. It is legal and
// safe to call concurrently with the drain goroutine; both race to dequeue
// and both are correct MPMC consumers.
func (e *Engine) Sync() error {
	for {
		rec, ok := e.ring.TryDequeue()
		if !ok {
			break
		}
		e.process(rec)
	}

	e.fileMu.Lock()
	err := e.activeSink.Flush()
	e.fileMu.Unlock()

	e.emptyMu.Lock()
	e.empty.Broadcast()
	e.emptyMu.Unlock()

	return err
}

// WaitUntilEmpty blocks on the empty condition variable until the drain
// loop or Sync observes the ring empty and broadcasts, or deadline elapses,
// per spec.md §4.3/§3's empty_mutex/empty_cv. It reports whether the ring
// was observed empty before the deadline.
func (e *Engine) WaitUntilEmpty(deadline time.Duration) bool {
	if e.ring.IsEmpty() {
		return true
	}

	timer := time.AfterFunc(deadline, func() {
		e.emptyMu.Lock()
		e.empty.Broadcast()
		e.emptyMu.Unlock()
	})
	defer timer.Stop()

	end := time.Now().Add(deadline)
	e.emptyMu.Lock()
	for !e.ring.IsEmpty() && time.Now().Before(end) {
		e.empty.Wait()
	}
	e.emptyMu.Unlock()

	return e.ring.IsEmpty()
}

// Close stops the drain goroutine and closes the sink. It sets stop first
// (so later Log calls are discarded), stops the heartbeat, syncs,
// broadcasts, joins the drain goroutine, syncs once more, then closes the
// sink. A second call is a no-op returning nil.
func (e *Engine) Close() error {
	if !e.stopped.CompareAndSwap(false, true) {
		return nil
	}

	e.stopHeartbeat()

	syncErr := e.Sync()

	e.queueMu.Lock()
	e.nonEmpty.Broadcast()
	e.queueMu.Unlock()

	<-e.drainDone

	// A last drain pass catches anything enqueued between the Sync above
	// and the drain goroutine observing stopped.
	finalErr := e.Sync()

	e.fileMu.Lock()
	closeErr := e.activeSink.Close()
	e.fileMu.Unlock()

	return combineErrors(syncErr, finalErr, closeErr)
}
