package ember

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/embergo/ember/ring"
	"github.com/embergo/ember/sink"
)

// Engine owns the producer/consumer pipeline: a ring buffer, a sink, a
// current-level atomic, a stop flag, and a drain goroutine. It is spec.md
// §3's "log engine" entity, realized per §5's concurrency model.
type Engine struct {
	ring *ring.Ring[Record]

	level   atomic.Int32
	stopped atomic.Bool

	// fileMu guards the sink handle and currentSize together, exactly as
	// spec.md §3/§5 name file_mutex.
	fileMu      sync.Mutex
	activeSink  sink.Sink
	filePath    string // empty for non-reopenable sinks (console)
	currentSize int64
	maxFileSize int64

	// queueMu + nonEmpty guard the wait side of producer->consumer
	// wakeups (spec.md §3's queue_mutex/nonempty_cv).
	queueMu  sync.Mutex
	nonEmpty *sync.Cond

	// emptyMu + empty back WaitUntilEmpty's quiescence signal (spec.md
	// §3's empty_mutex/empty_cv).
	emptyMu sync.Mutex
	empty   *sync.Cond

	formatter MessageFormatter
	onError   ErrorHandler
	onFatal   FatalHandler

	batchSize int

	droppedLogs        atomic.Uint64
	totalLogsProcessed atomic.Uint64
	totalRotations     atomic.Uint64
	startTime          time.Time

	heartbeatLevel    int
	heartbeatInterval time.Duration
	heartbeatSeq      atomic.Uint64
	heartbeatStop     chan struct{}
	heartbeatDone     chan struct{}

	drainDone chan struct{}
}

// Level returns the engine's current severity threshold.
func (e *Engine) Level() Severity {
	return Severity(e.level.Load())
}

// DroppedLogs returns the number of records dropped so far because the ring
// was full at enqueue time.
func (e *Engine) DroppedLogs() uint64 {
	return e.droppedLogs.Load()
}

// TotalRotations returns the number of completed file rotations.
func (e *Engine) TotalRotations() uint64 {
	return e.totalRotations.Load()
}

// currentFileSize is a test hook exposing the consumer-local byte counter
// spec.md §8 scenario 6 asserts against.
func (e *Engine) currentFileSize() int64 {
	e.fileMu.Lock()
	defer e.fileMu.Unlock()
	return e.currentSize
}
