package ember

import (
	"time"

	"github.com/embergo/ember/sink"
)

// Option configures an Engine at construction time. The engine's dynamic
// surface is deliberately narrow (spec.md §6 names only SetLevel as a
// post-construction knob); everything else is fixed by the Options passed
// to New.
type Option func(*engineConfig)

// engineConfig accumulates Option values before New opens the sink and
// starts the drain goroutine.
type engineConfig struct {
	filePath          string
	sink              sink.Sink
	level             Severity
	ringCapacity      int
	maxFileSize       int64
	batchSize         int
	formatter         MessageFormatter
	onError           ErrorHandler
	onFatal           FatalHandler
	heartbeatLevel    int
	heartbeatInterval time.Duration
}

func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		level:        Debug,
		ringCapacity: defaultRingCapacity,
		maxFileSize:  defaultMaxFileSize,
		batchSize:    defaultBatchSize,
		formatter:    Sprintf,
	}
}

// WithFilePath opens a file sink at path in append mode. Mutually exclusive
// with WithSink; the last one applied wins.
func WithFilePath(path string) Option {
	return func(c *engineConfig) {
		c.filePath = path
		c.sink = nil
	}
}

// WithSink installs a caller-constructed sink.Sink directly, bypassing the
// file-path-based construction path. Rotation is a no-op for a sink with no
// backing path.
func WithSink(s sink.Sink) Option {
	return func(c *engineConfig) {
		c.sink = s
		c.filePath = ""
	}
}

// WithLevel sets the initial severity threshold.
func WithLevel(level Severity) Option {
	return func(c *engineConfig) { c.level = level }
}

// WithRingCapacity overrides the ring buffer's capacity (rounded up to a
// power of two by ring.New).
func WithRingCapacity(capacity int) Option {
	return func(c *engineConfig) { c.ringCapacity = capacity }
}

// WithMaxFileSize sets the rotation threshold in bytes.
func WithMaxFileSize(bytes int64) Option {
	return func(c *engineConfig) { c.maxFileSize = bytes }
}

// WithBatchSize overrides how many records the drain loop moves out of the
// ring per wakeup before releasing queueMu.
func WithBatchSize(n int) Option {
	return func(c *engineConfig) { c.batchSize = n }
}

// WithFormatter installs a custom MessageFormatter in place of Sprintf.
func WithFormatter(f MessageFormatter) Option {
	return func(c *engineConfig) { c.formatter = f }
}

// WithErrorHandler installs a callback for internal diagnostics (sink write
// and rotation failures) in place of the default stderr writer.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *engineConfig) { c.onError = h }
}

// WithFatalHandler overrides what runs after a Fatal-level record has been
// synced; the default is os.Exit(1).
func WithFatalHandler(h FatalHandler) Option {
	return func(c *engineConfig) { c.onFatal = h }
}

// WithHeartbeat enables periodic PROC/DISK/SYS telemetry records at level
// through the engine's own pipeline. level selects how much is emitted: 1
// (PROC only), 2 (+DISK), 3 (+SYS). A level of 0 disables heartbeats.
func WithHeartbeat(level int, interval time.Duration) Option {
	return func(c *engineConfig) {
		c.heartbeatLevel = level
		c.heartbeatInterval = interval
	}
}
