package ember

import "time"

// Builder provides a fluent alternative to passing Option values directly
// to New, grounded on the teacher's builder.go.
//
// Example:
//
//	e, err := ember.NewBuilder().
//		FilePath("/var/log/app/app.log").
//		Level(ember.Info).
//		MaxFileSizeMB(50).
//		Build()
type Builder struct {
	opts []Option
	err  error
}

// NewBuilder starts a fluent Engine construction.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) FilePath(path string) *Builder {
	b.opts = append(b.opts, WithFilePath(path))
	return b
}

func (b *Builder) Level(level Severity) *Builder {
	b.opts = append(b.opts, WithLevel(level))
	return b
}

// LevelString accepts a textual level name (DEBUG/INFO/WARN/ERROR/FATAL)
// and records a build error if it does not parse, matching the teacher's
// deferred-error builder pattern.
func (b *Builder) LevelString(name string) *Builder {
	lvl, err := ParseSeverity(name)
	if err != nil {
		b.err = combineErrors(b.err, err)
		return b
	}
	return b.Level(lvl)
}

func (b *Builder) RingCapacity(capacity int) *Builder {
	b.opts = append(b.opts, WithRingCapacity(capacity))
	return b
}

func (b *Builder) MaxFileSizeMB(mb int64) *Builder {
	b.opts = append(b.opts, WithMaxFileSize(mb*1024*1024))
	return b
}

func (b *Builder) BatchSize(n int) *Builder {
	b.opts = append(b.opts, WithBatchSize(n))
	return b
}

func (b *Builder) Formatter(f MessageFormatter) *Builder {
	b.opts = append(b.opts, WithFormatter(f))
	return b
}

func (b *Builder) ErrorHandler(h ErrorHandler) *Builder {
	b.opts = append(b.opts, WithErrorHandler(h))
	return b
}

func (b *Builder) FatalHandler(h FatalHandler) *Builder {
	b.opts = append(b.opts, WithFatalHandler(h))
	return b
}

func (b *Builder) Heartbeat(level int, interval time.Duration) *Builder {
	b.opts = append(b.opts, WithHeartbeat(level, interval))
	return b
}

// Build validates accumulated builder-time errors, then delegates to New.
func (b *Builder) Build() (*Engine, error) {
	if b.err != nil {
		return nil, b.err
	}
	return New(b.opts...)
}
