package sink

import (
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Lumberjack adapts gopkg.in/natefinch/lumberjack.v2 as a Sink, for
// applications whose operations tooling already expects lumberjack's
// naming and retention conventions. Installed through WithSink, it gives
// the engine no backing path, so the engine's own size-based rotation (see
// Engine.rotate) is a no-op and lumberjack's MaxSizeMB alone governs
// rotation.
type Lumberjack struct {
	mu     sync.Mutex
	logger *lumberjack.Logger
	onErr  ErrorHandler
}

// LumberjackOptions mirrors the subset of lumberjack.Logger fields an
// ember caller is expected to tune.
type LumberjackOptions struct {
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// NewLumberjack constructs a lumberjack-backed sink.
func NewLumberjack(opts LumberjackOptions, onErr ErrorHandler) *Lumberjack {
	if onErr == nil {
		onErr = defaultErrorHandler
	}
	return &Lumberjack{
		logger: &lumberjack.Logger{
			Filename:   opts.Filename,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		},
		onErr: onErr,
	}
}

func (s *Lumberjack) Write(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.logger.Write(p)
	if err != nil {
		s.onErr(err)
	}
	return err
}

func (s *Lumberjack) WriteNewline() error {
	return s.Write([]byte{'\n'})
}

// Flush is a no-op: lumberjack writes straight through to the OS file
// handle with no additional user-space buffering of its own.
func (s *Lumberjack) Flush() error {
	return nil
}

func (s *Lumberjack) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logger.Close()
}
