package compat

import (
	"strings"

	"github.com/embergo/ember"
)

// FastHTTPAdapter wraps an *ember.Engine to implement fasthttp's Logger
// interface (a single Printf method), grounded on the teacher's
// compat/fasthttp.go.
type FastHTTPAdapter struct {
	engine        *ember.Engine
	defaultLevel  ember.Severity
	levelDetector func(string) (ember.Severity, bool)
}

// FastHTTPOption customizes adapter behavior.
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the level used when the detector finds no signal.
func WithDefaultLevel(level ember.Severity) FastHTTPOption {
	return func(a *FastHTTPAdapter) { a.defaultLevel = level }
}

// WithLevelDetector overrides DetectLogLevel.
func WithLevelDetector(detector func(string) (ember.Severity, bool)) FastHTTPOption {
	return func(a *FastHTTPAdapter) { a.levelDetector = detector }
}

// NewFastHTTPAdapter wraps engine for fasthttp.
func NewFastHTTPAdapter(engine *ember.Engine, opts ...FastHTTPOption) *FastHTTPAdapter {
	a := &FastHTTPAdapter{
		engine:        engine,
		defaultLevel:  ember.Info,
		levelDetector: DetectLogLevel,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Printf implements fasthttp.Logger. fasthttp gives no level of its own, so
// the message content is sniffed for level keywords before falling back to
// defaultLevel.
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	level := a.defaultLevel
	msg := ember.Sprintf(format, args...)
	if a.levelDetector != nil {
		if detected, ok := a.levelDetector(msg); ok {
			level = detected
		}
	}
	a.engine.Log(level, "fasthttp", 0, []byte(msg))
}

// DetectLogLevel sniffs msg for level keywords, case-insensitively.
func DetectLogLevel(msg string) (ember.Severity, bool) {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "fatal") || strings.Contains(lower, "panic"):
		return ember.Fatal, true
	case strings.Contains(lower, "error") || strings.Contains(lower, "failed"):
		return ember.Error, true
	case strings.Contains(lower, "warn") || strings.Contains(lower, "deprecated"):
		return ember.Warn, true
	case strings.Contains(lower, "debug") || strings.Contains(lower, "trace"):
		return ember.Debug, true
	default:
		return ember.Info, false
	}
}
