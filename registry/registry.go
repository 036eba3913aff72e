// Package registry is a process-global, path-keyed cache of *ember.Engine
// instances, the Go counterpart of zerg's getFileLogger/resetFileLogger:
// callers that log to the same file from unrelated parts of a program share
// one engine (and therefore one ring, one drain goroutine, one sink) instead
// of each opening the file for themselves.
package registry

import (
	"sync"

	"github.com/embergo/ember"
)

var (
	mu        sync.Mutex
	instances = make(map[string]*ember.Engine)
	logDir    = "./"
)

// SetDirectory sets the directory prefix applied to filenames passed to Get
// that are not already absolute, mirroring zerg's setLogFilePath. It affects
// only subsequent Get calls.
func SetDirectory(dir string) {
	mu.Lock()
	defer mu.Unlock()
	logDir = dir
}

// Get returns the engine registered for filename, creating one with opts if
// none exists yet. opts are ignored on a cache hit — the first caller to
// register a path wins the configuration for that path, matching
// getFileLogger's shared-instance semantics.
func Get(filename string, opts ...ember.Option) (*ember.Engine, error) {
	mu.Lock()
	defer mu.Unlock()

	fullPath := resolve(filename)
	if e, ok := instances[fullPath]; ok {
		return e, nil
	}

	e, err := ember.New(append([]ember.Option{ember.WithFilePath(fullPath)}, opts...)...)
	if err != nil {
		return nil, err
	}
	instances[fullPath] = e
	return e, nil
}

// Reset closes and evicts the engine registered for filename, if any, so
// that the next Get reconstructs it. This is the Go counterpart of
// resetFileLogger, used mainly by tests that need a clean engine per case.
func Reset(filename string) error {
	mu.Lock()
	defer mu.Unlock()

	fullPath := resolve(filename)
	e, ok := instances[fullPath]
	if !ok {
		return nil
	}
	delete(instances, fullPath)
	return e.Close()
}

// ResetAll closes and evicts every registered engine.
func ResetAll() error {
	mu.Lock()
	defer mu.Unlock()

	var first error
	for path, e := range instances {
		if err := e.Close(); err != nil && first == nil {
			first = err
		}
		delete(instances, path)
	}
	return first
}

func resolve(filename string) string {
	if filename == "" {
		filename = "global_logfile.log"
	}
	if len(filename) > 0 && (filename[0] == '/' || filename[0] == '\\') {
		return filename
	}
	return logDir + filename
}
