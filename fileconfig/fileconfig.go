// Package fileconfig implements the minimal external configuration-file
// contract spec.md §6 names: a line-oriented key=value file recognizing
// "verbosity" and "logFilePath", consumed by whatever wires an engine
// together (not by the engine itself). It is a direct port of zerg's
// loadConfiguration/stringToVerbosity free functions from
// original_source/include/zerg/global/file_logger.hpp.
package fileconfig

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/embergo/ember"
)

// Settings holds the two keys the minimal configuration file contract
// recognizes.
type Settings struct {
	Verbosity   ember.Severity
	LogFilePath string
}

// Load opens path and parses it line by line. Lines without an '=' are
// skipped. Unrecognized keys are ignored, matching loadConfiguration's
// silent-skip behavior. A file-open failure is fatal to the caller (spec.md
// §7: "Configuration file open failure ... Fatal to the caller of the
// loader; the engine is unaffected"), returned here as a plain error rather
// than a panic since Go callers are expected to check it explicitly.
func Load(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fileconfig: could not open configuration file: %w", err)
	}
	defer f.Close()

	s := &Settings{Verbosity: ember.Debug}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		key, value, ok := splitKeyValue(line)
		if !ok {
			continue
		}
		switch key {
		case "verbosity":
			s.Verbosity = parseVerbosity(value)
		case "logFilePath":
			s.LogFilePath = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fileconfig: reading configuration file: %w", err)
	}
	return s, nil
}

func splitKeyValue(line string) (key, value string, ok bool) {
	idx := strings.IndexByte(line, '=')
	if idx < 0 {
		return "", "", false
	}
	return line[:idx], line[idx+1:], true
}

// parseVerbosity maps the configuration file's textual level to a Severity,
// defaulting to Debug for unrecognized values (stringToVerbosity's
// behavior).
func parseVerbosity(value string) ember.Severity {
	switch value {
	case "DEBUG":
		return ember.Debug
	case "INFO":
		return ember.Info
	case "WARN":
		return ember.Warn
	case "ERROR":
		return ember.Error
	case "FATAL":
		return ember.Fatal
	default:
		return ember.Debug
	}
}
