// Package linefmt renders a log record into the single-line, human-readable
// format the core engine writes to its sink: "TIMESTAMP [LEVEL]
// basename:line message\n". This is the only line format the module
// writes, so it gets a small, allocation-conscious renderer of its own.
package linefmt

import (
	"strconv"
	"time"

	"github.com/embergo/ember/sanitizer"
)

const timestampLayout = "2006-01-02 15:04:05"

// Render appends the formatted line, including its trailing newline, to dst
// and returns the extended slice. message is assumed already expanded
// (template + args resolved by the caller's MessageFormatter); Render only
// sanitizes and lays out bytes, it does no formatting of its own.
func Render(dst []byte, when time.Time, level string, file string, line int, message []byte) []byte {
	dst = when.AppendFormat(dst, timestampLayout)
	dst = append(dst, " ["...)
	dst = append(dst, level...)
	dst = append(dst, "] "...)
	dst = append(dst, basename(file)...)
	dst = append(dst, ':')
	dst = strconv.AppendInt(dst, int64(line), 10)
	dst = append(dst, ' ')
	dst = sanitizer.StripNonPrintable(dst, message)
	dst = append(dst, '\n')
	return dst
}

// basename returns the portion of path after the last '/' or '\\', matching
// the core contract's definition rather than filepath.Base's (which also
// special-cases trailing separators and empty paths we never see here since
// file is always a caller-supplied source file name).
func basename(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			return path[i+1:]
		}
	}
	return path
}
