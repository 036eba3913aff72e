// Package sanitizer provides a fluent and composable interface for sanitizing
// strings based on configurable rules using bitwise filter flags and transforms.
package sanitizer

import (
	"bytes"
	"strconv"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
)

// Filter flags for character matching
const (
	FilterNonPrintable uint64 = 1 << iota // Matches runes not classified as printable by strconv.IsPrint
)

// Transform flags for character transformation
const (
	TransformStrip uint64 = 1 << iota // Removes the character
)

// PolicyPreset defines pre-configured sanitization policies
type PolicyPreset string

const (
	PolicyRaw      PolicyPreset = "raw"       // Raw is a no-op (passthrough)
	PolicyCoreLine PolicyPreset = "core-line" // Policy for the plain "TIMESTAMP [LEVEL] file:line message" line: non-printable runes are removed outright
)

// rule represents a single sanitization rule
type rule struct {
	filter    uint64
	transform uint64
}

// policyRules contains pre-configured rules for each policy
var policyRules = map[PolicyPreset][]rule{
	PolicyRaw:      {},
	PolicyCoreLine: {{filter: FilterNonPrintable, transform: TransformStrip}},
}

// filterCheckers maps individual filter flags to their check functions
var filterCheckers = map[uint64]func(rune) bool{
	FilterNonPrintable: func(r rune) bool { return !strconv.IsPrint(r) },
}

// Sanitizer provides chainable text sanitization
type Sanitizer struct {
	rules []rule
	buf   []byte
}

// New creates a new Sanitizer instance
func New() *Sanitizer {
	return &Sanitizer{
		rules: []rule{},
		buf:   make([]byte, 0, 256),
	}
}

// Rule adds a custom rule to the sanitizer (appended, earliest rule applies first)
func (s *Sanitizer) Rule(filter uint64, transform uint64) *Sanitizer {
	// Append rule in natural order
	s.rules = append(s.rules, rule{filter: filter, transform: transform})
	return s
}

// Policy applies a pre-configured policy to the sanitizer (appended)
func (s *Sanitizer) Policy(preset PolicyPreset) *Sanitizer {
	if rules, ok := policyRules[preset]; ok {
		s.rules = append(s.rules, rules...)
	}
	return s
}

// Sanitize applies all configured rules to the input string
func (s *Sanitizer) Sanitize(data string) string {
	// Reset buffer
	s.buf = s.buf[:0]

	// Process each rune
	for _, r := range data {
		matched := false
		// Check rules in order (first match wins)
		for _, rl := range s.rules {
			if matchesFilter(r, rl.filter) {
				applyTransform(&s.buf, r, rl.transform)
				matched = true
				break
			}
		}
		// If no rule matched, append original rune
		if !matched {
			s.buf = utf8.AppendRune(s.buf, r)
		}
	}

	return string(s.buf)
}

// matchesFilter checks if a rune matches any filter in the mask
func matchesFilter(r rune, filterMask uint64) bool {
	for flag, checker := range filterCheckers {
		if (filterMask&flag) != 0 && checker(r) {
			return true
		}
	}
	return false
}

// applyTransform applies the specified transform to the buffer
func applyTransform(buf *[]byte, r rune, transformMask uint64) {
	switch {
	case (transformMask & TransformStrip) != 0:
		// Do nothing (strip)
	}
}

// StripNonPrintable appends src to dst with every non-printable rune
// dropped, without allocating an intermediate string. It is the hot-path
// equivalent of New().Policy(PolicyCoreLine).Sanitize(string(src)), used by
// the drain loop where a per-record string conversion would cost an
// allocation per line.
func StripNonPrintable(dst, src []byte) []byte {
	for len(src) > 0 {
		r, size := utf8.DecodeRune(src)
		if strconv.IsPrint(r) {
			dst = utf8.AppendRune(dst, r)
		}
		src = src[size:]
	}
	return dst
}

// spewConfig mirrors the teacher's dump settings for Logger.Write's raw
// escape hatch: indented, bounded depth, no pointer addresses or
// capacities in the output, and deterministic key ordering.
var spewConfig = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// AppendRawValue appends v's raw representation to dst: strings and []byte
// pass through unchanged, nil becomes the literal "nil", and any other
// value is dumped with go-spew. It backs the engine's LogRaw escape hatch,
// grounded on the teacher's Logger.Write/FlagRaw path (interface.go,
// logger.go) which bypasses the templated formatter entirely for arbitrary
// typed values.
func AppendRawValue(dst []byte, v any) []byte {
	switch x := v.(type) {
	case []byte:
		return append(dst, x...)
	case string:
		return append(dst, x...)
	case nil:
		return append(dst, "nil"...)
	default:
		var b bytes.Buffer
		spewConfig.Fdump(&b, v)
		return append(dst, bytes.TrimSpace(b.Bytes())...)
	}
}
