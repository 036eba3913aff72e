// Package caller stands in for the __FILE__/__LINE__ macros the original
// C++ backend injects at each call site (cpp_log in
// original_source/include/zerg/global/file_logger.hpp). Go has no
// preprocessor, so the idiomatic substitute is a thin runtime.Caller
// wrapper invoked by the engine's own Logf/Debugf/... methods.
package caller

import "runtime"

// Info reports the file and line of the caller skip frames above its own
// caller. skip=0 means "whoever called Info"; the engine's Logf passes
// skip=1 so the reported frame is Logf's own caller, and its convenience
// methods (Debugf, Infof, ...) go through logf, which passes skip=2 to skip
// both itself and the convenience method.
func Info(skip int) (file string, line int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown", 0
	}
	return file, line
}
