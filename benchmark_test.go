package ember

import (
	"path/filepath"
	"testing"
)

// BenchmarkLogf benchmarks the formatted producer path, grounded on the
// teacher's BenchmarkLoggerInfo.
func BenchmarkLogf(b *testing.B) {
	e, _ := New(WithFilePath(filepath.Join(b.TempDir(), "bench.log")), WithRingCapacity(1<<16))
	defer e.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Logf(Info, "benchmark message %d", i)
	}
}

// BenchmarkLog benchmarks the raw producer path with a pre-formatted
// message, bypassing MessageFormatter entirely.
func BenchmarkLog(b *testing.B) {
	e, _ := New(WithFilePath(filepath.Join(b.TempDir(), "bench.log")), WithRingCapacity(1<<16))
	defer e.Close()

	msg := []byte("benchmark message")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Log(Info, "bench.go", 1, msg)
	}
}

// BenchmarkConcurrentLogf benchmarks the engine's performance under
// concurrent producer load, grounded on the teacher's
// BenchmarkConcurrentLogging.
func BenchmarkConcurrentLogf(b *testing.B) {
	e, _ := New(WithFilePath(filepath.Join(b.TempDir(), "bench.log")), WithRingCapacity(1<<16))
	defer e.Close()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			e.Logf(Info, "concurrent %d", i)
			i++
		}
	})
}
