package ember

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestConcurrentProducersAreThreadSafe drives many goroutines at once
// against a single Engine, matching the concurrency property spec.md §8
// names for the MPMC ring: no record is corrupted or lost beyond the
// engine's documented drop policy.
func TestConcurrentProducersAreThreadSafe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concurrent.log")
	e, err := New(WithFilePath(path), WithRingCapacity(1<<14), WithLevel(Debug))
	require.NoError(t, err)
	defer e.Close()

	const producers = 10
	const perProducer = 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				e.Logf(Info, "producer=%d seq=%d", id, i)
			}
		}(p)
	}
	wg.Wait()
	require.True(t, e.WaitUntilEmpty(2*time.Second))
	require.NoError(t, e.Sync())

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(contents)), "\n")

	want := producers*perProducer - int(e.DroppedLogs())
	require.Len(t, lines, want)
}

func TestHeartbeatEmitsProcRecordsAtLevelOne(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heartbeat.log")
	e, err := New(WithFilePath(path), WithHeartbeat(1, 30*time.Millisecond))
	require.NoError(t, err)
	defer e.Close()

	time.Sleep(120 * time.Millisecond)
	require.NoError(t, e.Sync())

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(contents), "[PROC]")
	require.NotContains(t, string(contents), "[DISK]")
	require.NotContains(t, string(contents), "[SYS]")
}

func TestHeartbeatEmitsDiskAndSysAtLevelThree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heartbeat3.log")
	e, err := New(WithFilePath(path), WithHeartbeat(3, 30*time.Millisecond))
	require.NoError(t, err)
	defer e.Close()

	time.Sleep(120 * time.Millisecond)
	require.NoError(t, e.Sync())

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(contents), "[PROC]")
	require.Contains(t, string(contents), "[DISK]")
	require.Contains(t, string(contents), "[SYS]")
}

func TestFatalfSyncsBeforeInvokingHandler(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fatal.log")
	called := false
	e, err := New(WithFilePath(path), WithFatalHandler(func() { called = true }))
	require.NoError(t, err)
	defer e.Close()

	e.Fatalf("unrecoverable condition")
	require.True(t, called)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(contents), "unrecoverable condition")
}
