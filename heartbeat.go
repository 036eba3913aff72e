package ember

import (
	"runtime"
	"time"
)

// startHeartbeat launches the ticker goroutine. Unlike the teacher's
// writeHeartbeatRecord (a side channel writing the file handle directly),
// heartbeat records go through the engine's normal Log path, per
// SPEC_FULL.md item 13 — the cond-variable drain loop has no select-based
// multiplexing point to splice a ticker case into, so the ticker runs as its
// own goroutine and calls the public API like any other producer.
func (e *Engine) startHeartbeat() {
	e.heartbeatStop = make(chan struct{})
	e.heartbeatDone = make(chan struct{})
	go e.heartbeatLoop()
}

func (e *Engine) stopHeartbeat() {
	if e.heartbeatStop == nil {
		return
	}
	close(e.heartbeatStop)
	<-e.heartbeatDone
}

func (e *Engine) heartbeatLoop() {
	defer close(e.heartbeatDone)

	interval := e.heartbeatInterval
	if interval <= 0 {
		interval = defaultHeartbeatInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-e.heartbeatStop:
			return
		case <-ticker.C:
			e.emitHeartbeat()
		}
	}
}

func (e *Engine) emitHeartbeat() {
	seq := e.heartbeatSeq.Add(1)

	e.Log(Proc, "heartbeat", 0, []byte(Sprintf(
		"seq=%d uptime=%s processed=%d dropped=%d rotations=%d",
		seq, time.Since(e.startTime), e.totalLogsProcessed.Load(), e.droppedLogs.Load(), e.totalRotations.Load(),
	)))

	if e.heartbeatLevel < 2 {
		return
	}
	e.Log(Disk, "heartbeat", 0, []byte(Sprintf("current_size=%d max_size=%d", e.currentFileSize(), e.maxFileSize)))

	if e.heartbeatLevel < 3 {
		return
	}
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	e.Log(Sys, "heartbeat", 0, []byte(Sprintf(
		"alloc_mb=%.1f sys_mb=%.1f goroutines=%d num_gc=%d",
		float64(mem.Alloc)/(1024*1024), float64(mem.Sys)/(1024*1024), runtime.NumGoroutine(), mem.NumGC,
	)))
}
