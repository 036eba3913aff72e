// Command heartbeat exercises each heartbeat level (0-3) against a fresh
// engine in turn, grounded on the teacher's cmd/heartbeat/main.go. Unlike
// the teacher's reconfigurable Logger, an *ember.Engine's heartbeat level is
// fixed at construction (spec.md §6 names no hot-reload surface), so each
// level gets its own engine instead of one logger being reconfigured in
// place.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/embergo/ember"
)

func main() {
	if err := os.MkdirAll("./logs", 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logs directory: %v\n", err)
		os.Exit(1)
	}

	levels := []struct {
		level       int
		description string
	}{
		{0, "heartbeats disabled"},
		{1, "PROC heartbeats only"},
		{2, "PROC+DISK heartbeats"},
		{3, "PROC+DISK+SYS heartbeats"},
	}

	for _, lc := range levels {
		fmt.Printf("\n--- Testing heartbeat level %d: %s ---\n", lc.level, lc.description)

		opts := []ember.Option{
			ember.WithFilePath(fmt.Sprintf("./logs/heartbeat_level_%d.log", lc.level)),
			ember.WithLevel(ember.Debug),
		}
		if lc.level > 0 {
			opts = append(opts, ember.WithHeartbeat(lc.level, 5*time.Second))
		}

		engine, err := ember.New(opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to build engine: %v\n", err)
			os.Exit(1)
		}

		engine.Infof("heartbeat test started level=%d description=%s", lc.level, lc.description)
		for j := 0; j < 10; j++ {
			engine.Debugf("debug test log iteration=%d", j)
			engine.Infof("info test log iteration=%d", j)
			engine.Warnf("warning test log iteration=%d", j)
			engine.Errorf("error test log iteration=%d", j)
			time.Sleep(100 * time.Millisecond)
		}

		waitTime := 6 * time.Second
		fmt.Printf("waiting %v for heartbeats to generate...\n", waitTime)
		time.Sleep(waitTime)

		engine.Infof("heartbeat test completed level=%d", lc.level)

		if err := engine.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to close engine: %v\n", err)
		}
	}

	fmt.Println("\nheartbeat test program completed successfully")
	fmt.Println("check ./logs for generated log files")
}
