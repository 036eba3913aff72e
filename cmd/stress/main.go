// Command stress hammers an *ember.Engine from many concurrent producers to
// exercise the ring buffer's drop policy under contention, grounded on the
// teacher's cmd/stress/main.go, adapted from the channel-based config
// system to ember's Option/Builder construction.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/embergo/ember"
	"golang.org/x/sync/errgroup"
)

const (
	totalBursts    = 100
	logsPerBurst   = 500
	maxMessageSize = 10000
	numWorkers     = 500
)

var levels = []ember.Severity{ember.Debug, ember.Info, ember.Warn, ember.Error}

var engine *ember.Engine

func generateRandomMessage(size int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(chars[rand.Intn(len(chars))])
	}
	return sb.String()
}

func logBurst(burstID int) {
	for i := 0; i < logsPerBurst; i++ {
		level := levels[rand.Intn(len(levels))]
		msgSize := rand.Intn(maxMessageSize) + 10
		engine.Logf(level, "%s wkr=%d bst=%d seq=%d rnd=%d",
			generateRandomMessage(msgSize), burstID%numWorkers, burstID, i, rand.Int63())
	}
}

func worker(burstChan chan int, completed *atomic.Int64) error {
	for burstID := range burstChan {
		logBurst(burstID)
		if n := completed.Add(1); n%10 == 0 || n == totalBursts {
			fmt.Printf("\rProgress: %d/%d bursts completed", n, totalBursts)
		}
	}
	return nil
}

func main() {
	fmt.Println("--- ember Stress Test ---")

	logsDir := "./logs"
	_ = os.RemoveAll(logsDir)
	_ = os.MkdirAll(logsDir, 0755)

	var err error
	engine, err = ember.NewBuilder().
		FilePath(logsDir + "/stress_test.log").
		Level(ember.Debug).
		MaxFileSizeMB(1). // force frequent rotation
		RingCapacity(1 << 16).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build engine: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Engine initialized. Logs will be written to: %s\n", logsDir)

	fmt.Printf("Starting stress test: %d workers, %d bursts, %d logs/burst.\n",
		numWorkers, totalBursts, logsPerBurst)
	fmt.Println("Watch the reported dropped-log count at the end.")
	fmt.Println("Press Ctrl+C to stop early.")

	burstChan := make(chan int, numWorkers)
	var completed atomic.Int64
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	stopChan := make(chan struct{})

	go func() {
		<-sigChan
		fmt.Println("\n[Signal Received] Stopping burst generation...")
		close(stopChan)
	}()

	var g errgroup.Group
	for i := 0; i < numWorkers; i++ {
		g.Go(func() error { return worker(burstChan, &completed) })
	}

	startTime := time.Now()
loop:
	for i := 1; i <= totalBursts; i++ {
		select {
		case burstChan <- i:
		case <-stopChan:
			fmt.Println("[Signal Received] Halting burst submission.")
			break loop
		}
	}
	close(burstChan)

	fmt.Println("\nWaiting for workers to finish...")
	_ = g.Wait()
	duration := time.Since(startTime)
	finalCompleted := completed.Load()

	fmt.Printf("\n--- Test Finished ---\n")
	fmt.Printf("Completed %d/%d bursts in %v\n", finalCompleted, totalBursts, duration.Round(time.Millisecond))
	if finalCompleted > 0 && duration.Seconds() > 0 {
		fmt.Printf("Approximate Logs/sec: %.2f\n", float64(finalCompleted*logsPerBurst)/duration.Seconds())
	}
	fmt.Printf("Dropped logs: %d, rotations: %d\n", engine.DroppedLogs(), engine.TotalRotations())

	fmt.Println("Shutting down engine...")
	if err := engine.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "engine close error: %v\n", err)
	} else {
		fmt.Println("Engine closed.")
	}
}
