// Command simple demonstrates loading an *ember.Engine from a TOML
// configuration file, grounded on the teacher's cmd/simple/main.go
// (adapted from lixenwraith/config's raw Load/Save round-trip to ember's
// NewConfigFromFile + ToOptions bridge).
package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/embergo/ember"
)

const configFile = "simple_config.toml"

var tomlContent = `[ember]
level = "DEBUG"
directory = "./simple_logs"
name = "app"
extension = "log"
ring_capacity = 1024
max_size_mb = 10
batch_size = 64
heartbeat_level = 1
heartbeat_interval_s = 30
`

func main() {
	fmt.Println("--- Simple Engine Example ---")

	if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write config file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote config file: %s\n", configFile)

	cfg, err := ember.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	engine, err := ember.New(cfg.ToOptions()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build engine: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("engine initialized.")

	engine.Debugf("this is a debug message user_id=%d", 123)
	engine.Infof("application starting")
	engine.Warnf("potential issue detected threshold=%.2f", 0.95)
	engine.Errorf("an error occurred code=%d", 500)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			engine.Infof("goroutine started id=%d", id)
			time.Sleep(time.Duration(50+id*50) * time.Millisecond)
			engine.Infof("goroutine finished id=%d", id)
		}(i)
	}
	wg.Wait()
	fmt.Println("goroutines finished.")

	fmt.Println("shutting down engine...")
	if err := engine.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "engine close error: %v\n", err)
	} else {
		fmt.Println("engine shutdown complete.")
	}

	fmt.Println("--- Example Finished ---")
	fmt.Printf("check log files in './simple_logs' and config '%s'.\n", configFile)
}
