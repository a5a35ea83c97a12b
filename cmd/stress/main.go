// FILE: lixenwraith/fixlog/cmd/stress/main.go
package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/lixenwraith/fixlog"
)

const (
	totalBursts    = 100
	logsPerBurst   = 500
	maxMessageSize = 3000
	numWorkers     = 64
)

const configFile = "stress_config.toml"

// Example TOML content for stress test
var tomlContent = `
# Example stress_config.toml
[log]
  level = "debug"
  name = "stress_test"
  directory = "./logs"
  extension = "log"
  enable_file = true
  enable_stdout = false
  roll_size_kb = 1000 # Force frequent rotation (1MB)
  check_every_n = 64
  flush_interval_s = 1
  file_buffer_kb = 256
  background_flush = true
  heartbeat_interval_s = 2
`

var levels = []fixlog.Severity{
	fixlog.LevelDebug,
	fixlog.LevelInfo,
	fixlog.LevelWarn,
	fixlog.LevelError,
}

var logger *fixlog.Logger

func generateRandomMessage(rng *rand.Rand, size int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(chars[rng.Intn(len(chars))])
	}
	return sb.String()
}

// logBurst simulates a burst of logging activity
func logBurst(rng *rand.Rand, burstID int) {
	for i := 0; i < logsPerBurst; i++ {
		level := levels[rng.Intn(len(levels))]
		msg := generateRandomMessage(rng, rng.Intn(maxMessageSize)+10)

		var r *fixlog.Record
		switch level {
		case fixlog.LevelDebug:
			r = logger.Debug()
		case fixlog.LevelInfo:
			r = logger.Info()
		case fixlog.LevelWarn:
			r = logger.Warn()
		case fixlog.LevelError:
			r = logger.Error()
		}
		r.Str(msg).
			Str(" wkr=").Int(burstID % numWorkers).
			Str(" bst=").Int(burstID).
			Str(" seq=").Int(i).
			Str(" rnd=").Int64(rng.Int63()).
			Send()
	}
}

// worker goroutine function
func worker(id int, burstChan chan int, wg *sync.WaitGroup, completedBursts *atomic.Int64) {
	defer wg.Done()
	rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)))
	for burstID := range burstChan {
		logBurst(rng, burstID)
		completed := completedBursts.Add(1)
		if completed%10 == 0 || completed == totalBursts {
			fmt.Printf("\rProgress: %d/%d bursts completed", completed, totalBursts)
		}
	}
}

func main() {
	fmt.Println("--- Logger Stress Test ---")

	if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write dummy config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created dummy config file: %s\n", configFile)
	logsDir := "./logs"       // Match config
	_ = os.RemoveAll(logsDir) // Clean previous run's logs directory before starting

	cfg, err := fixlog.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v.\n", err)
		os.Exit(1)
	}

	logger = fixlog.NewLogger()
	if err := logger.ApplyConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Logger initialized. Logs will be written to: %s\n", logsDir)

	fmt.Printf("Starting stress test: %d workers, %d bursts, %d logs/burst.\n",
		numWorkers, totalBursts, logsPerBurst)
	fmt.Println("Press Ctrl+C to stop early.")

	burstChan := make(chan int, numWorkers)
	var wg sync.WaitGroup
	completedBursts := atomic.Int64{}
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	stopChan := make(chan struct{})

	go func() {
		<-sigChan
		fmt.Println("\n[Signal Received] Stopping burst generation...")
		close(stopChan)
	}()

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go worker(i, burstChan, &wg, &completedBursts)
	}

	startTime := time.Now()
	for i := 1; i <= totalBursts; i++ {
		select {
		case burstChan <- i:
		case <-stopChan:
			fmt.Println("[Signal Received] Halting burst submission.")
			goto endLoop
		}
	}
endLoop:
	close(burstChan)

	fmt.Println("\nWaiting for workers to finish...")
	wg.Wait()
	duration := time.Since(startTime)
	finalCompleted := completedBursts.Load()

	fmt.Printf("\n--- Test Finished ---")
	fmt.Printf("\nCompleted %d/%d bursts in %v\n", finalCompleted, totalBursts, duration.Round(time.Millisecond))
	if finalCompleted > 0 && duration.Seconds() > 0 {
		logsPerSec := float64(finalCompleted*logsPerBurst) / duration.Seconds()
		fmt.Printf("Approximate Logs/sec: %.2f\n", logsPerSec)
	}

	fmt.Println("Shutting down logger...")
	if err := logger.Shutdown(); err != nil {
		fmt.Fprintf(os.Stderr, "Logger shutdown error: %v\n", err)
	} else {
		fmt.Println("Logger shutdown complete.")
	}

	files, _ := filepath.Glob(filepath.Join(logsDir, "stress_test.*"))
	var oversized int
	for _, f := range files {
		if fi, err := os.Stat(f); err == nil && fi.Size() > cfg.RollSizeKB*1000 {
			oversized++
		}
	}
	fmt.Printf("Rotated into %d files, %d above the roll size.\n", len(files), oversized)
}
