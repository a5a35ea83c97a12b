// FILE: lixenwraith/fixlog/cmd/heartbeat/main.go
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/fixlog"
)

func main() {
	// Test cycle: disabled -> fast -> slow -> disabled
	intervals := []struct {
		seconds     int64
		description string
	}{
		{0, "Heartbeats disabled"},
		{1, "Heartbeat every second"},
		{3, "Heartbeat every three seconds"},
		{0, "Heartbeats disabled (final)"},
	}

	// Create a single logger instance that we'll reconfigure
	logger := fixlog.NewLogger()

	for _, hb := range intervals {
		overrides := []string{
			"directory=./logs",
			"name=heartbeat",
			"enable_file=true",
			"level=debug",
			fmt.Sprintf("heartbeat_interval_s=%d", hb.seconds),
		}

		if err := logger.ApplyOverride(overrides...); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to configure logger: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("\n--- Testing heartbeat interval %ds: %s ---\n", hb.seconds, hb.description)
		logger.Info().Str("Heartbeat test started interval=").Int64(hb.seconds).Send()

		// Generate some records to move the heartbeat counters
		for j := 0; j < 10; j++ {
			logger.Debug().Str("Debug test log iteration=").Int(j).Send()
			logger.Info().Str("Info test log iteration=").Int(j).Send()
			logger.Warn().Str("Warning test log iteration=").Int(j).Send()
			logger.Error().Str("Error test log iteration=").Int(j).Send()
			time.Sleep(100 * time.Millisecond)
		}

		waitTime := 4 * time.Second
		fmt.Printf("Waiting %v for heartbeats to generate...\n", waitTime)
		time.Sleep(waitTime)

		logger.Info().Str("Heartbeat test completed interval=").Int64(hb.seconds).Send()
	}

	if err := logger.Shutdown(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to shut down logger: %v\n", err)
	}

	fmt.Println("\nHeartbeat test program completed successfully")
	fmt.Println("Check logs directory for generated log files")
}
