// FILE: lixenwraith/fixlog/cmd/simple/main.go
package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/lixenwraith/fixlog"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[log]
  level = "debug"
  name = "simple"
  directory = "./simple_logs"
  enable_file = true
  enable_stdout = true
  roll_size_kb = 1024
  flush_interval_s = 1
  check_every_n = 8
  sanitization = "escape"
  # Other settings use defaults
`

func main() {
	fmt.Println("--- Simple Logger Example ---")

	if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write dummy config: %v\n", err)
	} else {
		fmt.Printf("Created dummy config file: %s\n", configFile)
	}

	cfg, err := fixlog.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := fixlog.ApplyConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Logger initialized.")

	fixlog.Debug().Str("This is a debug message. user_id=").Int(123).Send()
	fixlog.Info().Msg("Application starting...")
	fixlog.Warn().Str("Potential issue detected. threshold=").Float64(0.95).Send()
	fixlog.Error().Str("An error occurred! code=").Int(500).Send()
	fixlog.Info().Str("Multi-line input\nstays on one line").Send()

	if _, err := os.Open("/does/not/exist"); err != nil {
		fixlog.SysError(err).Str("open failed").Send()
	}

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			fixlog.Infof("Goroutine started id=%d", id)
			time.Sleep(time.Duration(50+id*50) * time.Millisecond)
			fixlog.Trace().Str("Goroutine finished id=").Int(id).Send()
			fixlog.Debug().Str("Goroutine finished id=").Int(id).Send()
		}(i)
	}

	wg.Wait()
	fmt.Println("Goroutines finished.")

	fmt.Println("Shutting down logger...")
	if err := fixlog.Shutdown(); err != nil {
		fmt.Fprintf(os.Stderr, "Logger shutdown error: %v\n", err)
	} else {
		fmt.Println("Logger shutdown complete.")
	}

	fmt.Println("--- Example Finished ---")
	fmt.Printf("Check log files in './simple_logs' and the config '%s'.\n", configFile)
}
