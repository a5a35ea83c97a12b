// FILE: lixenwraith/fixlog/example/hooks/main.go
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lixenwraith/fixlog"
)

// Routes records through custom hooks and shows the FATAL sequence without
// terminating the process
func main() {
	var lines []string

	logger, err := fixlog.NewBuilder().
		LevelString("debug").
		Output(func(msg []byte) {
			lines = append(lines, strings.TrimSuffix(string(msg), "\n"))
		}).
		Flush(func() {
			fmt.Printf("flush after %d records\n", len(lines))
		}).
		Exit(func(code int) {
			fmt.Printf("exit(%d) requested, continuing\n", code)
		}).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}

	logger.Trace().Msg("below threshold, never assembled")
	logger.Debug().Str("cache warm entries=").Int(128).Send()
	logger.Info().Str("listening port=").Int(8080).Send()
	logger.Fatal().Msg("unrecoverable state")

	for i, line := range lines {
		fmt.Printf("%d: %s\n", i, line)
	}

	_ = logger.Shutdown()
}
