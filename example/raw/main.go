// FILE: lixenwraith/fixlog/example/raw/main.go
package main

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/lixenwraith/fixlog"
)

// TestPayload has no direct encoding and is dumped on one line
type TestPayload struct {
	RequestID uint64
	User      string
	Metrics   map[string]float64
}

func main() {
	fmt.Println("--- Value Encoding Test ---")

	byteRecord := []byte("binary\ndata\twith\x00null")
	structRecord := TestPayload{
		RequestID: 9223372036854775807,
		User:      "test_user",
		Metrics: map[string]float64{
			"latency_ms":  15.7,
			"cpu_percent": 88.2,
		},
	}

	// Str passes through the sanitizer, Bytes is always copied verbatim
	for _, policy := range []string{"raw", "txt", "escape", "shell"} {
		fmt.Printf("\n[sanitization=%s]\n", policy)
		logger := fixlog.NewLogger()
		if err := logger.ApplyOverride("sanitization="+policy, "level=trace"); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to configure logger: %v\n", err)
			os.Exit(1)
		}

		logger.Info().Str("str: ").Str(string(byteRecord)).Send()
		logger.Info().Str("any: ").Any(structRecord).Send()
		logger.Debug().Str("shell: ").Str("$(rm -rf ~); echo `id`").Send()
		_ = logger.Shutdown()
	}

	fmt.Println("\n[Scalars]")
	logger := fixlog.NewLogger()
	logger.Info().
		Str("bool=").Bool(true).
		Str(" int=").Int(-42).
		Str(" u64=").Uint64(structRecord.RequestID).
		Str(" f64=").Float64(1.0/3).
		Str(" fmt=").Fmt("%08.3f", 3.14159).
		Send()
	logger.Info().
		Str("si=").SI(1_234_567).
		Str(" iec=").IEC(3 << 20).
		Str(" ptr=").Any(uintptr(0xdeadbeef)).
		Str(" nil=").Any(nil).
		Send()

	fmt.Println("\n[System errors]")
	logger.SysError(syscall.ENOENT).Str("open config").Send()
	logger.SysError(errors.New("not an errno")).Str("plain error").Send()
	_ = logger.Shutdown()

	fmt.Println("\n--- Test Complete ---")
}
