// FILE: lixenwraith/fixlog/cmd/reconfig/main.go
package main

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/fixlog"
)

// Simulate rapid reconfiguration under constant logging
func main() {
	var count atomic.Int64
	var stop atomic.Bool

	err := fixlog.ApplyOverride("enable_file=true", "directory=./logs", "name=reconfig", "enable_stdout=false")
	if err != nil {
		fmt.Printf("Initial config error: %v\n", err)
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; !stop.Load(); i++ {
			fixlog.Info().Str("Test log ").Int(i).Send()
			count.Add(1)
			time.Sleep(time.Millisecond)
		}
	}()

	// Each reconfiguration swaps in a new file sink
	for i := 0; i < 10; i++ {
		bufSize := fmt.Sprintf("file_buffer_kb=%d", 4*(i+1))
		if err := fixlog.ApplyOverride(bufSize); err != nil {
			fmt.Printf("Reconfig error: %v\n", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(500 * time.Millisecond)
	stop.Store(true)
	<-done
	fmt.Printf("Total logs attempted: %d\n", count.Load())

	if err := fixlog.Shutdown(); err != nil {
		fmt.Printf("Shutdown error: %v\n", err)
	}
}
