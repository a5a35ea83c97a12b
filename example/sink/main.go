// FILE: lixenwraith/fixlog/example/sink/main.go
package main

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/lixenwraith/fixlog"
)

const (
	logDirectory = "./temp_logs"
	logInterval  = 200 * time.Millisecond
)

func main() {
	if err := os.RemoveAll(logDirectory); err != nil {
		fmt.Printf("Warning: could not remove old log directory: %v\n", err)
	}

	fmt.Println("--- Running Sink Scenarios ---")
	fmt.Printf("! All file-based logs will be in the '%s' directory.\n\n", logDirectory)

	fmt.Println("--- SCENARIO 1: Output targets in isolation (new logger per test) ---")
	testFileOnly()
	testStdoutOnly()
	testStderrOnly()
	testNoOutput()

	fmt.Println("\n--- SCENARIO 2: Target transitions on a single logger instance ---")
	testReconfigurationTransitions()

	fmt.Println("\n--- SCENARIO 3: Caller-owned sinks ---")
	testStandaloneLogFile()
	testMemorySink()

	fmt.Println("\n--- Sink Scenarios Complete ---")
	fmt.Printf("Check the '%s' directory for log files.\n", logDirectory)
}

func testFileOnly() {
	logger := fixlog.NewLogger()
	runTestPhase(logger, "1.1: File-Only",
		"directory="+logDirectory,
		"name=file_only_log",
		"enable_file=true",
		"enable_stdout=false",
		"level=debug",
	)
	shutdownLogger(logger, "1.1: File-Only")
}

func testStdoutOnly() {
	logger := fixlog.NewLogger()
	runTestPhase(logger, "1.2: Stdout-Only",
		"enable_stdout=true",
		"enable_file=false",
		"level=debug",
	)
	shutdownLogger(logger, "1.2: Stdout-Only")
}

func testStderrOnly() {
	fmt.Fprintln(os.Stderr, "\n---")
	logger := fixlog.NewLogger()
	runTestPhase(logger, "1.3: Stderr-Only",
		"enable_stdout=true",
		"stdout_target=stderr",
		"enable_file=false",
		"level=debug",
	)
	fmt.Fprintln(os.Stderr, "---")
	shutdownLogger(logger, "1.3: Stderr-Only")
}

// Records are assembled and dropped
func testNoOutput() {
	logger := fixlog.NewLogger()
	runTestPhase(logger, "1.4: No-Output (logs should be dropped)",
		"enable_stdout=false",
		"enable_file=false",
		"level=debug",
	)
	shutdownLogger(logger, "1.4: No-Output")
}

func testReconfigurationTransitions() {
	logger := fixlog.NewLogger()

	runTestPhase(logger, "2.1: Reconfig - Initial (Dual File+Stdout)",
		"directory="+logDirectory,
		"name=reconfig_log",
		"enable_stdout=true",
		"enable_file=true",
		"level=debug",
	)

	runTestPhase(logger, "2.2: Reconfig - Transition to Stdout-Only",
		"enable_file=false",
	)

	runTestPhase(logger, "2.3: Reconfig - Transition back to Dual (File+Stdout)",
		"enable_file=true",
	)

	fmt.Println("\n[Phase 2.4: Reconfig - Testing log levels on final state]")
	logger.Debug().Str("final-state ").Msg("This is a debug message.")
	logger.Info().Str("final-state ").Msg("This is an info message.")
	logger.Warn().Str("final-state ").Msg("This is a warning message.")
	logger.Error().Str("final-state ").Msg("This is an error message.")
	time.Sleep(logInterval)

	shutdownLogger(logger, "2: Reconfiguration")
}

// testStandaloneLogFile drives a LogFile owned by the caller, shared by
// several goroutines
func testStandaloneLogFile() {
	fmt.Println("\n[Phase 3.1: Standalone LogFile]")
	if err := os.MkdirAll(logDirectory, 0755); err != nil {
		fmt.Printf("  ERROR: could not create log directory: %v\n", err)
		os.Exit(1)
	}

	lf, err := fixlog.NewLogFile(fixlog.LogFileConfig{
		Directory:     logDirectory,
		Name:          "standalone",
		Extension:     "log",
		RollSize:      16 * 1000,
		ThreadSafe:    true,
		FlushInterval: 100 * time.Millisecond,
		CheckEveryN:   16,
		BufferSize:    4096,
	})
	if err != nil {
		fmt.Printf("  ERROR: could not open log file: %v\n", err)
		os.Exit(1)
	}
	if err := lf.StartFlusher(); err != nil {
		fmt.Printf("  ERROR: could not start flusher: %v\n", err)
	}

	logger := fixlog.NewLogger()
	logger.UseSink(lf)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				logger.Info().Str("worker=").Int(id).Str(" seq=").Int(i).Send()
			}
		}(w)
	}
	wg.Wait()

	if err := lf.Close(); err != nil {
		fmt.Printf("  WARNING: close failed: %v\n", err)
	}
	st := lf.Stats()
	fmt.Printf("  files=%d bytes=%d errors=%d last=%s\n", st.Rolls, st.TotalWritten, st.Errors, st.Name)
}

// memorySink keeps records in memory until flushed to stdout
type memorySink struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *memorySink) Append(msg []byte) {
	s.mu.Lock()
	s.buf.Write(msg)
	s.mu.Unlock()
}

func (s *memorySink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.buf.WriteTo(os.Stdout)
	return err
}

func testMemorySink() {
	fmt.Println("\n[Phase 3.2: Memory sink, nothing printed until flush]")
	sink := &memorySink{}
	logger := fixlog.NewLogger()
	logger.UseSink(sink)

	logger.Info().Msg("buffered one")
	logger.Warn().Msg("buffered two")
	fmt.Println("  flushing:")
	if err := logger.Flush(); err != nil {
		fmt.Printf("  WARNING: flush failed: %v\n", err)
	}
}

func runTestPhase(logger *fixlog.Logger, phaseName string, overrides ...string) {
	fmt.Printf("\n[Phase %s]\n", phaseName)
	fmt.Println("  Config:", overrides)

	if err := logger.ApplyOverride(overrides...); err != nil {
		fmt.Printf("  ERROR: Failed to initialize/reconfigure logger: %v\n", err)
		os.Exit(1)
	}

	logger.Info().Str("event=start_phase name=").Str(phaseName).Send()
	time.Sleep(logInterval)
	logger.Info().Str("event=end_phase name=").Str(phaseName).Send()
	time.Sleep(logInterval)
}

func shutdownLogger(l *fixlog.Logger, phaseName string) {
	if err := l.Shutdown(); err != nil {
		fmt.Printf("  WARNING: Shutdown error in phase '%s': %v\n", phaseName, err)
	}
}
