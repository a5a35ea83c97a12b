// FILE: lixenwraith/fixlog/state.go
package fixlog

import (
	"sync/atomic"
	"time"
)

// State encapsulates the runtime state of the logger
type State struct {
	IsInitialized  atomic.Bool
	LoggerDisabled atomic.Bool
	ShutdownCalled atomic.Bool

	Level atomic.Int32 // Severity threshold

	CurrentFile atomic.Pointer[LogFile] // nil when file output is off

	// Heartbeat statistics
	HeartbeatSequence atomic.Uint64
	LoggerStartTime   atomic.Value // stores time.Time
	TotalRecords      atomic.Uint64
}

// Shutdown stops the background threads, flushes and closes the log file.
// Output reverts to stdout so FATAL records still reach a destination.
// Further records below FATAL are discarded.
func (l *Logger) Shutdown() error {
	if !l.state.ShutdownCalled.CompareAndSwap(false, true) {
		return nil
	}
	l.state.LoggerDisabled.Store(true)

	l.initMu.Lock()
	defer l.initMu.Unlock()

	l.stopBackground()
	l.resetHooks()

	var finalErr error
	if lf := l.state.CurrentFile.Swap(nil); lf != nil {
		if err := lf.Close(); err != nil {
			finalErr = combineErrors(finalErr, fmtErrorf("failed to close log file '%s' during shutdown: %w", lf.Name(), err))
		}
	}
	l.state.IsInitialized.Store(false)
	return finalErr
}

// Flush syncs the log file when file output is on, otherwise runs the flush hook
func (l *Logger) Flush() error {
	if lf := l.state.CurrentFile.Load(); lf != nil {
		return lf.Flush()
	}
	l.loadFlush()()
	return nil
}

// Uptime since the logger was created
func (l *Logger) Uptime() time.Duration {
	if start, ok := l.state.LoggerStartTime.Load().(time.Time); ok {
		return time.Since(start)
	}
	return 0
}
