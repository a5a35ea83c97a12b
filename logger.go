// FILE: lixenwraith/fixlog/logger.go
package fixlog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/lixenwraith/fixlog/civil"
	"github.com/lixenwraith/fixlog/formatter"
	"github.com/lixenwraith/fixlog/sanitizer"
)

// Logger gates records by severity, formats them synchronously in the
// calling goroutine and hands each finished line to its output hook.
type Logger struct {
	currentConfig atomic.Value // stores *Config
	state         State
	initMu        sync.Mutex

	output   atomic.Value // stores outputHook
	flush    atomic.Value // stores flushHook
	exit     atomic.Value // stores exitHook
	sanitize atomic.Value // stores sanitizeHook
	clock    atomic.Value // stores func() civil.Instant

	heartbeat *periodic
}

func defaultOutput(msg []byte) { _, _ = os.Stdout.Write(msg) }

func defaultFlush() { _ = os.Stdout.Sync() }

func defaultExit(code int) { os.Exit(code) }

// NewLogger creates a logger writing to stdout at the environment-selected threshold
func NewLogger() *Logger {
	l := &Logger{}
	l.currentConfig.Store(DefaultConfig())
	l.state.Level.Store(int32(levelFromEnv()))
	l.state.LoggerStartTime.Store(time.Now())
	l.sanitize.Store(sanitizeHook{})
	l.clock.Store(civil.Now)
	l.resetHooks()
	return l
}

func (l *Logger) resetHooks() {
	l.output.Store(outputHook{fn: defaultOutput})
	l.flush.Store(flushHook{fn: defaultFlush})
	l.exit.Store(exitHook{fn: defaultExit})
}

// SetOutput replaces the output hook. nil restores stdout.
func (l *Logger) SetOutput(fn OutputFunc) {
	if fn == nil {
		fn = defaultOutput
	}
	l.output.Store(outputHook{fn: fn})
}

// SetFlush replaces the flush hook. nil restores the stdout sync.
func (l *Logger) SetFlush(fn FlushFunc) {
	if fn == nil {
		fn = defaultFlush
	}
	l.flush.Store(flushHook{fn: fn})
}

// SetExit replaces the hook run after a FATAL record. nil restores os.Exit.
func (l *Logger) SetExit(fn ExitFunc) {
	if fn == nil {
		fn = defaultExit
	}
	l.exit.Store(exitHook{fn: fn})
}

// SetClock replaces the wall clock used for record timestamps. nil restores civil.Now.
func (l *Logger) SetClock(fn func() civil.Instant) {
	if fn == nil {
		fn = civil.Now
	}
	l.clock.Store(fn)
}

func (l *Logger) loadOutput() OutputFunc { return l.output.Load().(outputHook).fn }

func (l *Logger) loadFlush() FlushFunc { return l.flush.Load().(flushHook).fn }

func (l *Logger) loadExit() ExitFunc { return l.exit.Load().(exitHook).fn }

func (l *Logger) sanitizeFunc() formatter.SanitizeFunc { return l.sanitize.Load().(sanitizeHook).fn }

func (l *Logger) now() civil.Instant { return l.clock.Load().(func() civil.Instant)() }

// SetLevel changes the threshold
func (l *Logger) SetLevel(sev Severity) {
	if sev < LevelTrace {
		sev = LevelTrace
	}
	if sev > LevelFatal {
		sev = LevelFatal
	}
	l.state.Level.Store(int32(sev))
}

// GetLevel returns the threshold
func (l *Logger) GetLevel() Severity {
	return Severity(l.state.Level.Load())
}

// Enabled reports whether a record at sev would be emitted
func (l *Logger) Enabled(sev Severity) bool {
	if sev < Severity(l.state.Level.Load()) {
		return false
	}
	return sev >= LevelFatal || !l.state.LoggerDisabled.Load()
}

// record opens a record for the caller skip frames above it
func (l *Logger) record(sev Severity, errno syscall.Errno, skip int) *Record {
	if !l.Enabled(sev) {
		return nil
	}
	file, line, fn := caller(skip+1, sev <= LevelDebug)
	return newRecord(l, sev, errno, file, line, fn, l.now())
}

// At opens a record with an explicit source location
func (l *Logger) At(sev Severity, file string, line int) *Record {
	if !l.Enabled(sev) {
		return nil
	}
	return newRecord(l, sev, 0, basename(file), line, "", l.now())
}

// Trace opens a TRACE record, which includes the calling function name
func (l *Logger) Trace() *Record { return l.record(LevelTrace, 0, 1) }

// Debug opens a DEBUG record, which includes the calling function name
func (l *Logger) Debug() *Record { return l.record(LevelDebug, 0, 1) }

func (l *Logger) Info() *Record { return l.record(LevelInfo, 0, 1) }

func (l *Logger) Warn() *Record { return l.record(LevelWarn, 0, 1) }

func (l *Logger) Error() *Record { return l.record(LevelError, 0, 1) }

// Fatal opens a FATAL record. Send on it flushes and terminates the process.
func (l *Logger) Fatal() *Record { return l.record(LevelFatal, 0, 1) }

// SysError opens an ERROR record annotated with the OS error carried by err
func (l *Logger) SysError(err error) *Record {
	return l.sysRecord(LevelError, err)
}

// SysFatal is SysError at FATAL
func (l *Logger) SysFatal(err error) *Record {
	return l.sysRecord(LevelFatal, err)
}

func (l *Logger) sysRecord(sev Severity, err error) *Record {
	errno := errnoOf(err)
	r := l.record(sev, errno, 2)
	if errno == 0 && err != nil {
		r.Err(err).Byte(' ')
	}
	return r
}

// errnoOf extracts the first syscall.Errno in err's chain
func errnoOf(err error) syscall.Errno {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno
	}
	return 0
}

// Logf formats a message printf-style at sev and sends it
func (l *Logger) Logf(sev Severity, format string, args ...any) {
	l.logf(sev, 2, format, args...)
}

func (l *Logger) logf(sev Severity, skip int, format string, args ...any) {
	r := l.record(sev, 0, skip)
	if r == nil {
		return
	}
	r.Msg(strings.TrimSuffix(fmt.Sprintf(format, args...), "\n"))
}

func (l *Logger) Tracef(format string, args ...any) { l.logf(LevelTrace, 2, format, args...) }
func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, 2, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.logf(LevelInfo, 2, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf(LevelWarn, 2, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, 2, format, args...) }
func (l *Logger) Fatalf(format string, args ...any) { l.logf(LevelFatal, 2, format, args...) }

// ApplyConfig validates cfg and rewires the logger: threshold, sanitizer,
// file sink, stdout mirror, background flusher and heartbeat
func (l *Logger) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return fmtErrorf("invalid configuration: %w", err)
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()

	return l.applyConfig(cfg.Clone())
}

// GetConfig returns a copy of current configuration
func (l *Logger) GetConfig() *Config {
	return l.getConfig().Clone()
}

func (l *Logger) getConfig() *Config {
	return l.currentConfig.Load().(*Config)
}

// applyConfig assumes initMu is held and cfg is validated
func (l *Logger) applyConfig(cfg *Config) error {
	var lf *LogFile
	if cfg.EnableFile {
		if err := os.MkdirAll(cfg.Directory, 0755); err != nil {
			return fmtErrorf("failed to create log directory '%s': %w", cfg.Directory, err)
		}
		var err error
		if lf, err = NewLogFile(cfg.logFileConfig(l.reportError)); err != nil {
			return fmtErrorf("failed to create log file: %w", err)
		}
	}

	l.stopBackground()
	l.currentConfig.Store(cfg)

	sev, _ := ParseLevel(cfg.Level)
	l.SetLevel(sev)

	san := sanitizer.New().Policy(sanitizer.PolicyPreset(cfg.Sanitization))
	if san.Passthrough() {
		l.sanitize.Store(sanitizeHook{})
	} else {
		l.sanitize.Store(sanitizeHook{fn: san.AppendTo})
	}

	var console io.Writer
	if cfg.EnableStdout {
		console = os.Stdout
		if cfg.StdoutTarget == "stderr" {
			console = os.Stderr
		}
	}
	l.output.Store(outputHook{fn: fanOut(lf, console)})
	l.flush.Store(flushHook{fn: l.flushAll(lf, console)})

	if old := l.state.CurrentFile.Swap(lf); old != nil {
		if err := old.Close(); err != nil {
			l.internalLog("warning - failed to close previous log file: %v\n", err)
		}
	}

	if lf != nil && cfg.BackgroundFlush {
		if err := lf.StartFlusher(); err != nil {
			l.internalLog("warning - failed to start background flusher: %v\n", err)
		}
	}
	if cfg.HeartbeatIntervalS > 0 {
		hb, err := startPeriodic("heartbeat", time.Duration(cfg.HeartbeatIntervalS)*time.Second, l.emitHeartbeat)
		if err != nil {
			l.internalLog("warning - failed to start heartbeat: %v\n", err)
		}
		l.heartbeat = hb
	}

	l.state.IsInitialized.Store(true)
	l.state.ShutdownCalled.Store(false)
	l.state.LoggerDisabled.Store(false)
	return nil
}

// stopBackground stops the heartbeat and the file flusher, assumes initMu is held
func (l *Logger) stopBackground() {
	if l.heartbeat != nil {
		l.heartbeat.stop()
		l.heartbeat = nil
	}
	if lf := l.state.CurrentFile.Load(); lf != nil {
		lf.StopFlusher()
	}
}

// fanOut builds the output hook for the configured destinations
func fanOut(lf *LogFile, console io.Writer) OutputFunc {
	switch {
	case lf != nil && console != nil:
		return func(msg []byte) {
			lf.Append(msg)
			_, _ = console.Write(msg)
		}
	case lf != nil:
		return lf.Append
	case console != nil:
		return func(msg []byte) { _, _ = console.Write(msg) }
	default:
		return func([]byte) {}
	}
}

func (l *Logger) flushAll(lf *LogFile, console io.Writer) FlushFunc {
	return func() {
		if lf != nil {
			if err := lf.Flush(); err != nil {
				l.reportError(err)
			}
		}
		if f, ok := console.(*os.File); ok {
			_ = f.Sync()
		}
	}
}

// reportError is the sink error callback
func (l *Logger) reportError(err error) {
	l.internalLog("%v\n", err)
}

// internalLog writes logger diagnostics to stderr, if enabled
func (l *Logger) internalLog(format string, args ...any) {
	cfg := l.getConfig()
	if !cfg.InternalErrorsToStderr {
		return
	}
	if !strings.HasPrefix(format, errorPrefix) {
		format = errorPrefix + format
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
