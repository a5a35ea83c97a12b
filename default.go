// FILE: lixenwraith/fixlog/default.go
package fixlog

import "github.com/lixenwraith/fixlog/civil"

// Process-wide logger behind the package-level functions. It writes to
// stdout until configured.
var std = NewLogger()

// Default returns the process-wide logger
func Default() *Logger { return std }

// ApplyConfig configures the default logger
func ApplyConfig(cfg *Config) error { return std.ApplyConfig(cfg) }

// ApplyOverride applies "key=value" overrides to the default logger
func ApplyOverride(overrides ...string) error { return std.ApplyOverride(overrides...) }

// Shutdown stops the default logger's background work and closes its file
func Shutdown() error { return std.Shutdown() }

// Flush flushes the default logger
func Flush() error { return std.Flush() }

// SetOutput replaces the default logger's output hook
func SetOutput(fn OutputFunc) { std.SetOutput(fn) }

// SetFlush replaces the default logger's flush hook
func SetFlush(fn FlushFunc) { std.SetFlush(fn) }

// SetExit replaces the default logger's exit hook
func SetExit(fn ExitFunc) { std.SetExit(fn) }

// SetClock replaces the default logger's clock
func SetClock(fn func() civil.Instant) { std.SetClock(fn) }

// SetLevel changes the default threshold
func SetLevel(sev Severity) { std.SetLevel(sev) }

// GetLevel returns the default threshold
func GetLevel() Severity { return std.GetLevel() }

// Enabled reports whether the default logger emits sev
func Enabled(sev Severity) bool { return std.Enabled(sev) }

// At opens a record on the default logger with an explicit source location
func At(sev Severity, file string, line int) *Record { return std.At(sev, file, line) }

func Trace() *Record { return std.record(LevelTrace, 0, 1) }
func Debug() *Record { return std.record(LevelDebug, 0, 1) }
func Info() *Record  { return std.record(LevelInfo, 0, 1) }
func Warn() *Record  { return std.record(LevelWarn, 0, 1) }
func Error() *Record { return std.record(LevelError, 0, 1) }
func Fatal() *Record { return std.record(LevelFatal, 0, 1) }

// SysError opens an ERROR record annotated with the OS error carried by err
func SysError(err error) *Record { return std.sysRecord(LevelError, err) }

// SysFatal is SysError at FATAL
func SysFatal(err error) *Record { return std.sysRecord(LevelFatal, err) }

func Tracef(format string, args ...any) { std.logf(LevelTrace, 2, format, args...) }
func Debugf(format string, args ...any) { std.logf(LevelDebug, 2, format, args...) }
func Infof(format string, args ...any)  { std.logf(LevelInfo, 2, format, args...) }
func Warnf(format string, args ...any)  { std.logf(LevelWarn, 2, format, args...) }
func Errorf(format string, args ...any) { std.logf(LevelError, 2, format, args...) }
func Fatalf(format string, args ...any) { std.logf(LevelFatal, 2, format, args...) }
