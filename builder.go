// FILE: lixenwraith/fixlog/builder.go
package fixlog

import "strings"

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg    *Config
	err    error // Accumulate errors for deferred handling
	output OutputFunc
	flush  FlushFunc
	exit   ExitFunc
}

// NewBuilder creates a new configuration builder with default values
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Logger instance with the specified configuration.
// Hooks set on the builder replace the ones derived from the configuration.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := NewLogger()

	if err := logger.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}

	if b.output != nil {
		logger.SetOutput(b.output)
	}
	if b.flush != nil {
		logger.SetFlush(b.flush)
	}
	if b.exit != nil {
		logger.SetExit(b.exit)
	}

	return logger, nil
}

// Level sets the threshold
func (b *Builder) Level(sev Severity) *Builder {
	b.cfg.Level = strings.ToLower(sev.String())
	return b
}

// LevelString sets the threshold from a level name
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	if _, err := ParseLevel(level); err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = strings.ToLower(level)
	return b
}

// Name sets the base name of log files
func (b *Builder) Name(name string) *Builder {
	b.cfg.Name = name
	return b
}

// Directory sets the log directory
func (b *Builder) Directory(dir string) *Builder {
	b.cfg.Directory = dir
	return b
}

// Extension sets the log file extension, without dot
func (b *Builder) Extension(ext string) *Builder {
	b.cfg.Extension = ext
	return b
}

// EnableFile turns the rotating file sink on or off
func (b *Builder) EnableFile(enable bool) *Builder {
	b.cfg.EnableFile = enable
	return b
}

// RollSizeKB sets the size threshold for rolling in KB
func (b *Builder) RollSizeKB(size int64) *Builder {
	b.cfg.RollSizeKB = size
	return b
}

// RollSizeMB sets the size threshold for rolling in MB. Convenience.
func (b *Builder) RollSizeMB(size int64) *Builder {
	b.cfg.RollSizeKB = size * sizeMultiplier
	return b
}

// ThreadSafe selects whether file appends take a lock
func (b *Builder) ThreadSafe(enable bool) *Builder {
	b.cfg.ThreadSafe = enable
	return b
}

// FlushIntervalS sets the file flush cadence in seconds
func (b *Builder) FlushIntervalS(interval int64) *Builder {
	b.cfg.FlushIntervalS = interval
	return b
}

// CheckEveryN sets how many appends pass between time checks
func (b *Builder) CheckEveryN(n int64) *Builder {
	b.cfg.CheckEveryN = n
	return b
}

// EnableStdout enables mirroring records to stdout/stderr
func (b *Builder) EnableStdout(enable bool) *Builder {
	b.cfg.EnableStdout = enable
	return b
}

// StdoutTarget selects "stdout" or "stderr"
func (b *Builder) StdoutTarget(target string) *Builder {
	b.cfg.StdoutTarget = target
	return b
}

// Sanitization sets the string field policy
func (b *Builder) Sanitization(policy string) *Builder {
	b.cfg.Sanitization = policy
	return b
}

// HeartbeatIntervalS enables heartbeat records at the given interval
func (b *Builder) HeartbeatIntervalS(interval int64) *Builder {
	b.cfg.HeartbeatIntervalS = interval
	return b
}

// BackgroundFlush enables the timer-driven file flusher
func (b *Builder) BackgroundFlush(enable bool) *Builder {
	b.cfg.BackgroundFlush = enable
	return b
}

// Output installs a custom output hook
func (b *Builder) Output(fn OutputFunc) *Builder {
	b.output = fn
	return b
}

// Flush installs a custom flush hook
func (b *Builder) Flush(fn FlushFunc) *Builder {
	b.flush = fn
	return b
}

// Exit installs a custom exit hook for FATAL records
func (b *Builder) Exit(fn ExitFunc) *Builder {
	b.exit = fn
	return b
}

// Example usage:
// logger, err := fixlog.NewBuilder().
//
//	EnableFile(true).
//	Directory("/var/log/app").
//	LevelString("debug").
//	RollSizeMB(100).
//	Build()
//
// if err == nil {
//
//	 defer logger.Shutdown()
//	 logger.Info().Str("logger initialized").Send()
//
// }
