// FILE: lixenwraith/fixlog/type.go
package fixlog

import (
	"strings"

	"github.com/lixenwraith/fixlog/formatter"
)

// Severity orders records from TRACE (lowest) to FATAL (highest)
type Severity int32

// String returns the level name without padding
func (s Severity) String() string {
	if s < LevelTrace || s >= numLevels {
		return "UNKNOWN"
	}
	return levelNames[s]
}

// Label returns the six-column label written into records
func (s Severity) Label() string {
	if s < LevelTrace || s >= numLevels {
		return "????? "
	}
	return levelLabels[s]
}

// ParseLevel converts a level name to a Severity
func ParseLevel(levelStr string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return 0, fmtErrorf("invalid level string: '%s' (use trace, debug, info, warn, error, fatal)", levelStr)
	}
}

// OutputFunc receives one complete record. msg is only valid during the call.
type OutputFunc func(msg []byte)

// FlushFunc forces buffered output to its destination
type FlushFunc func()

// ExitFunc terminates the process after a FATAL record
type ExitFunc func(code int)

// Hook wrappers, atomic.Value requires a consistent concrete type
type outputHook struct{ fn OutputFunc }
type flushHook struct{ fn FlushFunc }
type exitHook struct{ fn ExitFunc }
type sanitizeHook struct{ fn formatter.SanitizeFunc }
