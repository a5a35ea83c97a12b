// FILE: lixenwraith/fixlog/compat/fasthttp.go
package compat

import (
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/fixlog"
)

// interface guard
var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// FastHTTPAdapter wraps fixlog.Logger to implement the fasthttp Logger interface
type FastHTTPAdapter struct {
	logger        *fixlog.Logger
	defaultLevel  fixlog.Severity
	levelDetector func(string) fixlog.Severity // Function to detect log level from message
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *fixlog.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		defaultLevel:  fixlog.LevelInfo,
		levelDetector: DetectLogLevel, // Default level detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the level used when the detector finds none
func WithDefaultLevel(level fixlog.Severity) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content.
// A detector returning a negative Severity defers to the default level.
func WithLevelDetector(detector func(string) fixlog.Severity) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface.
// Detected FATAL is logged at error level, fasthttp never expects to exit.
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(msg); detected >= 0 {
			level = detected
		}
	}
	if level > fixlog.LevelError {
		level = fixlog.LevelError
	}

	emit(a.logger, 1, level, "fasthttp", msg)
}

// DetectLogLevel attempts to detect log level from message content.
// It returns -1 when the message carries no indicator.
func DetectLogLevel(msg string) fixlog.Severity {
	msgLower := strings.ToLower(msg)

	// Check for error indicators
	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return fixlog.LevelError
	}

	// Check for warning indicators
	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "deprecated") {
		return fixlog.LevelWarn
	}

	// Check for debug indicators
	if strings.Contains(msgLower, "debug") {
		return fixlog.LevelDebug
	}
	if strings.Contains(msgLower, "trace") {
		return fixlog.LevelTrace
	}

	return -1
}
