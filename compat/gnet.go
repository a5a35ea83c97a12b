// FILE: lixenwraith/fixlog/compat/gnet.go
package compat

import (
	"fmt"

	"github.com/panjf2000/gnet/v2/pkg/logging"

	"github.com/lixenwraith/fixlog"
)

// interface guard
var _ logging.Logger = (*GnetAdapter)(nil)

// GnetAdapter wraps fixlog.Logger to implement the gnet logging.Logger interface
type GnetAdapter struct {
	logger       *fixlog.Logger
	fatalHandler func(msg string) // nil sends a FATAL record instead
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger *fixlog.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger: logger,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler replaces the FATAL record with an ERROR record, a flush
// and a call to handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	emit(a.logger, 1, fixlog.LevelDebug, "gnet", fmt.Sprintf(format, args...))
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	emit(a.logger, 1, fixlog.LevelInfo, "gnet", fmt.Sprintf(format, args...))
}

// Warnf logs at warn level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	emit(a.logger, 1, fixlog.LevelWarn, "gnet", fmt.Sprintf(format, args...))
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	emit(a.logger, 1, fixlog.LevelError, "gnet", fmt.Sprintf(format, args...))
}

// Fatalf sends a FATAL record, which flushes and runs the logger's exit hook.
// With a fatal handler installed it logs at error level and calls the handler.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if a.fatalHandler == nil {
		emit(a.logger, 1, fixlog.LevelFatal, "gnet", msg)
		return
	}
	emit(a.logger, 1, fixlog.LevelError, "gnet", msg, field{"fatal", true})
	_ = a.logger.Flush()
	a.fatalHandler(msg)
}
