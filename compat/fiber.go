// FILE: lixenwraith/fixlog/compat/fiber.go
package compat

import (
	"fmt"
	"io"
	"strings"

	"github.com/lixenwraith/fixlog"
)

// interface guard
var _ io.Writer = (*FiberAdapter)(nil)

// FiberAdapter satisfies Fiber's CommonLogger (Logger, FormatLogger and
// WithLogger method sets) by method shape, so no Fiber import is required.
// Records carry source=fiber.
type FiberAdapter struct {
	logger       *fixlog.Logger
	fatalHandler func(msg string) // nil sends a FATAL record instead
	panicHandler func(msg string)
}

// NewFiberAdapter creates a Fiber-compatible logger adapter.
// Panic defaults to panicking with the message after the record is flushed.
func NewFiberAdapter(logger *fixlog.Logger, opts ...FiberOption) *FiberAdapter {
	adapter := &FiberAdapter{
		logger: logger,
		panicHandler: func(msg string) {
			panic(msg)
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FiberOption customizes a FiberAdapter
type FiberOption func(*FiberAdapter)

// WithFiberFatalHandler replaces the FATAL record with an ERROR record, a
// flush and a call to handler
func WithFiberFatalHandler(handler func(string)) FiberOption {
	return func(a *FiberAdapter) {
		a.fatalHandler = handler
	}
}

// WithFiberPanicHandler replaces the panic that follows a Panic record
func WithFiberPanicHandler(handler func(string)) FiberOption {
	return func(a *FiberAdapter) {
		a.panicHandler = handler
	}
}

// keyValues pairs up Fiber's alternating keys and values.
// A key without a value gets nil.
func keyValues(keysAndValues []any) []field {
	fields := make([]field, 0, (len(keysAndValues)+1)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		var value any
		if i+1 < len(keysAndValues) {
			value = keysAndValues[i+1]
		}
		fields = append(fields, field{key: key, value: value})
	}
	return fields
}

// fatal is called directly by the Fatal methods, the record points two frames up
func (a *FiberAdapter) fatal(msg string, fields []field) {
	if a.fatalHandler == nil {
		emit(a.logger, 2, fixlog.LevelFatal, "fiber", msg, fields...)
		return
	}
	emit(a.logger, 2, fixlog.LevelError, "fiber", msg, append(fields, field{"fatal", true})...)
	_ = a.logger.Flush()
	a.fatalHandler(msg)
}

// logPanic is called directly by the Panic methods
func (a *FiberAdapter) logPanic(msg string, fields []field) {
	emit(a.logger, 2, fixlog.LevelError, "fiber", msg, append(fields, field{"panic", true})...)
	_ = a.logger.Flush()
	if a.panicHandler != nil {
		a.panicHandler(msg)
	}
}

func (a *FiberAdapter) Trace(v ...any) {
	emit(a.logger, 1, fixlog.LevelTrace, "fiber", fmt.Sprint(v...))
}

func (a *FiberAdapter) Debug(v ...any) {
	emit(a.logger, 1, fixlog.LevelDebug, "fiber", fmt.Sprint(v...))
}

func (a *FiberAdapter) Info(v ...any) {
	emit(a.logger, 1, fixlog.LevelInfo, "fiber", fmt.Sprint(v...))
}

func (a *FiberAdapter) Warn(v ...any) {
	emit(a.logger, 1, fixlog.LevelWarn, "fiber", fmt.Sprint(v...))
}

func (a *FiberAdapter) Error(v ...any) {
	emit(a.logger, 1, fixlog.LevelError, "fiber", fmt.Sprint(v...))
}

func (a *FiberAdapter) Fatal(v ...any) { a.fatal(fmt.Sprint(v...), nil) }

func (a *FiberAdapter) Panic(v ...any) { a.logPanic(fmt.Sprint(v...), nil) }

// Write logs p at info level, for use as Fiber's error output
func (a *FiberAdapter) Write(p []byte) (int, error) {
	emit(a.logger, 1, fixlog.LevelInfo, "fiber", strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

func (a *FiberAdapter) Tracef(format string, v ...any) {
	emit(a.logger, 1, fixlog.LevelTrace, "fiber", fmt.Sprintf(format, v...))
}

func (a *FiberAdapter) Debugf(format string, v ...any) {
	emit(a.logger, 1, fixlog.LevelDebug, "fiber", fmt.Sprintf(format, v...))
}

func (a *FiberAdapter) Infof(format string, v ...any) {
	emit(a.logger, 1, fixlog.LevelInfo, "fiber", fmt.Sprintf(format, v...))
}

func (a *FiberAdapter) Warnf(format string, v ...any) {
	emit(a.logger, 1, fixlog.LevelWarn, "fiber", fmt.Sprintf(format, v...))
}

func (a *FiberAdapter) Errorf(format string, v ...any) {
	emit(a.logger, 1, fixlog.LevelError, "fiber", fmt.Sprintf(format, v...))
}

func (a *FiberAdapter) Fatalf(format string, v ...any) { a.fatal(fmt.Sprintf(format, v...), nil) }

func (a *FiberAdapter) Panicf(format string, v ...any) { a.logPanic(fmt.Sprintf(format, v...), nil) }

func (a *FiberAdapter) Tracew(msg string, keysAndValues ...any) {
	emit(a.logger, 1, fixlog.LevelTrace, "fiber", msg, keyValues(keysAndValues)...)
}

func (a *FiberAdapter) Debugw(msg string, keysAndValues ...any) {
	emit(a.logger, 1, fixlog.LevelDebug, "fiber", msg, keyValues(keysAndValues)...)
}

func (a *FiberAdapter) Infow(msg string, keysAndValues ...any) {
	emit(a.logger, 1, fixlog.LevelInfo, "fiber", msg, keyValues(keysAndValues)...)
}

func (a *FiberAdapter) Warnw(msg string, keysAndValues ...any) {
	emit(a.logger, 1, fixlog.LevelWarn, "fiber", msg, keyValues(keysAndValues)...)
}

func (a *FiberAdapter) Errorw(msg string, keysAndValues ...any) {
	emit(a.logger, 1, fixlog.LevelError, "fiber", msg, keyValues(keysAndValues)...)
}

func (a *FiberAdapter) Fatalw(msg string, keysAndValues ...any) {
	a.fatal(msg, keyValues(keysAndValues))
}

func (a *FiberAdapter) Panicw(msg string, keysAndValues ...any) {
	a.logPanic(msg, keyValues(keysAndValues))
}
