// FILE: lixenwraith/fixlog/interface.go
package fixlog

import "io"

// Sink is a record destination that buffers and can be flushed
type Sink interface {
	Append(msg []byte)
	Flush() error
}

// interface guards
var (
	_ Sink      = (*LogFile)(nil)
	_ io.Writer = (*LogFile)(nil)
)

// UseSink routes the output and flush hooks to s. Flush failures are
// reported to stderr when internal error reporting is on.
func (l *Logger) UseSink(s Sink) {
	l.SetOutput(s.Append)
	l.SetFlush(func() {
		if err := s.Flush(); err != nil {
			l.reportError(err)
		}
	})
}
