// FILE: lixenwraith/fixlog/record.go
package fixlog

import (
	"math"
	"strconv"
	"sync"
	"syscall"
	"unsafe"

	"github.com/lixenwraith/fixlog/civil"
	"github.com/lixenwraith/fixlog/formatter"
	"github.com/lixenwraith/fixlog/syncutil"
)

// Record is one log line under construction. It is obtained from a Logger,
// filled through chained field methods, and emitted by Send. A nil *Record
// is returned for severities below the threshold; all methods on it are no-ops.
//
// A Record must not be used after Send.
type Record struct {
	logger *Logger
	stream *formatter.Stream
	sev    Severity
	file   string
	line   int

	// Cached "YYYYMMDD HH:MM:SS", reused while the whole second is unchanged
	lastSecond int64
	timePrefix [formatter.TimePrefixLen]byte
}

var recordPool = sync.Pool{
	New: func() any {
		return &Record{
			stream:     formatter.NewStream(formatter.SmallBuffer),
			lastSecond: math.MinInt64,
		}
	},
}

// newRecord writes the record header:
// time prefix, microseconds, thread id, level label, errno text, function name
func newRecord(l *Logger, sev Severity, errno syscall.Errno, file string, line int, fn string, now civil.Instant) *Record {
	r := recordPool.Get().(*Record)
	r.logger = l
	r.sev = sev
	r.file = file
	r.line = line

	s := r.stream
	s.Reset()
	s.Sanitizer(nil)
	buf := s.Buffer()
	buf.Reserve(trailerReserve)

	r.formatTime(buf, now)
	s.PadInt(int64(syncutil.Tid()), tidWidth).Byte(' ')
	buf.AppendString(sev.Label())
	if errno != 0 {
		buf.AppendString(errno.Error())
		buf.AppendString(" (errno=")
		s.Int64(int64(errno))
		buf.AppendString(") ")
	}
	if fn != "" {
		buf.AppendString(fn)
		buf.AppendByte(' ')
	}

	s.Sanitizer(l.sanitizeFunc())
	return r
}

func (r *Record) formatTime(buf *formatter.Fixed, now civil.Instant) {
	sec := now.Unix()
	usec := int(now.Micros() - sec*civil.MicrosPerSecond)
	if sec != r.lastSecond {
		r.lastSecond = sec
		formatter.PutTimePrefix(&r.timePrefix, civil.Break(sec))
	}
	buf.Append(r.timePrefix[:])

	var us [formatter.MicrosSuffixLen]byte
	formatter.PutMicrosSuffix(&us, usec)
	buf.Append(us[:])
}

// Send appends the " - file:line" trailer and hands the record to the
// output hook. A FATAL record then runs the flush hook and the exit hook.
func (r *Record) Send() {
	if r == nil {
		return
	}
	l, sev := r.logger, r.sev

	buf := r.stream.Buffer()
	buf.Release()
	buf.AppendString(" - ")
	buf.AppendString(r.file)
	buf.AppendByte(':')
	var lineBuf [20]byte
	buf.Append(strconv.AppendInt(lineBuf[:0], int64(r.line), 10))
	buf.AppendByte('\n')

	l.loadOutput()(buf.Bytes())
	l.state.TotalRecords.Add(1)

	r.logger = nil
	recordPool.Put(r)

	if sev == LevelFatal {
		l.loadFlush()()
		l.loadExit()(fatalExitCode)
	}
}

// Msg writes s and sends the record
func (r *Record) Msg(s string) {
	if r == nil {
		return
	}
	r.stream.Str(s)
	r.Send()
}

// Buffer exposes the body written so far
func (r *Record) Buffer() *formatter.Fixed {
	if r == nil {
		return nil
	}
	return r.stream.Buffer()
}

func (r *Record) Str(v string) *Record {
	if r != nil {
		r.stream.Str(v)
	}
	return r
}

func (r *Record) StrPtr(v *string) *Record {
	if r != nil {
		r.stream.StrPtr(v)
	}
	return r
}

func (r *Record) Bytes(v []byte) *Record {
	if r != nil {
		r.stream.Bytes(v)
	}
	return r
}

func (r *Record) Byte(c byte) *Record {
	if r != nil {
		r.stream.Byte(c)
	}
	return r
}

func (r *Record) Bool(v bool) *Record {
	if r != nil {
		r.stream.Bool(v)
	}
	return r
}

func (r *Record) Int(v int) *Record {
	if r != nil {
		r.stream.Int(v)
	}
	return r
}

func (r *Record) Int32(v int32) *Record {
	if r != nil {
		r.stream.Int32(v)
	}
	return r
}

func (r *Record) Int64(v int64) *Record {
	if r != nil {
		r.stream.Int64(v)
	}
	return r
}

func (r *Record) Uint(v uint) *Record {
	if r != nil {
		r.stream.Uint(v)
	}
	return r
}

func (r *Record) Uint32(v uint32) *Record {
	if r != nil {
		r.stream.Uint32(v)
	}
	return r
}

func (r *Record) Uint64(v uint64) *Record {
	if r != nil {
		r.stream.Uint64(v)
	}
	return r
}

func (r *Record) Float64(v float64) *Record {
	if r != nil {
		r.stream.Float64(v)
	}
	return r
}

func (r *Record) Pointer(p unsafe.Pointer) *Record {
	if r != nil {
		r.stream.Ptr(p)
	}
	return r
}

func (r *Record) Err(err error) *Record {
	if r != nil {
		r.stream.Err(err)
	}
	return r
}

// SI writes n with a decimal unit suffix
func (r *Record) SI(n int64) *Record {
	if r != nil {
		r.stream.SI(n)
	}
	return r
}

// IEC writes n with a binary unit suffix
func (r *Record) IEC(n int64) *Record {
	if r != nil {
		r.stream.IEC(n)
	}
	return r
}

// Fmt writes an arithmetic value through a printf verb
func (r *Record) Fmt(format string, v any) *Record {
	if r != nil {
		r.stream.Fmt(format, v)
	}
	return r
}

// Any writes v by dynamic type
func (r *Record) Any(v any) *Record {
	if r != nil {
		r.stream.Any(v)
	}
	return r
}
