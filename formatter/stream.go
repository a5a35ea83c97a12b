// FILE: lixenwraith/fixlog/formatter/stream.go
package formatter

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"
	"unsafe"

	"github.com/davecgh/go-spew/spew"
)

const nullText = "(null)"

// dumper renders values the stream has no direct encoding for.
// %#v keeps the dump on a single line with type annotations.
var dumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// SanitizeFunc appends a transformed copy of s to dst
type SanitizeFunc func(dst []byte, s string) []byte

// Stream formats scalar values directly into a Fixed buffer.
// Every method writes its field whole or not at all.
type Stream struct {
	buf      *Fixed
	sanitize SanitizeFunc
	scratch  []byte
}

// NewStream creates a stream over a new buffer of the given capacity
func NewStream(capacity int) *Stream {
	return &Stream{buf: NewFixed(capacity)}
}

// Buffer returns the underlying buffer
func (s *Stream) Buffer() *Fixed { return s.buf }

// Reset rewinds the underlying buffer
func (s *Stream) Reset() { s.buf.Reset() }

// Sanitizer installs fn for string fields, nil disables sanitization
func (s *Stream) Sanitizer(fn SanitizeFunc) *Stream {
	s.sanitize = fn
	return s
}

// Bool writes "1" or "0"
func (s *Stream) Bool(v bool) *Stream {
	if v {
		s.buf.AppendByte('1')
	} else {
		s.buf.AppendByte('0')
	}
	return s
}

func (s *Stream) Int(v int) *Stream       { return appendInteger(s, v) }
func (s *Stream) Int8(v int8) *Stream     { return appendInteger(s, v) }
func (s *Stream) Int16(v int16) *Stream   { return appendInteger(s, v) }
func (s *Stream) Int32(v int32) *Stream   { return appendInteger(s, v) }
func (s *Stream) Int64(v int64) *Stream   { return appendInteger(s, v) }
func (s *Stream) Uint(v uint) *Stream     { return appendInteger(s, v) }
func (s *Stream) Uint8(v uint8) *Stream   { return appendInteger(s, v) }
func (s *Stream) Uint16(v uint16) *Stream { return appendInteger(s, v) }
func (s *Stream) Uint32(v uint32) *Stream { return appendInteger(s, v) }
func (s *Stream) Uint64(v uint64) *Stream { return appendInteger(s, v) }

func appendInteger[T integer](s *Stream, v T) *Stream {
	if s.buf.Avail() >= MaxNumericSize {
		s.buf.advance(convert(s.buf.tail()[:MaxNumericSize], v))
	}
	return s
}

// PadInt writes v right-aligned in a field of width, padded with spaces
func (s *Stream) PadInt(v int64, width int) *Stream {
	if width > MaxNumericSize/2 || s.buf.Avail() < MaxNumericSize {
		return s
	}
	var tmp [MaxNumericSize / 2]byte
	n := convert(tmp[:], v)
	out := s.buf.tail()[:MaxNumericSize]
	p := 0
	for ; p < width-n; p++ {
		out[p] = ' '
	}
	p += copy(out[p:], tmp[:n])
	s.buf.advance(p)
	return s
}

// Pointer writes "0x" followed by the uppercase hex address
func (s *Stream) Pointer(p uintptr) *Stream {
	if s.buf.Avail() >= MaxNumericSize {
		out := s.buf.tail()[:MaxNumericSize]
		out[0], out[1] = '0', 'x'
		s.buf.advance(2 + convertHex(out[2:], p))
	}
	return s
}

// Ptr is Pointer for unsafe.Pointer values
func (s *Stream) Ptr(p unsafe.Pointer) *Stream {
	return s.Pointer(uintptr(p))
}

// Float64 writes v with 12 significant digits (%.12g)
func (s *Stream) Float64(v float64) *Stream {
	if s.buf.Avail() >= MaxNumericSize {
		out := strconv.AppendFloat(s.buf.tail()[:0:MaxNumericSize], v, 'g', 12, 64)
		s.buf.advance(len(out))
	}
	return s
}

// Float32 is widened to float64 first
func (s *Stream) Float32(v float32) *Stream {
	return s.Float64(float64(v))
}

// Byte writes a single character
func (s *Stream) Byte(c byte) *Stream {
	s.buf.AppendByte(c)
	return s
}

// Rune writes the UTF-8 encoding of r
func (s *Stream) Rune(r rune) *Stream {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	s.buf.Append(tmp[:n])
	return s
}

// Str copies v, passing it through the sanitizer when one is installed
func (s *Stream) Str(v string) *Stream {
	if s.sanitize == nil {
		s.buf.AppendString(v)
		return s
	}
	s.scratch = s.sanitize(s.scratch[:0], v)
	s.buf.Append(s.scratch)
	return s
}

// StrPtr writes "(null)" for a nil pointer
func (s *Stream) StrPtr(v *string) *Stream {
	if v == nil {
		s.buf.AppendString(nullText)
		return s
	}
	return s.Str(*v)
}

// Bytes copies v verbatim
func (s *Stream) Bytes(v []byte) *Stream {
	s.buf.Append(v)
	return s
}

// Err writes err.Error(), or "(null)" for a nil error
func (s *Stream) Err(err error) *Stream {
	if err == nil {
		s.buf.AppendString(nullText)
		return s
	}
	return s.Str(err.Error())
}

// Fixed copies the content of another buffer
func (s *Stream) Fixed(f *Fixed) *Stream {
	s.buf.Append(f.Bytes())
	return s
}

// SI writes n with a decimal SI suffix, see FormatSI
func (s *Stream) SI(n int64) *Stream {
	if s.buf.Avail() >= MaxNumericSize {
		s.buf.advance(len(AppendSI(s.buf.tail()[:0:MaxNumericSize], n)))
	}
	return s
}

// IEC writes n with a binary IEC suffix, see FormatIEC
func (s *Stream) IEC(n int64) *Stream {
	if s.buf.Avail() >= MaxNumericSize {
		s.buf.advance(len(AppendIEC(s.buf.tail()[:0:MaxNumericSize], n)))
	}
	return s
}

// Fmt writes an arithmetic value through a printf verb, see NewFmt
func (s *Stream) Fmt(format string, v any) *Stream {
	f := NewFmt(format, v)
	s.buf.Append(f.Bytes())
	return s
}

// Any dispatches on the dynamic type of v.
// Types without a direct encoding are dumped by go-spew on one line.
func (s *Stream) Any(v any) *Stream {
	switch val := v.(type) {
	case nil:
		s.buf.AppendString(nullText)
	case string:
		s.Str(val)
	case []byte:
		s.Bytes(val)
	case bool:
		s.Bool(val)
	case int:
		s.Int(val)
	case int8:
		s.Int8(val)
	case int16:
		s.Int16(val)
	case int32:
		s.Int32(val)
	case int64:
		s.Int64(val)
	case uint:
		s.Uint(val)
	case uint8:
		s.Uint8(val)
	case uint16:
		s.Uint16(val)
	case uint32:
		s.Uint32(val)
	case uint64:
		s.Uint64(val)
	case uintptr:
		s.Pointer(val)
	case unsafe.Pointer:
		s.Ptr(val)
	case float32:
		s.Float32(val)
	case float64:
		s.Float64(val)
	case *string:
		s.StrPtr(val)
	case time.Duration:
		s.Str(val.String())
	case error:
		s.Err(val)
	case fmt.Stringer:
		s.Str(val.String())
	default:
		s.Str(dumper.Sprintf("%#v", val))
	}
	return s
}
