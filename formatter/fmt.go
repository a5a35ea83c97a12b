// FILE: lixenwraith/fixlog/formatter/fmt.go
package formatter

import "fmt"

// FmtSize is the storage of a Fmt, including room for a terminator
const FmtSize = 32

// Fmt holds one arithmetic value rendered through a printf verb.
// Output longer than FmtSize-1 bytes is truncated.
type Fmt struct {
	buf [FmtSize]byte
	n   int
}

// NewFmt renders v with format. Non-arithmetic values produce an empty Fmt.
func NewFmt(format string, v any) Fmt {
	var f Fmt
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
	default:
		return f
	}
	out := fmt.Appendf(f.buf[:0], format, v)
	f.n = copy(f.buf[:FmtSize-1], out)
	return f
}

// Bytes returns the rendered text
func (f *Fmt) Bytes() []byte { return f.buf[:f.n] }

// Len is the rendered length
func (f *Fmt) Len() int { return f.n }

func (f *Fmt) String() string { return string(f.buf[:f.n]) }
