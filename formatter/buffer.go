// FILE: lixenwraith/fixlog/formatter/buffer.go
package formatter

import "io"

// SmallBuffer is the capacity of a record buffer
const SmallBuffer = 4000

// Fixed is a fixed-capacity, append-only byte buffer.
// An append that does not fit in the remaining capacity is dropped whole;
// the buffer never grows and never writes past its storage.
type Fixed struct {
	data  []byte // len(data) is the capacity, never resliced
	n     int    // write cursor, 0 <= n <= limit
	limit int    // capacity minus reserved tail
}

// interface guard
var _ io.Writer = (*Fixed)(nil)

// NewFixed allocates a buffer of the given capacity
func NewFixed(capacity int) *Fixed {
	if capacity < 0 {
		capacity = 0
	}
	return &Fixed{data: make([]byte, capacity), limit: capacity}
}

// Append copies p if it fits entirely, otherwise does nothing
func (f *Fixed) Append(p []byte) {
	if len(p) > f.Avail() {
		return
	}
	f.n += copy(f.data[f.n:], p)
}

// AppendString is Append for strings
func (f *Fixed) AppendString(s string) {
	if len(s) > f.Avail() {
		return
	}
	f.n += copy(f.data[f.n:], s)
}

// AppendByte appends one byte if there is room
func (f *Fixed) AppendByte(c byte) {
	if f.Avail() < 1 {
		return
	}
	f.data[f.n] = c
	f.n++
}

// Write implements io.Writer. Oversized writes are discarded silently.
func (f *Fixed) Write(p []byte) (int, error) {
	f.Append(p)
	return len(p), nil
}

// Len is the number of bytes written
func (f *Fixed) Len() int { return f.n }

// Cap is the fixed capacity
func (f *Fixed) Cap() int { return len(f.data) }

// Avail is the remaining writable capacity
func (f *Fixed) Avail() int { return f.limit - f.n }

// Bytes returns the written content. It aliases the buffer storage.
func (f *Fixed) Bytes() []byte { return f.data[:f.n] }

// String copies the written content
func (f *Fixed) String() string { return string(f.data[:f.n]) }

// Reset rewinds the cursor without clearing memory
func (f *Fixed) Reset() {
	f.n = 0
	f.limit = len(f.data)
}

// Reserve holds back n bytes at the end of the buffer from ordinary appends.
// Used to guarantee room for a record trailer.
func (f *Fixed) Reserve(n int) {
	limit := len(f.data) - n
	if limit < f.n {
		limit = f.n
	}
	f.limit = limit
}

// Release makes the reserved tail writable again
func (f *Fixed) Release() { f.limit = len(f.data) }

// tail exposes the writable region as a zero-length slice whose capacity
// is exactly Avail(), for append-style encoders
func (f *Fixed) tail() []byte {
	return f.data[f.n:f.n:f.limit]
}

// advance commits n bytes written into tail()
func (f *Fixed) advance(n int) {
	f.n += n
}
