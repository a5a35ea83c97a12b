// FILE: lixenwraith/fixlog/formatter/formatter_test.go
package formatter

import (
	"errors"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"unsafe"

	"github.com/lixenwraith/fixlog/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedBuffer(t *testing.T) {
	t.Run("append within capacity", func(t *testing.T) {
		f := NewFixed(8)
		f.AppendString("abc")
		f.Append([]byte("de"))
		f.AppendByte('f')
		assert.Equal(t, "abcdef", f.String())
		assert.Equal(t, 6, f.Len())
		assert.Equal(t, 2, f.Avail())
		assert.Equal(t, 8, f.Cap())
	})

	t.Run("oversized append is dropped whole", func(t *testing.T) {
		f := NewFixed(8)
		f.AppendString("abcdef")
		f.AppendString("xyz")
		assert.Equal(t, "abcdef", f.String())
		f.AppendString("xy")
		assert.Equal(t, "abcdefxy", f.String())
		f.AppendByte('z')
		assert.Equal(t, "abcdefxy", f.String())
		assert.Equal(t, 0, f.Avail())
	})

	t.Run("write reports full length", func(t *testing.T) {
		f := NewFixed(4)
		n, err := f.Write([]byte("too long"))
		require.NoError(t, err)
		assert.Equal(t, 8, n)
		assert.Equal(t, 0, f.Len())
	})

	t.Run("reserve and release", func(t *testing.T) {
		f := NewFixed(10)
		f.Reserve(4)
		assert.Equal(t, 6, f.Avail())
		f.AppendString("1234567")
		assert.Equal(t, 0, f.Len())
		f.AppendString("123456")
		f.Release()
		f.AppendString("TAIL")
		assert.Equal(t, "123456TAIL", f.String())
	})

	t.Run("reserve never cuts written data", func(t *testing.T) {
		f := NewFixed(10)
		f.AppendString("12345678")
		f.Reserve(4)
		assert.Equal(t, 0, f.Avail())
		assert.Equal(t, 8, f.Len())
	})

	t.Run("reset", func(t *testing.T) {
		f := NewFixed(4)
		f.Reserve(2)
		f.AppendString("ab")
		f.Reset()
		assert.Equal(t, 0, f.Len())
		assert.Equal(t, 4, f.Avail())
	})
}

func TestFixedNeverExceedsCapacity(t *testing.T) {
	f := NewFixed(100)
	for i := 0; i < 500; i++ {
		f.AppendString(strings.Repeat("x", i%13))
		require.LessOrEqual(t, f.Len(), f.Cap())
	}
}

func TestStreamIntegers(t *testing.T) {
	cases := []struct {
		name  string
		write func(s *Stream)
		want  string
	}{
		{"int zero", func(s *Stream) { s.Int(0) }, "0"},
		{"int negative one", func(s *Stream) { s.Int(-1) }, "-1"},
		{"int8 min", func(s *Stream) { s.Int8(math.MinInt8) }, "-128"},
		{"int8 max", func(s *Stream) { s.Int8(math.MaxInt8) }, "127"},
		{"int16 min", func(s *Stream) { s.Int16(math.MinInt16) }, "-32768"},
		{"int16 max", func(s *Stream) { s.Int16(math.MaxInt16) }, "32767"},
		{"int32 min", func(s *Stream) { s.Int32(math.MinInt32) }, "-2147483648"},
		{"int32 max", func(s *Stream) { s.Int32(math.MaxInt32) }, "2147483647"},
		{"int64 min", func(s *Stream) { s.Int64(math.MinInt64) }, "-9223372036854775808"},
		{"int64 max", func(s *Stream) { s.Int64(math.MaxInt64) }, "9223372036854775807"},
		{"uint8 max", func(s *Stream) { s.Uint8(math.MaxUint8) }, "255"},
		{"uint16 max", func(s *Stream) { s.Uint16(math.MaxUint16) }, "65535"},
		{"uint32 max", func(s *Stream) { s.Uint32(math.MaxUint32) }, "4294967295"},
		{"uint64 max", func(s *Stream) { s.Uint64(math.MaxUint64) }, "18446744073709551615"},
		{"uint zero", func(s *Stream) { s.Uint(0) }, "0"},
		{"uint max", func(s *Stream) { s.Uint(math.MaxUint) }, strconv.FormatUint(math.MaxUint, 10)},
		{"int min", func(s *Stream) { s.Int(math.MinInt) }, strconv.FormatInt(math.MinInt, 10)},
		{"int max", func(s *Stream) { s.Int(math.MaxInt) }, strconv.FormatInt(math.MaxInt, 10)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStream(SmallBuffer)
			tc.write(s)
			assert.Equal(t, tc.want, s.Buffer().String())
		})
	}
}

func TestStreamIntegerRoundTrip(t *testing.T) {
	s := NewStream(SmallBuffer)
	for v := int64(-100000); v <= 100000; v += 7 {
		s.Reset()
		s.Int64(v)
		got, err := strconv.ParseInt(s.Buffer().String(), 10, 64)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10000; i++ {
		v := int64(rng.Uint64())
		s.Reset()
		s.Int64(v)
		got, err := strconv.ParseInt(s.Buffer().String(), 10, 64)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestStreamIntegerBoundsRoundTrip(t *testing.T) {
	signed := []struct {
		name   string
		bits   int
		write  func(s *Stream, v int64)
		values []int64
	}{
		{"int8", 8, func(s *Stream, v int64) { s.Int8(int8(v)) }, []int64{math.MinInt8, math.MaxInt8, 0, -1}},
		{"int16", 16, func(s *Stream, v int64) { s.Int16(int16(v)) }, []int64{math.MinInt16, math.MaxInt16, 0, -1}},
		{"int32", 32, func(s *Stream, v int64) { s.Int32(int32(v)) }, []int64{math.MinInt32, math.MaxInt32, 0, -1}},
		{"int64", 64, func(s *Stream, v int64) { s.Int64(v) }, []int64{math.MinInt64, math.MaxInt64, 0, -1}},
		{"int", strconv.IntSize, func(s *Stream, v int64) { s.Int(int(v)) }, []int64{math.MinInt, math.MaxInt, 0, -1}},
	}
	for _, tc := range signed {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStream(SmallBuffer)
			for _, v := range tc.values {
				s.Reset()
				tc.write(s, v)
				got, err := strconv.ParseInt(s.Buffer().String(), 10, tc.bits)
				require.NoError(t, err)
				assert.Equal(t, v, got)
			}
		})
	}

	unsigned := []struct {
		name   string
		bits   int
		write  func(s *Stream, v uint64)
		values []uint64
	}{
		{"uint8", 8, func(s *Stream, v uint64) { s.Uint8(uint8(v)) }, []uint64{0, 1, math.MaxUint8}},
		{"uint16", 16, func(s *Stream, v uint64) { s.Uint16(uint16(v)) }, []uint64{0, 1, math.MaxUint16}},
		{"uint32", 32, func(s *Stream, v uint64) { s.Uint32(uint32(v)) }, []uint64{0, 1, math.MaxUint32}},
		{"uint64", 64, func(s *Stream, v uint64) { s.Uint64(v) }, []uint64{0, 1, math.MaxUint64}},
		{"uint", strconv.IntSize, func(s *Stream, v uint64) { s.Uint(uint(v)) }, []uint64{0, 1, math.MaxUint}},
	}
	for _, tc := range unsigned {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStream(SmallBuffer)
			for _, v := range tc.values {
				s.Reset()
				tc.write(s, v)
				got, err := strconv.ParseUint(s.Buffer().String(), 10, tc.bits)
				require.NoError(t, err)
				assert.Equal(t, v, got)
			}
		})
	}
}

func TestStreamSkipsNumbersWithoutRoom(t *testing.T) {
	s := NewStream(MaxNumericSize + 3)
	s.Str("abcd")
	s.Int(42).Float64(1.5).Pointer(0xff).SI(1500).IEC(2048)
	assert.Equal(t, "abcd", s.Buffer().String())

	s.Str("!")
	assert.Equal(t, "abcd!", s.Buffer().String())
}

func TestStreamScalars(t *testing.T) {
	s := NewStream(SmallBuffer)

	s.Bool(true).Byte(' ').Bool(false)
	assert.Equal(t, "1 0", s.Buffer().String())

	s.Reset()
	s.Pointer(0).Byte(' ').Pointer(0xdeadBEEF)
	assert.Equal(t, "0x0 0xDEADBEEF", s.Buffer().String())

	s.Reset()
	x := 7
	s.Ptr(unsafe.Pointer(&x))
	assert.True(t, strings.HasPrefix(s.Buffer().String(), "0x"))

	s.Reset()
	s.Float64(0.1).Byte(' ').Float64(3.14159265358979).Byte(' ').Float64(1e21).Byte(' ').Float32(0.5)
	assert.Equal(t, "0.1 3.14159265359 1e+21 0.5", s.Buffer().String())

	s.Reset()
	s.Rune('é').PadInt(42, 5).PadInt(123456, 3)
	assert.Equal(t, "é   42123456", s.Buffer().String())
}

func TestStreamNullables(t *testing.T) {
	s := NewStream(SmallBuffer)
	var sp *string
	s.StrPtr(sp).Byte(' ').Err(nil).Byte(' ').Any(nil)
	assert.Equal(t, "(null) (null) (null)", s.Buffer().String())

	s.Reset()
	v := "value"
	s.StrPtr(&v).Byte(' ').Err(errors.New("boom"))
	assert.Equal(t, "value boom", s.Buffer().String())
}

func TestStreamAny(t *testing.T) {
	type point struct{ X, Y int }

	s := NewStream(SmallBuffer)
	s.Any("str").Byte(' ').Any(12).Byte(' ').Any(uint8(3)).Byte(' ').Any(2.5).Byte(' ').Any(true)
	assert.Equal(t, "str 12 3 2.5 1", s.Buffer().String())

	s.Reset()
	s.Any(point{1, 2})
	out := s.Buffer().String()
	assert.Contains(t, out, "X:(int)1")
	assert.NotContains(t, out, "\n")
}

func TestStreamSanitizer(t *testing.T) {
	s := NewStream(SmallBuffer).Sanitizer(func(dst []byte, v string) []byte {
		return append(dst, strings.ToUpper(v)...)
	})
	s.Str("abc").Bytes([]byte("def"))
	assert.Equal(t, "ABCdef", s.Buffer().String())
}

func TestFmt(t *testing.T) {
	f := NewFmt("%06d", 42)
	assert.Equal(t, "000042", f.String())
	assert.Equal(t, 6, f.Len())

	f = NewFmt("%.3f", 1.0/3)
	assert.Equal(t, "0.333", f.String())

	f = NewFmt("%s", "not arithmetic")
	assert.Equal(t, 0, f.Len())

	f = NewFmt("%040d", 1)
	assert.Equal(t, FmtSize-1, f.Len())

	s := NewStream(SmallBuffer)
	s.Fmt("%4.1f", 2.26)
	assert.Equal(t, " 2.3", s.Buffer().String())
}

func TestFormatSI(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.00k"},
		{1500, "1.50k"},
		{9994, "9.99k"},
		{9995, "10.0k"},
		{99949, "99.9k"},
		{99950, "100k"},
		{999499, "999k"},
		{999500, "1.00M"},
		{1000000, "1.00M"},
		{9995000, "10.0M"},
		{999500000, "1.00G"},
		{999500000000, "1.00T"},
		{999500000000000, "1.00P"},
		{999500000000000000, "1.00E"},
		{math.MaxInt64, "9.22E"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatSI(tc.in), "input %d", tc.in)
	}
}

func TestFormatIEC(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{1023, "1023"},
		{1024, "1.00Ki"},
		{10234, "9.99Ki"},
		{10235, "10.0Ki"},
		{102348, "99.9Ki"},
		{102349, "100Ki"},
		{1048063, "1023Ki"},
		{1048064, "1.00Mi"},
		{1 << 30, "1.00Gi"},
		{1 << 40, "1.00Ti"},
		{1 << 50, "1.00Pi"},
		{1 << 60, "1.00Ei"},
		{math.MaxInt64, "8.00Ei"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatIEC(tc.in), "input %d", tc.in)
	}
}

func TestMagnitudeStreamMatchesStrings(t *testing.T) {
	s := NewStream(SmallBuffer)
	for _, n := range []int64{0, 1, 999, 12345, 987654321, math.MaxInt64} {
		s.Reset()
		s.SI(n).Byte('|').IEC(n)
		assert.Equal(t, FormatSI(n)+"|"+FormatIEC(n), s.Buffer().String())
	}
}

func TestTimestampLayout(t *testing.T) {
	var prefix [TimePrefixLen]byte
	PutTimePrefix(&prefix, civil.DateTime{Year: 2024, Month: 2, Day: 9, Hour: 7, Minute: 5, Second: 3})
	assert.Equal(t, "20240209 07:05:03", string(prefix[:]))

	PutTimePrefix(&prefix, civil.DateTime{Year: 1, Month: 1, Day: 1})
	assert.Equal(t, "   10101 00:00:00", string(prefix[:]))

	PutTimePrefix(&prefix, civil.DateTime{Year: civil.MaxYear, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59})
	assert.Equal(t, "99991231 23:59:59", string(prefix[:]))

	// Beyond the four columns only the low digits remain
	PutTimePrefix(&prefix, civil.DateTime{Year: 12345, Month: 6, Day: 7})
	assert.Equal(t, "23450607 00:00:00", string(prefix[:]))

	var suffix [MicrosSuffixLen]byte
	PutMicrosSuffix(&suffix, 42)
	assert.Equal(t, ".000042Z ", string(suffix[:]))
	PutMicrosSuffix(&suffix, 0)
	assert.Equal(t, ".000000Z ", string(suffix[:]))
	PutMicrosSuffix(&suffix, 999999)
	assert.Equal(t, ".999999Z ", string(suffix[:]))
}

func TestStreamZeroAlloc(t *testing.T) {
	s := NewStream(SmallBuffer)
	allocs := testing.AllocsPerRun(100, func() {
		s.Reset()
		s.Str("request ").Int(42).Byte(' ').Uint64(7).Byte(' ').Float64(0.25).
			Byte(' ').Pointer(0x1000).Byte(' ').SI(123456).Byte(' ').IEC(1 << 20).Bool(true)
	})
	assert.Zero(t, allocs)
}

func BenchmarkStream(b *testing.B) {
	s := NewStream(SmallBuffer)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Reset()
		s.Str("iteration ").Int(i).Byte(' ').Float64(float64(i) / 3).Byte(' ').IEC(int64(i))
	}
}
