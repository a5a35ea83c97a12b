// FILE: lixenwraith/fixlog/formatter/magnitude.go
package formatter

import "strconv"

// siTier thresholds are expressed in units of scale/1000
type siTier struct {
	scale  float64
	unit   int64 // scale / 1000
	suffix byte
}

var siTiers = [...]siTier{
	{1e3, 1, 'k'},
	{1e6, 1e3, 'M'},
	{1e9, 1e6, 'G'},
	{1e12, 1e9, 'T'},
	{1e15, 1e12, 'P'},
}

// FormatSI renders n with a decimal unit suffix and three significant digits.
//
//	[0, 999]
//	[1.00k, 9.99k]
//	[10.0k, 99.9k]
//	[ 100k,  999k]
//	[1.00M, 9.99M]
//	...
//
// Values at or above 999.5P use E with two decimals.
func FormatSI(n int64) string {
	var buf [MaxNumericSize]byte
	return string(AppendSI(buf[:0], n))
}

// AppendSI is FormatSI appending to dst
func AppendSI(dst []byte, n int64) []byte {
	if n < 1000 {
		return strconv.AppendInt(dst, n, 10)
	}
	v := float64(n)
	for _, t := range siTiers {
		switch {
		case n < t.unit*9995:
			return append(strconv.AppendFloat(dst, v/t.scale, 'f', 2, 64), t.suffix)
		case n < t.unit*99950:
			return append(strconv.AppendFloat(dst, v/t.scale, 'f', 1, 64), t.suffix)
		case n < t.unit*999500:
			return append(strconv.AppendFloat(dst, v/t.scale, 'f', 0, 64), t.suffix)
		}
	}
	return append(strconv.AppendFloat(dst, v/1e18, 'f', 2, 64), 'E')
}

const (
	ki = 1024.0
	mi = ki * 1024
	gi = mi * 1024
	ti = gi * 1024
	pi = ti * 1024
	ei = pi * 1024
)

var iecTiers = [...]struct {
	scale  float64
	suffix string
}{
	{ki, "Ki"},
	{mi, "Mi"},
	{gi, "Gi"},
	{ti, "Ti"},
	{pi, "Pi"},
}

// FormatIEC renders n with a binary unit suffix.
//
//	[0, 1023]
//	[1.00Ki, 9.99Ki]
//	[10.0Ki, 99.9Ki]
//	[ 100Ki, 1023Ki]
//	[1.00Mi, 9.99Mi]
//	...
//
// The Ei tier uses two decimals below 9.995Ei and one above.
func FormatIEC(n int64) string {
	var buf [MaxNumericSize]byte
	return string(AppendIEC(buf[:0], n))
}

// AppendIEC is FormatIEC appending to dst
func AppendIEC(dst []byte, n int64) []byte {
	v := float64(n)
	if v < ki {
		return strconv.AppendInt(dst, n, 10)
	}
	for _, t := range iecTiers {
		switch {
		case v < t.scale*9.995:
			return append(strconv.AppendFloat(dst, v/t.scale, 'f', 2, 64), t.suffix...)
		case v < t.scale*99.95:
			return append(strconv.AppendFloat(dst, v/t.scale, 'f', 1, 64), t.suffix...)
		case v < t.scale*1023.5:
			return append(strconv.AppendFloat(dst, v/t.scale, 'f', 0, 64), t.suffix...)
		}
	}
	if v < ei*9.995 {
		return append(strconv.AppendFloat(dst, v/ei, 'f', 2, 64), "Ei"...)
	}
	return append(strconv.AppendFloat(dst, v/ei, 'f', 1, 64), "Ei"...)
}
