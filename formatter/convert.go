// FILE: lixenwraith/fixlog/formatter/convert.go
package formatter

// MaxNumericSize is the room a numeric field requires before it is written.
// It covers the longest representation of any supported scalar, so numbers
// are either written whole or skipped, never truncated.
const MaxNumericSize = 64

// Digit tables. digits is centered on '0' so a negative remainder from a
// signed modulo indexes to the correct character.
const (
	digits    = "9876543210123456789"
	zeroIndex = 9
	digitsHex = "0123456789ABCDEF"
)

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// convert writes the decimal form of value at the start of buf and returns
// the number of bytes used. buf must hold at least 20 bytes plus sign.
func convert[T integer](buf []byte, value T) int {
	i := value
	p := 0
	for {
		lsd := int(i % 10)
		i /= 10
		buf[p] = digits[zeroIndex+lsd]
		p++
		if i == 0 {
			break
		}
	}
	if value < 0 {
		buf[p] = '-'
		p++
	}
	reverse(buf[:p])
	return p
}

// convertHex writes the uppercase hexadecimal form of value without prefix
func convertHex(buf []byte, value uintptr) int {
	i := value
	p := 0
	for {
		buf[p] = digitsHex[i%16]
		i /= 16
		p++
		if i == 0 {
			break
		}
	}
	reverse(buf[:p])
	return p
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// twoDigits writes a zero-padded two digit number at b[0:2]
func twoDigits(b []byte, d int) {
	b[1] = digits[zeroIndex+d%10]
	d /= 10
	b[0] = digits[zeroIndex+d%10]
}

// nDigits writes d right-aligned into b, left padded with pad. Assumes d >= 0.
func nDigits(b []byte, d int, pad byte) {
	j := len(b) - 1
	for ; j >= 0 && d > 0; j-- {
		b[j] = digits[zeroIndex+d%10]
		d /= 10
	}
	if j == len(b)-1 && j >= 0 {
		// d was zero
		b[j] = '0'
		j--
	}
	for ; j >= 0; j-- {
		b[j] = pad
	}
}
