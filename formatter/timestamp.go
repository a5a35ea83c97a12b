// FILE: lixenwraith/fixlog/formatter/timestamp.go
package formatter

import "github.com/lixenwraith/fixlog/civil"

// Record timestamp layout: "YYYYMMDD HH:MM:SS" + ".UUUUUUZ "
const (
	TimePrefixLen   = 17
	MicrosSuffixLen = 9
)

// PutTimePrefix renders dt as "YYYYMMDD HH:MM:SS". The year is space padded.
// The layout has four year columns, so only years in [civil.MinYear,
// civil.MaxYear] render faithfully; a later year keeps its low four digits.
func PutTimePrefix(b *[TimePrefixLen]byte, dt civil.DateTime) {
	nDigits(b[0:4], dt.Year, ' ')
	twoDigits(b[4:6], dt.Month)
	twoDigits(b[6:8], dt.Day)
	b[8] = ' '
	twoDigits(b[9:11], dt.Hour)
	b[11] = ':'
	twoDigits(b[12:14], dt.Minute)
	b[14] = ':'
	twoDigits(b[15:17], dt.Second)
}

// PutMicrosSuffix renders usec as ".UUUUUUZ "
func PutMicrosSuffix(b *[MicrosSuffixLen]byte, usec int) {
	b[0] = '.'
	nDigits(b[1:7], usec, '0')
	b[7] = 'Z'
	b[8] = ' '
}
