// FILE: lixenwraith/fixlog/civil/date.go
// Package civil converts between microsecond epoch instants and proleptic
// Gregorian calendar dates using integer Julian Day Number arithmetic.
// All conversions are UTC; no timezone offset is ever applied.
package civil

import (
	"errors"
	"fmt"
)

// Supported year range for validated dates
const (
	MinYear = 1
	MaxYear = 9999
)

// DaysPerWeek is used by Date.WeekDay
const DaysPerWeek = 7

// EpochDayNumber is the Julian Day Number of 1970-01-01
var EpochDayNumber = DayNumber(1970, 1, 1)

// ErrInvalidDate is returned for impossible year/month/day combinations
var ErrInvalidDate = errors.New("civil: invalid date")

// YearMonthDay is a decomposed calendar date
type YearMonthDay struct {
	Year  int // [1, 9999]
	Month int // [1, 12]
	Day   int // [1, 31]
}

// DayNumber returns the Julian Day Number for a proleptic Gregorian date.
// Integer division only; see the calendar FAQ (part 2, section 2.16.1).
func DayNumber(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + y*365 + y/4 - y/100 + y/400 - 32045
}

// FromDayNumber is the inverse of DayNumber
func FromDayNumber(jdn int) YearMonthDay {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - (b*146097)/4
	d := (4*c + 3) / 1461
	e := c - (1461*d)/4
	m := (5*e + 2) / 153
	return YearMonthDay{
		Day:   e - (153*m+2)/5 + 1,
		Month: m + 3 - 12*(m/10),
		Year:  b*100 + d - 4800 + m/10,
	}
}

// DaysInMonth returns the number of days of month in year, 0 for an invalid month
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeap(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// IsLeap reports whether year is a Gregorian leap year
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Date is an immutable calendar date backed by its Julian Day Number.
// The zero Date is invalid.
type Date struct {
	jdn int
}

// NewDate validates and constructs a Date
func NewDate(year, month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%w: year %d out of range [%d, %d]", ErrInvalidDate, year, MinYear, MaxYear)
	}
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("%w: month %d", ErrInvalidDate, month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, fmt.Errorf("%w: day %d for %04d-%02d", ErrInvalidDate, day, year, month)
	}
	return Date{jdn: DayNumber(year, month, day)}, nil
}

// MustDate is NewDate for literals known to be valid; it panics otherwise
func MustDate(year, month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateFromDayNumber wraps a Julian Day Number
func DateFromDayNumber(jdn int) Date {
	return Date{jdn: jdn}
}

// Valid reports whether d was constructed from a real date
func (d Date) Valid() bool { return d.jdn > 0 }

// DayNumber returns the Julian Day Number
func (d Date) DayNumber() int { return d.jdn }

// YearMonthDay decomposes the date
func (d Date) YearMonthDay() YearMonthDay { return FromDayNumber(d.jdn) }

func (d Date) Year() int  { return d.YearMonthDay().Year }
func (d Date) Month() int { return d.YearMonthDay().Month }
func (d Date) Day() int   { return d.YearMonthDay().Day }

// WeekDay returns [0, 6] for [Sunday, Saturday]
func (d Date) WeekDay() int {
	return (d.jdn + 1) % DaysPerWeek
}

// Before reports whether d is earlier than other
func (d Date) Before(other Date) bool { return d.jdn < other.jdn }

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	ymd := d.YearMonthDay()
	return fmt.Sprintf("%04d-%02d-%02d", ymd.Year, ymd.Month, ymd.Day)
}
