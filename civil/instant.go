// FILE: lixenwraith/fixlog/civil/instant.go
package civil

import (
	"fmt"
	"time"
)

// Time unit constants
const (
	MicrosPerSecond int64 = 1000 * 1000
	SecondsPerDay   int64 = 24 * 60 * 60
)

// Instant is a count of microseconds since the Unix epoch.
// It is wall-clock time and not guaranteed monotonic across clock adjustments.
type Instant int64

// Now returns the current wall-clock instant
func Now() Instant {
	return FromTime(time.Now())
}

// FromTime converts a time.Time
func FromTime(t time.Time) Instant {
	return Instant(t.UnixMicro())
}

// FromUnix builds an instant from whole seconds plus microseconds
func FromUnix(sec int64, usec int) Instant {
	return Instant(sec*MicrosPerSecond + int64(usec))
}

// Micros returns the raw microsecond count
func (i Instant) Micros() int64 { return int64(i) }

// Unix returns whole seconds since the epoch, rounded toward negative infinity
func (i Instant) Unix() int64 {
	sec, _ := floorDiv(int64(i), MicrosPerSecond)
	return sec
}

// Time converts back to a UTC time.Time
func (i Instant) Time() time.Time {
	return time.UnixMicro(int64(i)).UTC()
}

// Add returns i shifted by a fractional number of seconds
func (i Instant) Add(seconds float64) Instant {
	return i + Instant(seconds*float64(MicrosPerSecond))
}

// Before reports whether i is earlier than other
func (i Instant) Before(other Instant) bool { return i < other }

// Diff returns high-low in seconds
func Diff(high, low Instant) float64 {
	return float64(high-low) / float64(MicrosPerSecond)
}

// String renders "<seconds>.<micros>"
func (i Instant) String() string {
	sec, usec := floorDiv(int64(i), MicrosPerSecond)
	return fmt.Sprintf("%d.%06d", sec, usec)
}

// Format renders "YYYYMMDD HH:MM:SS.UUUUUU" in UTC
func (i Instant) Format() string {
	dt, usec := BreakInstant(i)
	return fmt.Sprintf("%04d%02d%02d %02d:%02d:%02d.%06d",
		dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, usec)
}

// DateTime is an instant decomposed into UTC calendar fields
type DateTime struct {
	Year   int // [1, 9999] for representable instants
	Month  int // [1, 12]
	Day    int // [1, 31]
	Hour   int // [0, 23]
	Minute int // [0, 59]
	Second int // [0, 59]
}

// Date returns the calendar date part
func (dt DateTime) Date() Date {
	return Date{jdn: DayNumber(dt.Year, dt.Month, dt.Day)}
}

// Unix reconstructs whole seconds since the epoch
func (dt DateTime) Unix() int64 {
	days := int64(DayNumber(dt.Year, dt.Month, dt.Day) - EpochDayNumber)
	return days*SecondsPerDay + int64(dt.Hour)*3600 + int64(dt.Minute)*60 + int64(dt.Second)
}

// ISO renders "YYYY-MM-DD HH:MM:SS"
func (dt DateTime) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second)
}

// Break decomposes whole seconds since the epoch.
// Negative inputs are floored so the time of day stays within [0, 86400).
func Break(seconds int64) DateTime {
	days, secs := floorDiv(seconds, SecondsPerDay)

	var dt DateTime
	fillHMS(secs, &dt)
	ymd := FromDayNumber(int(days) + EpochDayNumber)
	dt.Year, dt.Month, dt.Day = ymd.Year, ymd.Month, ymd.Day
	return dt
}

// BreakInstant decomposes an instant into calendar fields plus the
// microsecond remainder in [0, 1e6)
func BreakInstant(i Instant) (DateTime, int) {
	sec, usec := floorDiv(int64(i), MicrosPerSecond)
	return Break(sec), int(usec)
}

// StartOfDay floors seconds to the enclosing UTC day boundary
func StartOfDay(seconds int64) int64 {
	days, _ := floorDiv(seconds, SecondsPerDay)
	return days * SecondsPerDay
}

func fillHMS(seconds int64, dt *DateTime) {
	dt.Second = int(seconds % 60)
	minutes := seconds / 60
	dt.Minute = int(minutes % 60)
	dt.Hour = int(minutes / 60)
}

// floorDiv divides with the remainder always in [0, b) for b > 0
func floorDiv(a, b int64) (q, r int64) {
	q, r = a/b, a%b
	if r < 0 {
		r += b
		q--
	}
	return q, r
}
