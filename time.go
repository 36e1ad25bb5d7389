package keyz

import (
	"time"

	"github.com/golang-sql/civil"
)

// RFC 3339 with an explicit numeric offset. Times are always converted to UTC
// first, so the offset is always +00:00 (never Z).
var timeLayouts = [...]string{
	0: "2006-01-02T15:04:05-07:00",
	3: "2006-01-02T15:04:05.000-07:00",
	6: "2006-01-02T15:04:05.000000-07:00",
	9: "2006-01-02T15:04:05.000000000-07:00",
}

// fracDigits returns the shortest of 0, 3, 6 or 9 fractional digits that
// represents nsec exactly.
func fracDigits(nsec int) int {
	switch {
	case nsec == 0:
		return 0
	case nsec%1_000_000 == 0:
		return 3
	case nsec%1_000 == 0:
		return 6
	default:
		return 9
	}
}

func appendTime(buf []byte, t time.Time) []byte {
	t = t.UTC()
	return t.AppendFormat(buf, timeLayouts[fracDigits(t.Nanosecond())])
}

// FormatTime returns the text that Time(t) contributes to a key, for example
// "2016-11-08T00:00:00+00:00".
func FormatTime(t time.Time) string {
	return string(appendTime(nil, t))
}

// Time encodes an instant as RFC 3339 text in UTC. Values that describe the
// same instant in different zones encode identically, and byte order matches
// chronological order for years 0000 through 9999.
//
// Fractional seconds are omitted when zero and otherwise rendered with 3, 6
// or 9 digits. Byte order stays chronological across precisions because
// '+' sorts before '.'.
type Time time.Time

func (v Time) AppendKey(buf []byte) []byte {
	return appendTime(buf, time.Time(v))
}

// Date is a calendar day anchored in UTC. It encodes as midnight UTC of that
// day, so Date{2016, time.November, 8} and
// Time(time.Date(2016, 11, 8, 0, 0, 0, 0, time.UTC)) produce the same key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the UTC calendar day that contains t.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{y, m, d}
}

// Time returns midnight UTC at the start of the day. Out-of-range months and
// days are normalized the way time.Date does.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return d.Time().Format(time.DateOnly)
}

func (d Date) AppendKey(buf []byte) []byte {
	return appendTime(buf, d.Time())
}

// NaiveDate is a calendar day with no time zone attached.
//
// A NaiveDate is assumed to already be a UTC date: no conversion or shifting
// is applied. If the day is meant in some other zone, convert it to a Time in
// that zone and use Time or DateOf instead, otherwise keys built around local
// midnight will be off by the zone offset.
type NaiveDate civil.Date

// UTC anchors the date in UTC without shifting it.
func (d NaiveDate) UTC() Date {
	return Date{d.Year, d.Month, d.Day}
}

func (d NaiveDate) String() string {
	return civil.Date(d).String()
}

func (d NaiveDate) AppendKey(buf []byte) []byte {
	return d.UTC().AppendKey(buf)
}
