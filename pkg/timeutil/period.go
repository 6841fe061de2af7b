// Package timeutil derives calendar period boundaries from a reference
// instant. All arithmetic happens in the location carried by the reference;
// the package never reads ambient zone state.
package timeutil

import "time"

// Range is an inclusive time interval.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies within the range, boundaries included.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Duration returns the length of the range.
func (r Range) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Equal reports whether both ranges describe the same pair of instants.
func (r Range) Equal(other Range) bool {
	return r.Start.Equal(other.Start) && r.End.Equal(other.End)
}

// RangeSet holds the boundaries of the four calendar periods enclosing one
// reference instant.
type RangeSet struct {
	Day   Range
	Week  Range
	Month Range
	Year  Range
}

// lastMilli is the nanosecond offset of the final millisecond of a day,
// 23:59:59.999. Boundaries are millisecond-precise, not nanosecond-precise.
const lastMilli = 999 * int(time.Millisecond)

// monthDays holds days per month in a non-leap year, January first.
var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear applies the Gregorian rule: divisible by 4, except centuries
// not divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of the given
// year.
func DaysInMonth(year int, month time.Month) int {
	if month == time.February && IsLeapYear(year) {
		return 29
	}
	return monthDays[month-1]
}

// isoWeekday maps time.Weekday (Sunday == 0) onto the ISO index with
// Monday == 0 and Sunday == 6.
func isoWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// StartOfDay returns midnight of ref's calendar date.
func StartOfDay(ref time.Time) time.Time {
	y, m, d := ref.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ref.Location())
}

// EndOfDay returns 23:59:59.999 of ref's calendar date.
func EndOfDay(ref time.Time) time.Time {
	y, m, d := ref.Date()
	return time.Date(y, m, d, 23, 59, 59, lastMilli, ref.Location())
}

// StartOfWeek returns the Monday of ref's week. Unlike the other period
// starts it keeps ref's time-of-day; only the date moves. Consumers of the
// week boundaries rely on that, so it must not be changed to truncate.
func StartOfWeek(ref time.Time) time.Time {
	y, m, d := ref.Date()
	h, min, s := ref.Clock()
	// time.Date normalizes a zero or negative day into the previous month,
	// so a week crossing a month or year edge needs no special casing.
	return time.Date(y, m, d-isoWeekday(ref), h, min, s, ref.Nanosecond(), ref.Location())
}

// EndOfWeek returns the Sunday of ref's week at ref's time-of-day.
func EndOfWeek(ref time.Time) time.Time {
	start := StartOfWeek(ref)
	y, m, d := start.Date()
	h, min, s := start.Clock()
	return time.Date(y, m, d+6, h, min, s, start.Nanosecond(), start.Location())
}

// StartOfMonth returns midnight of the first day of ref's month.
func StartOfMonth(ref time.Time) time.Time {
	y, m, _ := ref.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, ref.Location())
}

// EndOfMonth returns 23:59:59.999 of the last day of ref's month, using the
// month-length table and the Gregorian leap rule.
func EndOfMonth(ref time.Time) time.Time {
	y, m, _ := ref.Date()
	return time.Date(y, m, DaysInMonth(y, m), 23, 59, 59, lastMilli, ref.Location())
}

// StartOfYear returns midnight of January 1 of ref's year.
func StartOfYear(ref time.Time) time.Time {
	return time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location())
}

// EndOfYear returns 23:59:59.999 of December 31 of ref's year.
func EndOfYear(ref time.Time) time.Time {
	return time.Date(ref.Year(), time.December, 31, 23, 59, 59, lastMilli, ref.Location())
}

// Boundaries computes the inclusive start and end of the day, week, month
// and year enclosing ref. The reference is truncated to the millisecond
// first; every derived instant stays in ref's location and satisfies
// start <= ref <= end for its period.
//
// Week boundaries carry ref's time-of-day while the other periods truncate
// to midnight or roll to the last millisecond of the day; see StartOfWeek.
// Week boundaries may also fall in the adjacent month or year.
func Boundaries(ref time.Time) RangeSet {
	ref = ref.Truncate(time.Millisecond)
	return RangeSet{
		Day:   Range{Start: StartOfDay(ref), End: EndOfDay(ref)},
		Week:  Range{Start: StartOfWeek(ref), End: EndOfWeek(ref)},
		Month: Range{Start: StartOfMonth(ref), End: EndOfMonth(ref)},
		Year:  Range{Start: StartOfYear(ref), End: EndOfYear(ref)},
	}
}
