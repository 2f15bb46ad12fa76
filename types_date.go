package moneykeeper

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// MinYear and MaxYear bound the years a ledger date may carry.
const (
	MinYear = 2000
	MaxYear = 2100
)

// Date represents a calendar date with day-level granularity.
//
// A Date obtained from NewDate, ParseDate or one of the With setters is
// always valid: the year is within [MinYear, MaxYear], the month within
// [1, 12] and the day fits the month, leap years included. The zero Date is
// the only invalid value the type can hold.
type Date struct {
	y int
	m int
	d int
}

// NewDate returns a validated Date for the given year, month, and day.
func NewDate(year, month, day int) (Date, error) {
	d := Date{year, month, day}
	if err := d.check(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// Today returns the current date.
func Today() Date {
	y, m, d := time.Now().Date()
	return Date{y, int(m), d}
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date, 1 for January.
func (d Date) Month() int { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// WithYear returns a copy of the date with the year replaced. The receiver
// is left untouched when the resulting date would be invalid.
func (d Date) WithYear(year int) (Date, error) {
	n := Date{year, d.m, d.d}
	if err := n.check(); err != nil {
		return Date{}, err
	}
	return n, nil
}

// WithMonth returns a copy of the date with the month replaced.
func (d Date) WithMonth(month int) (Date, error) {
	n := Date{d.y, month, d.d}
	if err := n.check(); err != nil {
		return Date{}, err
	}
	return n, nil
}

// WithDay returns a copy of the date with the day replaced.
func (d Date) WithDay(day int) (Date, error) {
	n := Date{d.y, d.m, day}
	if err := n.check(); err != nil {
		return Date{}, err
	}
	return n, nil
}

// isLeapYear reports whether the date's year is a leap year.
func (d Date) isLeapYear() bool {
	return (d.y%4 == 0 && d.y%100 != 0) || d.y%400 == 0
}

// daysInMonth returns the number of days in the date's month.
func (d Date) daysInMonth() int {
	days := [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if d.m == 2 && d.isLeapYear() {
		return 29
	}
	return days[d.m-1]
}

func (d Date) check() error {
	if d.y < MinYear || d.y > MaxYear {
		return ValidationError{Field: "year", Reason: fmt.Sprintf("%d outside [%d, %d]", d.y, MinYear, MaxYear)}
	}
	if d.m < 1 || d.m > 12 {
		return ValidationError{Field: "month", Reason: fmt.Sprintf("%d outside [1, 12]", d.m)}
	}
	if d.d < 1 || d.d > d.daysInMonth() {
		return ValidationError{Field: "day", Reason: fmt.Sprintf("%d outside [1, %d]", d.d, d.daysInMonth())}
	}
	return nil
}

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time {
	return time.Date(d.y, time.Month(d.m), d.d, 0, 0, 0, 0, time.UTC)
}

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// ParseDate parses a Date from an ISO-8601 string like "2025-07-01".
// Single-digit month and day are accepted.
func ParseDate(str string) (Date, error) {
	parts := strings.SplitN(strings.TrimSpace(str), "-", 3)
	if len(parts) != 3 {
		return Date{}, ValidationError{Field: "date", Reason: fmt.Sprintf("%q want format %q", str, DateFormat)}
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, ValidationError{Field: "date", Reason: fmt.Sprintf("%q want format %q", str, DateFormat)}
		}
		nums[i] = n
	}
	return NewDate(nums[0], nums[1], nums[2])
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}
