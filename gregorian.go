// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ifc

import (
	"fmt"
	"time"
)

var (
	daysInMonth     []int // days in each month of a non-leap year
	daysInMonthLeap []int
	dayOfYear       []int // per month cumulative days in year so [0, 31, 59 etc]
	dayOfYearLeap   []int // per month cumulative days in leap year [0, 31, 60 etc]
	gregorianMonths = []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}
)

func init() {
	daysInMonth = []int{
		31, // january
		28, // february
		31, // march
		30, // april
		31, // may
		30, // june
		31, // july
		31, // august
		30, // september
		31, // october
		30, // november
		31, // december
	}
	daysInMonthLeap = make([]int, 12)
	copy(daysInMonthLeap, daysInMonth)
	daysInMonthLeap[time.February-1] = 29

	dayOfYear = make([]int, 12)
	dayOfYearLeap = make([]int, 12)
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] = dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] = dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// IsLeapYear returns true if the given proleptic Gregorian year is a leap
// year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the given month for the given
// year. Months outside of January to December return 0.
func DaysInMonth(year int, month time.Month) int {
	if month < time.January || month > time.December {
		return 0
	}
	return daysInMonthForYear(year)[month-1]
}

func daysInMonthForYear(year int) []int {
	if IsLeapYear(year) {
		return daysInMonthLeap
	}
	return daysInMonth
}

// CalendarDate represents a UTC Gregorian date.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate returns a CalendarDate for the given year, month and day.
// No validation is performed, use Validate if required.
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// FromTime returns the CalendarDate for t once normalized to UTC.
func FromTime(t time.Time) CalendarDate {
	t = t.UTC()
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today returns the current UTC date.
func Today() CalendarDate {
	return FromTime(time.Now())
}

// Time returns midnight UTC on the date.
func (cd CalendarDate) Time() time.Time {
	return time.Date(cd.Year, cd.Month, cd.Day, 0, 0, 0, 0, time.UTC)
}

// String returns the date in YYYY-MM-DD format. Years before 1 CE are
// prefixed with a minus sign, eg. -0005-01-01, and years after 9999 have
// more than 4 digits.
func (cd CalendarDate) String() string {
	if cd.Year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -cd.Year, int(cd.Month), cd.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, int(cd.Month), cd.Day)
}

// Validate returns an error wrapping ErrInvalidDate if the month or day
// are out of range for the date's year.
func (cd CalendarDate) Validate() error {
	if cd.Month < time.January || cd.Month > time.December {
		return fmt.Errorf("month %d: %w", int(cd.Month), ErrInvalidDate)
	}
	if n := DaysInMonth(cd.Year, cd.Month); cd.Day < 1 || cd.Day > n {
		return fmt.Errorf("day %d for %v %d: %w", cd.Day, cd.Month, cd.Year, ErrInvalidDate)
	}
	return nil
}

// DayOfYear returns the 1-based day of the year for date, ie. 1-365 for
// non-leap years and 1-366 for leap years. Only the months preceding the
// date's month contribute to the total.
func DayOfYear(date CalendarDate) int {
	cumulative := dayOfYear
	if IsLeapYear(date.Year) {
		cumulative = dayOfYearLeap
	}
	if date.Month < time.January || date.Month > time.December {
		return date.Day
	}
	return cumulative[date.Month-1] + date.Day
}
