// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ifc

import (
	"iter"
	"time"
)

// Dates returns an iterator over every Gregorian date in year.
func Dates(year int) iter.Seq[CalendarDate] {
	return func(yield func(CalendarDate) bool) {
		days := daysInMonthForYear(year)
		for m := time.January; m <= time.December; m++ {
			for d := 1; d <= days[m-1]; d++ {
				if !yield(CalendarDate{Year: year, Month: m, Day: d}) {
					return
				}
			}
		}
	}
}

// Year returns an iterator over every Gregorian date in year paired
// with its IFC date under the specified scheme.
func Year(year int, scheme Scheme) iter.Seq2[CalendarDate, Date] {
	return func(yield func(CalendarDate, Date) bool) {
		for cd := range Dates(year) {
			if !yield(cd, Convert(cd, scheme)) {
				return
			}
		}
	}
}

// Samples returns a set of dates that cover the interesting boundaries
// of the calendar: the end of a non-leap year, the month ends and Leap
// Day of a leap year and the same dates in the following non-leap year.
func Samples() CalendarDateList {
	nd := NewCalendarDate
	return CalendarDateList{
		nd(1999, time.December, 31),

		nd(2000, time.January, 1),
		nd(2000, time.January, 20),
		nd(2000, time.January, 28),
		nd(2000, time.January, 29),
		nd(2000, time.February, 25),
		nd(2000, time.February, 29),
		nd(2000, time.June, 16),
		nd(2000, time.June, 17),
		nd(2000, time.June, 18),
		nd(2000, time.July, 15),
		nd(2000, time.July, 16),
		nd(2000, time.August, 12),
		nd(2000, time.December, 20),
		nd(2000, time.December, 29),
		nd(2000, time.December, 30),
		nd(2000, time.December, 31),

		nd(2001, time.January, 1),
		nd(2001, time.January, 20),
		nd(2001, time.January, 28),
		nd(2001, time.January, 29),
		nd(2001, time.February, 25),
		nd(2001, time.June, 16),
		nd(2001, time.June, 17),
		nd(2001, time.June, 18),
		nd(2001, time.July, 15),
		nd(2001, time.July, 16),
		nd(2001, time.August, 12),
		nd(2001, time.December, 20),
		nd(2001, time.December, 29),
		nd(2001, time.December, 30),
		nd(2001, time.December, 31),
	}
}
