// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ifc

import "fmt"

var (
	monthNames = []string{
		"January",
		"February",
		"March",
		"April",
		"May",
		"June",
		"Sol",
		"July",
		"August",
		"September",
		"October",
		"November",
		"December",
	}

	// IFC weeks start on Saturday so that index 0 is the day name for
	// day 28 (and 7, 14, 21) of every month.
	dayNames = []string{
		"Saturday",
		"Sunday",
		"Monday",
		"Tuesday",
		"Wednesday",
		"Thursday",
		"Friday",
	}

	shortMonthNames []string
	shortDayNames   []string
)

func init() {
	shortMonthNames = truncateAll(monthNames, 3)
	shortDayNames = truncateAll(dayNames, 3)
}

func truncateAll(names []string, n int) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = name[:min(n, len(name))]
	}
	return out
}

// Month is an IFC month, January is 1, Sol is 7 and December is 13.
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	Sol
	July
	August
	September
	October
	November
	December
)

// MonthsPerYear is the number of regular IFC months.
const MonthsPerYear = 13

// DaysPerMonth is the number of days in every IFC month.
const DaysPerMonth = 28

func (m Month) valid() bool {
	return m >= January && m <= December
}

// String returns the full English name of the month.
func (m Month) String() string {
	if !m.valid() {
		return fmt.Sprintf("%%!Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// Short returns the 3 letter abbreviation of the month's name.
func (m Month) Short() string {
	if !m.valid() {
		return fmt.Sprintf("%%!Month(%d)", int(m))
	}
	return shortMonthNames[m-1]
}

// Weekday is an IFC day of the week, Saturday is 0.
type Weekday int

const (
	Saturday Weekday = iota
	Sunday
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
)

// String returns the full English name of the day.
func (d Weekday) String() string {
	if d < Saturday || d > Friday {
		return fmt.Sprintf("%%!Weekday(%d)", int(d))
	}
	return dayNames[d]
}

// Short returns the 3 letter abbreviation of the day's name.
func (d Weekday) Short() string {
	if d < Saturday || d > Friday {
		return fmt.Sprintf("%%!Weekday(%d)", int(d))
	}
	return shortDayNames[d]
}
