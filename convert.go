// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ifc

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Scheme selects where Leap Day is placed.
type Scheme int

const (
	// Original places Leap Day between the last day of June and the
	// first day of Sol.
	Original Scheme = iota
	// Proposed places Leap Day at the end of the year, after the
	// year end day.
	Proposed
)

// String implements fmt.Stringer and flag.Value.
func (s Scheme) String() string {
	switch s {
	case Original:
		return "original"
	case Proposed:
		return "proposed"
	}
	return fmt.Sprintf("%%!Scheme(%d)", int(s))
}

// ParseScheme parses "original" or "proposed" in any case, the empty
// string is treated as "original".
func ParseScheme(val string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "", "original":
		return Original, nil
	case "proposed":
		return Proposed, nil
	}
	return Original, fmt.Errorf("unknown scheme %q, expected original or proposed", val)
}

// Set implements flag.Value.
func (s *Scheme) Set(val string) error {
	n, err := ParseScheme(val)
	if err != nil {
		return err
	}
	*s = n
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Scheme) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scheme) UnmarshalText(text []byte) error {
	return s.Set(string(text))
}

// Kind distinguishes regular days from the days that belong to no month.
type Kind int

const (
	RegularDay Kind = iota
	LeapDay
	NewYearsDay
)

func (k Kind) String() string {
	switch k {
	case RegularDay:
		return "regular"
	case LeapDay:
		return "leap-day"
	case NewYearsDay:
		return "new-years-day"
	}
	return fmt.Sprintf("%%!Kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	for _, c := range []Kind{RegularDay, LeapDay, NewYearsDay} {
		if c.String() == string(text) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("unknown kind %q", text)
}

// Date is an IFC date. Month, Day and Weekday are only set for regular
// days. Year is the year that the date is labelled with which for the
// days following December is the next Gregorian year.
type Date struct {
	Kind    Kind
	Year    int
	Month   Month
	Day     int
	Weekday Weekday
}

type dateWire struct {
	Kind    Kind   `json:"kind" yaml:"kind"`
	Year    int    `json:"year" yaml:"year"`
	Month   string `json:"month,omitempty" yaml:"month,omitempty"`
	Day     int    `json:"day,omitempty" yaml:"day,omitempty"`
	Weekday string `json:"weekday,omitempty" yaml:"weekday,omitempty"`
	Label   string `json:"label" yaml:"label"`
}

func (d Date) wire() dateWire {
	w := dateWire{Kind: d.Kind, Year: d.Year, Label: d.String()}
	if d.Kind == RegularDay {
		w.Month = d.Month.String()
		w.Day = d.Day
		w.Weekday = d.Weekday.String()
	}
	return w
}

// MarshalJSON implements json.Marshaler. Month and weekday are
// encoded by name and omitted for days that belong to no month.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.wire())
}

// MarshalYAML implements yaml.Marshaler, see MarshalJSON.
func (d Date) MarshalYAML() (any, error) {
	return d.wire(), nil
}

// String returns "Leap Day <year>", "New Years Day <year>" or
// "<Day>, <DD> <Mon> <year>" for regular days, eg. "Sun, 01 Sol 2000".
func (d Date) String() string {
	switch d.Kind {
	case LeapDay:
		return fmt.Sprintf("Leap Day %d", d.Year)
	case NewYearsDay:
		return fmt.Sprintf("New Years Day %d", d.Year)
	}
	return fmt.Sprintf("%s, %02d %s %d", d.Weekday.Short(), d.Day, d.Month.Short(), d.Year)
}

// monthAndDay returns the 0-based IFC month and 1-based day of month
// for a 1-based day of the year.
func monthAndDay(doy int) (int, int) {
	month := (doy - 1) / DaysPerMonth
	day := doy % DaysPerMonth
	if day == 0 {
		day = DaysPerMonth
	}
	return month, day
}

// the 0-based month index used for the days that follow December.
const yearEndMonth = MonthsPerYear

// Convert returns the IFC date for the supplied Gregorian date using the
// requested scheme. It is total over valid dates.
func Convert(date CalendarDate, scheme Scheme) Date {
	year := date.Year
	doy := DayOfYear(date)
	month, day := monthAndDay(doy)

	if IsLeapYear(year) && scheme == Original {
		if month == int(Sol)-1 && day == 1 {
			return Date{Kind: LeapDay, Year: year}
		}
		if month >= int(Sol)-1 {
			month, day = monthAndDay(doy - 1)
		}
	}

	if month == yearEndMonth {
		switch day {
		case 1:
			return Date{Kind: NewYearsDay, Year: year + 1}
		case 2:
			// Only reachable for the proposed scheme in leap years.
			return Date{Kind: LeapDay, Year: year + 1}
		}
	}

	return Date{
		Kind:    RegularDay,
		Year:    year,
		Month:   Month(month + 1),
		Day:     day,
		Weekday: Weekday(day % 7),
	}
}

// ToIFCString returns the IFC date for date as a string, see Date.String.
// The proposed scheme is used if useProposed is true.
func ToIFCString(date CalendarDate, useProposed bool) string {
	scheme := Original
	if useProposed {
		scheme = Proposed
	}
	return Convert(date, scheme).String()
}
