// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ifc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is wrapped by all errors returned for dates that
// cannot be parsed or that are out of range.
var ErrInvalidDate = errors.New("invalid date")

const expectedDateFormats = "2006-01-02, 2006/01/02, Jan-02-2006 or 02-Jan-2006"

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (time.Month, error) {
	if !isNumeric(val) {
		return 0, fmt.Errorf("month %q: %w", val, ErrInvalidDate)
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("month %q: %w", val, ErrInvalidDate)
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("month %d: %w", n, ErrInvalidDate)
	}
	return time.Month(n), nil
}

// ParseMonth parses a month as either a number or a name. Names may be
// given as "Jan" to "Dec" or any longer prefix of "January" to "December"
// in either lower or upper case.
func ParseMonth(val string) (time.Month, error) {
	if m, err := ParseNumericMonth(val); err == nil {
		return m, nil
	}
	lc := strings.ToLower(val)
	if len(lc) >= 3 {
		for i := range gregorianMonths {
			if strings.HasPrefix(gregorianMonths[i], lc) {
				return time.Month(i + 1), nil
			}
		}
	}
	return 0, fmt.Errorf("month %q: %w", val, ErrInvalidDate)
}

func parseYear(val string) (int, error) {
	if !isNumeric(val) {
		return 0, fmt.Errorf("year %q: %w", val, ErrInvalidDate)
	}
	y, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("year %q: %w", val, ErrInvalidDate)
	}
	return y, nil
}

func parseDay(val string) (int, error) {
	if !isNumeric(val) {
		return 0, fmt.Errorf("day %q: %w", val, ErrInvalidDate)
	}
	d, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("day %q: %w", val, ErrInvalidDate)
	}
	return d, nil
}

func isNumeric(val string) bool {
	if len(val) == 0 {
		return false
	}
	for _, c := range val {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ParseCalendarDate parses a date in one of the formats 2006-01-02,
// 2006/01/02, Jan-02-2006 or 02-Jan-2006 (the month name may be any
// prefix of at least 3 letters) and validates it. The year-first formats
// accept years of 4 or more digits and a leading minus sign, as
// produced by CalendarDate.String.
func ParseCalendarDate(val string) (CalendarDate, error) {
	val = strings.TrimSpace(val)
	unsigned, negative := strings.CutPrefix(val, "-")
	sep := "-"
	if strings.Contains(unsigned, "/") {
		sep = "/"
	}
	parts := strings.Split(unsigned, sep)
	if len(parts) != 3 {
		return CalendarDate{}, fmt.Errorf("%q, expected %s: %w", val, expectedDateFormats, ErrInvalidDate)
	}
	var (
		cd  CalendarDate
		err error
	)
	switch {
	case isNumeric(parts[0]) && len(parts[0]) >= 4:
		// 2006-01-02
		if cd.Year, err = parseYear(parts[0]); err != nil {
			break
		}
		if negative {
			cd.Year = -cd.Year
		}
		if cd.Month, err = ParseNumericMonth(parts[1]); err != nil {
			break
		}
		cd.Day, err = parseDay(parts[2])
	case negative:
		err = fmt.Errorf("%q, only year-first dates may be negative: %w", val, ErrInvalidDate)
	case !isNumeric(parts[0]):
		// Jan-02-2006
		if cd.Month, err = ParseMonth(parts[0]); err != nil {
			break
		}
		if cd.Day, err = parseDay(parts[1]); err != nil {
			break
		}
		cd.Year, err = parseYear(parts[2])
	default:
		// 02-Jan-2006
		if cd.Day, err = parseDay(parts[0]); err != nil {
			break
		}
		if isNumeric(parts[1]) {
			err = fmt.Errorf("%q is ambiguous, expected %s: %w", val, expectedDateFormats, ErrInvalidDate)
			break
		}
		if cd.Month, err = ParseMonth(parts[1]); err != nil {
			break
		}
		cd.Year, err = parseYear(parts[2])
	}
	if err != nil {
		return CalendarDate{}, err
	}
	if err := cd.Validate(); err != nil {
		return CalendarDate{}, err
	}
	return cd, nil
}

// Parse parses val using ParseCalendarDate.
func (cd *CalendarDate) Parse(val string) error {
	d, err := ParseCalendarDate(val)
	if err != nil {
		return err
	}
	*cd = d
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (cd CalendarDate) MarshalText() ([]byte, error) {
	return []byte(cd.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (cd *CalendarDate) UnmarshalText(text []byte) error {
	return cd.Parse(string(text))
}

// CalendarDateList is a list of dates.
type CalendarDateList []CalendarDate

// Parse a comma separated list of dates.
func (cdl *CalendarDateList) Parse(val string) error {
	if len(val) == 0 {
		return nil
	}
	parts := strings.Split(val, ",")
	l := make(CalendarDateList, 0, len(parts))
	for _, part := range parts {
		var cd CalendarDate
		if err := cd.Parse(part); err != nil {
			return err
		}
		l = append(l, cd)
	}
	*cdl = l
	return nil
}

func (cdl CalendarDateList) String() string {
	var out strings.Builder
	for i, d := range cdl {
		if i > 0 {
			out.WriteString(",")
		}
		out.WriteString(d.String())
	}
	return out.String()
}
