// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ifc_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"cloudeng.io/ifc"
)

func TestParseMonth(t *testing.T) {
	for _, tc := range []struct {
		val  string
		want time.Month
	}{
		{"1", time.January},
		{"01", time.January},
		{"12", time.December},
		{"Jan", time.January},
		{"june", time.June},
		{"SEPT", time.September},
		{"december", time.December},
	} {
		m, err := ifc.ParseMonth(tc.val)
		if err != nil {
			t.Errorf("%v: %v", tc.val, err)
			continue
		}
		if got, want := m, tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}
	for _, val := range []string{"", "0", "13", "+1", "-0", " 1", "Ju", "Sol", "janx"} {
		if _, err := ifc.ParseMonth(val); !errors.Is(err, ifc.ErrInvalidDate) {
			t.Errorf("%q: unexpected or missing error: %v", val, err)
		}
	}
}

func TestParseCalendarDate(t *testing.T) {
	nd := ifc.NewCalendarDate
	for _, tc := range []struct {
		val  string
		want ifc.CalendarDate
	}{
		{"2000-06-17", nd(2000, time.June, 17)},
		{"2000-6-7", nd(2000, time.June, 7)},
		{"2000/06/17", nd(2000, time.June, 17)},
		{"Jun-17-2000", nd(2000, time.June, 17)},
		{"june-17-2000", nd(2000, time.June, 17)},
		{"17-Jun-2000", nd(2000, time.June, 17)},
		{" 2000-02-29 ", nd(2000, time.February, 29)},
		{"0999-12-31", nd(999, time.December, 31)},
		{"10000-01-01", nd(10000, time.January, 1)},
		{"-0005-03-01", nd(-5, time.March, 1)},
		{"-0004/02/29", nd(-4, time.February, 29)},
	} {
		var cd ifc.CalendarDate
		if err := cd.Parse(tc.val); err != nil {
			t.Errorf("%q: %v", tc.val, err)
			continue
		}
		if got, want := cd, tc.want; got != want {
			t.Errorf("%q: got %v, want %v", tc.val, got, want)
		}
	}

	for _, val := range []string{
		"",
		"2000",
		"2000-06",
		"2000-06-17-01",
		"2001-02-29",
		"2000-13-01",
		"2000-00-01",
		"2000-04-31",
		"17-06-2000",
		"Sol-01-2000",
		"Jun-xx-2000",
		"Jun-17-20x0",
		"2000-+6-17",
		"2000-06-+7",
		"Jun-17-+2000",
		"-Jun-17-2000",
		"-17-Jun-2000",
		"-0005-02-29",
	} {
		_, err := ifc.ParseCalendarDate(val)
		if !errors.Is(err, ifc.ErrInvalidDate) {
			t.Errorf("%q: unexpected or missing error: %v", val, err)
		}
	}
}

func TestCalendarDateList(t *testing.T) {
	nd := ifc.NewCalendarDate
	var cdl ifc.CalendarDateList
	if err := cdl.Parse("2000-06-17,Dec-31-1999, 2001/01/01"); err != nil {
		t.Fatal(err)
	}
	want := ifc.CalendarDateList{
		nd(2000, time.June, 17),
		nd(1999, time.December, 31),
		nd(2001, time.January, 1),
	}
	if got := cdl; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cdl.String(), "2000-06-17,1999-12-31,2001-01-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := cdl.Parse("2000-06-17,2001-02-29"); err == nil {
		t.Errorf("expected an error")
	}
}

func TestCalendarDateText(t *testing.T) {
	nd := ifc.NewCalendarDate
	for _, tc := range []struct {
		date ifc.CalendarDate
		text string
	}{
		{nd(2024, time.February, 29), "2024-02-29"},
		{nd(0, time.January, 1), "0000-01-01"},
		{nd(-5, time.December, 31), "-0005-12-31"},
		{nd(-12345, time.June, 1), "-12345-06-01"},
		{nd(10000, time.January, 1), "10000-01-01"},
	} {
		buf, err := tc.date.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		if got, want := string(buf), tc.text; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		var rt ifc.CalendarDate
		if err := rt.UnmarshalText(buf); err != nil {
			t.Errorf("%v: %v", tc.text, err)
			continue
		}
		if got, want := rt, tc.date; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}
