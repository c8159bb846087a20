// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ifc_test

import (
	"testing"
	"time"

	"cloudeng.io/ifc"
)

func TestDates(t *testing.T) {
	for _, year := range []int{1900, 2000, 2023, 2024} {
		n := 0
		next := ifc.NewCalendarDate(year, time.January, 1).Time()
		for cd := range ifc.Dates(year) {
			if got, want := cd, ifc.FromTime(next); got != want {
				t.Fatalf("got %v, want %v", got, want)
			}
			next = next.AddDate(0, 0, 1)
			n++
		}
		if got, want := n, ifc.DaysInYear(year); got != want {
			t.Errorf("%v: got %v, want %v", year, got, want)
		}
	}

	// Early termination.
	n := 0
	for range ifc.Dates(2000) {
		n++
		if n == 10 {
			break
		}
	}
	if got, want := n, 10; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSamples(t *testing.T) {
	samples := ifc.Samples()
	if len(samples) == 0 {
		t.Fatal("no samples")
	}
	var leap, newYears int
	for _, cd := range samples {
		if err := cd.Validate(); err != nil {
			t.Errorf("%v: %v", cd, err)
		}
		switch ifc.Convert(cd, ifc.Original).Kind {
		case ifc.LeapDay:
			leap++
		case ifc.NewYearsDay:
			newYears++
		}
	}
	if got, want := leap, 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := newYears, 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
