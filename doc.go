// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package ifc converts Gregorian dates to the International Fixed Calendar.
//
// The International Fixed Calendar has 13 months of 28 days, Sol being
// inserted between June and July, and so every month starts on the same
// day of the week. The remaining day of the year, New Years Day, and
// in leap years, Leap Day, belong to no month. Two placements of Leap Day
// are supported:
//
//   - Original: Leap Day follows the last day of June, so that Sol 1 is
//     the day after it.
//   - Proposed: Leap Day follows New Years Day at the end of the year.
//
// Dates are always interpreted as UTC calendar dates; see FromTime.
//
//	ifc.ToIFCString(ifc.NewCalendarDate(2000, time.June, 17), false) // "Leap Day 2000"
//	ifc.ToIFCString(ifc.NewCalendarDate(2000, time.June, 18), false) // "Sun, 01 Sol 2000"
//	ifc.ToIFCString(ifc.NewCalendarDate(2000, time.December, 31), true) // "Leap Day 2001"
//
// Convert returns the same result as a Date value which distinguishes
// regular days from Leap Day and New Years Day.
package ifc
